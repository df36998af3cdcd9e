package returns_test

import (
	"errors"
	"math"
	"testing"

	"github.com/yoghaf/marketquant/returns"
)

func assertClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

func seriesOf(values ...float64) returns.Series {
	s := make(returns.Series, len(values))
	for i, v := range values {
		s[i] = returns.Sample{Timestamp: "", Value: v}
	}
	return s
}

// TestMarginalReturnCount covers invariant 1: for a Series of length N,
// exactly N-1 returns are emitted.
func TestMarginalReturnCount(t *testing.T) {
	s := seriesOf(100, 110, 99, 99)
	stream := returns.NewMarginalReturnStream(s)
	got := stream.Collect()

	if len(got) != len(s)-1 {
		t.Fatalf("got %d returns, want %d", len(got), len(s)-1)
	}

	assertClose(t, got[0], 0.10, 1e-12)
	assertClose(t, got[1], (99.0-110.0)/110.0, 1e-12)
	assertClose(t, got[2], 0.0, 1e-12)
}

// TestConstantSeriesHasZeroReturns is the constant-value property law:
// for any Series with constant value v > 0, all marginal returns are 0.
func TestConstantSeriesHasZeroReturns(t *testing.T) {
	s := seriesOf(5, 5, 5, 5, 5)
	for _, r := range returns.NewMarginalReturnStream(s).Collect() {
		assertClose(t, r, 0, 1e-12)
	}
}

func TestNewSeriesDropsNonPositive(t *testing.T) {
	raw := []returns.Sample{
		{Timestamp: "1", Value: 10},
		{Timestamp: "2", Value: -5},
		{Timestamp: "3", Value: 0},
		{Timestamp: "4", Value: 12},
	}

	s, skipped := returns.NewSeries(raw)
	if len(s) != 2 {
		t.Fatalf("got %d surviving samples, want 2", len(s))
	}
	if len(skipped) != 2 {
		t.Fatalf("got %d skip diagnostics, want 2", len(skipped))
	}
	for _, d := range skipped {
		if !errors.Is(d.Err, returns.ErrNonPositiveValue) {
			t.Fatalf("diagnostic err = %v, want ErrNonPositiveValue", d.Err)
		}
	}
}

func TestWindowBufferEvictionKeepsSumConsistent(t *testing.T) {
	w := returns.NewWindowBuffer(3)

	if _, had := w.Push(1); had {
		t.Fatal("unexpected eviction before window fills")
	}
	w.Push(2)
	w.Push(3)
	assertClose(t, w.Sum(), 6, 1e-12)
	if !w.Full() {
		t.Fatal("window should be full after 3 pushes into capacity 3")
	}

	evicted, had := w.Push(4)
	if !had {
		t.Fatal("expected an eviction once the window wraps")
	}
	assertClose(t, evicted, 1, 1e-12)
	assertClose(t, w.Sum(), 2+3+4, 1e-12)
}

func TestMarginalReturnStreamResetReplays(t *testing.T) {
	s := seriesOf(10, 20, 15)
	stream := returns.NewMarginalReturnStream(s)

	first := stream.Collect()
	stream.Reset()
	second := stream.Collect()

	if len(first) != len(second) {
		t.Fatalf("replay length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		assertClose(t, first[i], second[i], 1e-12)
	}
}

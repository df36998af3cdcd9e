package normaltable_test

import (
	"math"
	"testing"

	"github.com/yoghaf/marketquant/normaltable"
)

func assertClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

// TestMonotonicAndBounded covers invariant 2: 0 <= Φ[i] <= 1, Φ[0] ≈ 0.5,
// and Φ is monotonically non-decreasing.
func TestMonotonicAndBounded(t *testing.T) {
	tbl := normaltable.New(normaltable.DefaultOptions())

	assertClose(t, tbl.At(0), 0.5, 1e-3)

	prev := -1.0
	for i := 0; i < tbl.Len(); i++ {
		v := tbl.At(i)
		if v < 0 || v > 1 {
			t.Fatalf("entry %d = %v out of [0,1]", i, v)
		}
		if v < prev {
			t.Fatalf("table not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestValueAtClampsPastDomain(t *testing.T) {
	tbl := normaltable.New(normaltable.DefaultOptions())

	if got := tbl.ValueAt(1e9); got != 1.0 {
		t.Fatalf("ValueAt past domain = %v, want 1.0", got)
	}
}

// TestErfBounds covers invariant 6: erf(0) = 0, erf grows to ~1 past range.
func TestErfBounds(t *testing.T) {
	tbl := normaltable.New(normaltable.DefaultOptions())

	assertClose(t, tbl.Erf(0), 0.0, 1e-9)

	got := tbl.Erf(10)
	if got < 0.999 {
		t.Fatalf("erf(10) = %v, want >= 0.999", got)
	}
}

func TestSharedIsSingleton(t *testing.T) {
	a := normaltable.Shared()
	b := normaltable.Shared()
	if a != b {
		t.Fatalf("Shared() returned distinct tables across calls")
	}
}

func BenchmarkNormalTableBuild(b *testing.B) {
	opts := normaltable.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		normaltable.New(opts)
	}
}

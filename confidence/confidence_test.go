package confidence_test

import (
	"math"
	"testing"

	"github.com/yoghaf/marketquant/confidence"
	"github.com/yoghaf/marketquant/normaltable"
)

func assertClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

// TestScenarioS2RmsOnlyConfidence: rms = 0.02, N = 100. Expected P =
// 0.51; ByRms yields c ≈ 0.9963, e ≈ 0.00378, PEff ≈ 0.50811.
func TestScenarioS2RmsOnlyConfidence(t *testing.T) {
	tbl := normaltable.Shared()
	e := confidence.SolveByRms(0, 0.02, 100, tbl)

	assertClose(t, e.P, 0.51, 1e-3)
	assertClose(t, e.PEff, 0.50811, 1e-3)
}

// TestScenarioS3ByRms: rms = 0.2, N = 10. Expected c ≈ 0.9416, e ≈
// 0.0701, P = 0.6.
func TestScenarioS3ByRms(t *testing.T) {
	tbl := normaltable.Shared()
	e := confidence.SolveByRms(0, 0.2, 10, tbl)

	assertClose(t, e.P, 0.6, 1e-3)
	c := e.PEff / e.P
	assertClose(t, c, 0.9416, 1e-3)
}

// TestScenarioS4ByAvg: avg = 0.0016, rms = 0.04, N = 10000. Expected P
// ≈ 0.52, c ≈ 0.9871, e ≈ 0.000893.
func TestScenarioS4ByAvg(t *testing.T) {
	tbl := normaltable.Shared()
	e := confidence.SolveByAvg(0.0016, 0.04, 10000, tbl)

	assertClose(t, e.P, 0.52, 1e-3)
	c := e.PEff / e.P
	assertClose(t, c, 0.9871, 1e-3)
}

// TestOrderingInvariant covers invariant 3: 0 <= PEff <= P <= 1.
func TestOrderingInvariant(t *testing.T) {
	tbl := normaltable.Shared()
	cases := []confidence.Estimate{
		confidence.SolveByRms(0.01, 0.05, 50, tbl),
		confidence.SolveByAvg(0.02, 0.05, 50, tbl),
		confidence.SolveByAvgRms(0.02, 0.05, 50, tbl),
	}
	for _, e := range cases {
		if e.PEff < 0 || e.PEff > e.P || e.P > 1 {
			t.Fatalf("ordering invariant violated: %+v", e)
		}
	}
}

// TestConstantSeriesFallback: rms = 0 triggers the guard fallback for
// ByAvg and ByAvgRms; ByRms still terminates without a guard but the
// downstream caller treats rms = 0 as neutral (gain.FromStats covers
// that case directly).
func TestConstantSeriesFallback(t *testing.T) {
	tbl := normaltable.Shared()

	byAvg := confidence.SolveByAvg(0, 0, 5, tbl)
	assertFallback(t, byAvg)

	byAvgRms := confidence.SolveByAvgRms(0, 0, 5, tbl)
	assertFallback(t, byAvgRms)
}

func assertFallback(t *testing.T, e confidence.Estimate) {
	t.Helper()
	assertClose(t, e.P, 0.5, 1e-12)
	assertClose(t, e.PEff, 0.25, 1e-12)
	assertClose(t, e.PConf, 0.5, 1e-12)
}

func TestSolveAppliesCompensation(t *testing.T) {
	tbl := normaltable.Shared()
	e := confidence.Solve(confidence.ByRms, 0, 0.02, 100, tbl)

	if e.PConf == e.PEff {
		t.Fatal("expected run-length compensation to change PConf from PEff")
	}
	if e.PConf > e.PEff {
		t.Fatal("run-length compensation should only reduce confidence")
	}
}

func TestSolveGuardedSkipsCompensation(t *testing.T) {
	tbl := normaltable.Shared()
	e := confidence.Solve(confidence.ByAvg, -1, 0.02, 100, tbl)
	assertFallback(t, e)
}

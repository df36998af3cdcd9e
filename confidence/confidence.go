// Package confidence implements the three bisection-based confidence
// solvers (ByRms, ByAvg, ByAvgRms) and the run-length compensation step
// that rides on top of their output.
//
// Each solver steers a bisection search over a normaltable.Table's
// indices with a sign-only residual function, locating a threshold by
// bisecting over a precomputed table rather than solving a closed form.
package confidence

// Variant names which of the three confidence solvers produced an
// Estimate.
type Variant int

const (
	ByRms Variant = iota
	ByAvg
	ByAvgRms
)

func (v Variant) String() string {
	switch v {
	case ByRms:
		return "by_rms"
	case ByAvg:
		return "by_avg"
	case ByAvgRms:
		return "by_avg_rms"
	default:
		return "unknown"
	}
}

// Estimate is the result of a ConfidenceSolver run: the raw Shannon
// probability, the confidence-effective probability, and the
// run-length-compensated probability, alongside the inputs that
// produced it.
type Estimate struct {
	P       float64
	PEff    float64
	PConf   float64
	Avg     float64
	RMS     float64
	Count   int
	Variant Variant

	// guarded marks an Estimate produced by fallback rather than a real
	// bisection. Compensate leaves it untouched: the fallback's PConf is
	// fixed at 0.5 by definition, not run-length-adjusted.
	guarded bool
}

// fallback builds the guarded-input Estimate: P = 0.5, PEff = 0.25,
// PConf = 0.5, with avg/rms/count preserved unchanged. Used whenever a
// solver hits an input combination that would force a complex or
// undefined intermediate.
func fallback(avg, rms float64, n int, variant Variant) Estimate {
	return Estimate{
		P:       0.5,
		PEff:    0.25,
		PConf:   0.5,
		Avg:     avg,
		RMS:     rms,
		Count:   n,
		Variant: variant,
		guarded: true,
	}
}

// bisect runs the common bisection skeleton shared by all three
// variants: bottom=0, top=L-1, narrowing by the sign of residual(mid)
// until bottom and top meet, returning the last visited mid. Fixed
// worst-case iteration count of about ceil(log2(L)).
func bisect(l int, residual func(m int) float64) int {
	bottom, top := 0, l-1
	mid := bottom
	for top > bottom {
		mid = (bottom + top) / 2
		if residual(mid) < 0 {
			top = mid - 1
		} else {
			bottom = mid + 1
		}
	}
	return mid
}

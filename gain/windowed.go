package gain

import (
	"math"

	"github.com/yoghaf/marketquant/returns"
)

// WindowedEstimator computes P and G from only the last Window marginal
// returns, using two parallel returns.WindowBuffer instances (one for r,
// one for r^2) so the running sum and running sum-of-squares stay
// correct across eviction without rescanning the window.
//
// Keeping two buffers instead of one buffer of (r, r^2) pairs costs a
// little extra memory in exchange for reusing returns.WindowBuffer
// unmodified; see DESIGN.md for the tradeoff.
type WindowedEstimator struct {
	r  *returns.WindowBuffer
	r2 *returns.WindowBuffer
	w  int
	k  int // total samples ever pushed, used for the W+1 warm-up gate
}

// NewWindowedEstimator returns an estimator restricted to the last w
// marginal returns.
func NewWindowedEstimator(w int) *WindowedEstimator {
	return &WindowedEstimator{
		r:  returns.NewWindowBuffer(w),
		r2: returns.NewWindowBuffer(w),
		w:  w,
	}
}

// Update folds in one marginal return. It returns (p, g, true) once the
// window has seen enough samples to emit a value, and (0, 0, false)
// during the W+1-sample warm-up: the window needs one full fill plus
// one more sample before avg/rms are meaningful.
func (e *WindowedEstimator) Update(r float64) (p, g float64, ok bool) {
	e.r.Push(r)
	e.r2.Push(r * r)
	e.k++

	if e.k <= e.w+1 {
		return 0, 0, false
	}

	n := float64(e.r.Len())
	avg := e.r.Sum() / n
	rms := math.Sqrt(e.r2.Sum() / n)

	p, g = FromStats(avg, rms)

	return p, g, true
}

// Len reports how many returns are currently held in the window.
func (e *WindowedEstimator) Len() int {
	return e.r.Len()
}

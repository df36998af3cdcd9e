// Package gain derives the Shannon probability P and expected
// multiplicative gain G from a stream of marginal returns.
//
// P and G are defined from running average and root-mean-square of the
// returns seen so far:
//
//	P = ((avg/rms) + 1) / 2
//	G = (1+rms)^P * (1-rms)^(1-P)
//
// Estimator accumulates over the whole history (cumulative mode);
// WindowedEstimator restricts the average/rms to the last W returns
// (windowed mode). Both are a small struct of running accumulators
// updated on each tick via an Update method, with zero allocations on
// the hot path.
package gain

import "math"

// Estimator accumulates marginal returns and derives the cumulative
// Shannon probability and gain on each Update.
type Estimator struct {
	sumR   float64
	sumR2  float64
	k      int
}

// NewEstimator returns a fresh cumulative gain estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Update folds in one marginal return and returns the cumulative P and G
// after doing so.
func (e *Estimator) Update(r float64) (p, g float64) {
	e.sumR += r
	e.sumR2 += r * r
	e.k++

	avg := e.sumR / float64(e.k)
	rms := math.Sqrt(e.sumR2 / float64(e.k))

	return FromStats(avg, rms)
}

// Avg returns the running average of returns seen so far.
func (e *Estimator) Avg() float64 {
	if e.k == 0 {
		return 0
	}
	return e.sumR / float64(e.k)
}

// RMS returns the running root-mean-square of returns seen so far.
func (e *Estimator) RMS() float64 {
	if e.k == 0 {
		return 0
	}
	return math.Sqrt(e.sumR2 / float64(e.k))
}

// Count returns the number of returns folded in so far.
func (e *Estimator) Count() int {
	return e.k
}

// FromStats computes P and G directly from externally supplied avg and
// rms, without maintaining any running state. This is the closed-form
// entry point the "gain -a AVG -r RMS" / "gain -P P -r RMS" CLI modes
// need: a stateless pure-function shortcut alongside the streaming
// Estimator, for callers that already have avg/rms and want P and G
// without replaying a whole series.
//
// rms == 0 is a valid guard case and yields G == 1, a neutral gain.
func FromStats(avg, rms float64) (p, g float64) {
	if rms == 0 {
		return 0.5, 1.0
	}

	p = (avg/rms + 1) / 2
	g = math.Pow(1+rms, p) * math.Pow(1-rms, 1-p)

	return p, g
}

// PFromAvgRMS computes the Shannon probability directly from avg and rms
// using the joint estimator (avg/rms+1)/2.
func PFromAvgRMS(avg, rms float64) float64 {
	if rms == 0 {
		return 0.5
	}
	return (avg/rms + 1) / 2
}

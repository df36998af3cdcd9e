// Package normaltable builds and serves a tabulated cumulative standard
// normal distribution, Φ(x), on the interval [0, Sigmas] at fixed
// resolution. It is the shared numerical foundation for the confidence
// package: everything downstream that needs Φ or erf
// reads the same immutable table instead of recomputing the integral.
//
// ⚙️ Usage:
//
//	tbl := normaltable.Shared() // process-wide, built once
//	p := tbl.ValueAt(1.96)      // Φ(1.96) ≈ 0.975
//	e := tbl.Erf(0.5)           // erf(0.5)
//
// The table is a forward-difference rectangle sum of the standard normal
// density, not an adaptive quadrature — precision is controlled entirely
// by StepsPerSigma (default 1000). This matches the source algorithm bit
// for bit rather than delegating to a higher-precision library routine,
// since downstream bisection solvers are tuned against this exact table.
package normaltable

import (
	"math"
	"sync"
)

// Options configures table construction.
type Options struct {
	// Sigmas is the upper bound of the table's domain, in standard
	// deviations from the mean.
	Sigmas int
	// StepsPerSigma is the number of table entries per standard
	// deviation; it is the table's resolution.
	StepsPerSigma int
}

// DefaultOptions returns the baseline resolution used by the shared,
// process-wide table: 3 sigmas at 1000 steps per sigma.
func DefaultOptions() Options {
	return Options{
		Sigmas:        3,
		StepsPerSigma: 1000,
	}
}

// Table is an immutable, monotonically increasing sampling of Φ on
// [0, Sigmas]. It is safe for unsynchronized concurrent reads once
// constructed — nothing ever mutates it after New returns.
type Table struct {
	values        []float64
	stepsPerSigma int
}

// New builds a table from the given options. Construction is O(Sigmas *
// StepsPerSigma); callers that only need the process-wide default should
// use Shared instead, which builds exactly once per process.
func New(opts Options) *Table {
	n := opts.Sigmas * opts.StepsPerSigma
	values := make([]float64, n)

	const invSqrt2Pi = 0.3989422804014327 // 1/sqrt(2*pi)

	delta := 1.0 / float64(opts.StepsPerSigma)
	sum := 0.5
	x := 0.0
	for i := 0; i < n; i++ {
		sum += invSqrt2Pi * math.Exp(-x*x/2) * delta
		values[i] = sum
		x += delta
	}

	return &Table{
		values:        values,
		stepsPerSigma: opts.StepsPerSigma,
	}
}

var (
	sharedOnce  sync.Once
	sharedTable *Table
)

// Shared returns the process-wide table, built with DefaultOptions on the
// first call. Every subsequent call, from any goroutine, observes the
// same fully-constructed table — sync.Once guarantees the
// publication-after-construction ordering without an explicit atomic
// pointer, since the table is never rebuilt or swapped after first use.
func Shared() *Table {
	sharedOnce.Do(func() {
		sharedTable = New(DefaultOptions())
	})

	return sharedTable
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.values)
}

// StepsPerSigma returns the resolution the table was built with.
func (t *Table) StepsPerSigma() int {
	return t.stepsPerSigma
}

// At returns the raw table entry at index i, the value Φ(i/StepsPerSigma).
// It is used directly by the bisection solvers in package confidence,
// which index the table rather than evaluate ValueAt repeatedly.
func (t *Table) At(i int) float64 {
	return t.values[i]
}

// ValueAt returns Φ(sigma). When sigma falls past the table's domain the
// table clamps to 1.0 rather than extrapolating, matching the asymptotic
// behavior of the true CDF.
func (t *Table) ValueAt(sigma float64) float64 {
	idx := int(sigma * float64(t.stepsPerSigma))
	if idx >= len(t.values) {
		return 1.0
	}
	if idx < 0 {
		return 0.0
	}

	return t.values[idx]
}

// Erf returns the error function erf(n), derived from the table via
// erf(n) = 2*(Φ(n*sqrt(2)) - 0.5).
func (t *Table) Erf(n float64) float64 {
	return 2 * (t.ValueAt(n*math.Sqrt2) - 0.5)
}

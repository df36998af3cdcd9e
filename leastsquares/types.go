// Package leastsquares fits a Point series against one of several
// closed-form curve families, or a nonlinear logistic growth curve, and
// reports the fitted coefficients plus (optionally) the residual series
// or formula string.
package leastsquares

import "errors"

// ErrSingular is returned when the closed-form regression's design
// matrix is degenerate (det = 0), typically because all t_i coincide.
var ErrSingular = errors.New("leastsquares: singular design matrix")

// ErrLogisticNonConvergent is returned when the logistic outer loop
// exceeds Options.MaxIterations without the error term falling below
// tolerance.
var ErrLogisticNonConvergent = errors.New("leastsquares: logistic fit did not converge")

// ErrCancelled is returned when Options.CancelFunc reports true before
// the logistic fit converges.
var ErrCancelled = errors.New("leastsquares: fit cancelled")

// Point is one (t, y) observation. When samples are built from a plain
// series via FitFromSeries, t is the zero-based sample index.
type Point struct {
	T float64
	Y float64
}

// Variant selects the curve family to fit.
type Variant int

const (
	Linear Variant = iota
	Exponential
	SquareRoot
	Logarithmic
	Square
	Logistic
)

func (v Variant) String() string {
	switch v {
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	case SquareRoot:
		return "square-root"
	case Logarithmic:
		return "logarithmic"
	case Square:
		return "square"
	case Logistic:
		return "logistic"
	default:
		return "unknown"
	}
}

// LogisticMethod selects one of the six c-update recurrences used by
// the logistic outer loop.
type LogisticMethod int

const (
	LogisticMethod0 LogisticMethod = iota
	LogisticMethod1
	LogisticMethod2
	LogisticMethod3
	LogisticMethod4
	LogisticMethod5
)

// Options configures a Fit call. Zero value is a sane default: no
// subtraction/scaling, logistic method 0, MaxIterations defaulted by
// Fit when left at zero.
type Options struct {
	SubtractFit      bool
	ScaleToFit       bool // implies SubtractFit
	PrintFormulaOnly bool

	// StartC and StepC seed the logistic outer loop's carrying-capacity
	// search; both are ignored by the closed-form variants.
	StartC float64
	StepC  float64

	LogisticMethod LogisticMethod

	// MaxIterations caps the logistic outer loop. Zero means use the
	// package default of 10000.
	MaxIterations int

	// EmitConvergenceTrace, when true, appends one TraceLine per outer
	// iteration (and per carrying-capacity inflation substep) to Trace.
	EmitConvergenceTrace bool
	Trace                *[]TraceLine

	// CancelFunc, when non-nil, is polled once per logistic outer
	// iteration; a true result aborts the fit with ErrCancelled.
	CancelFunc func() bool
}

// TraceLine is one recorded step of the logistic outer loop, captured
// when Options.EmitConvergenceTrace is set.
type TraceLine struct {
	Iteration int
	C         float64
	A         float64
	B         float64
	Error     float64
	Inflation bool
}

// FitResult is the outcome of a Fit call. Coefficients A and B are
// populated for every variant; C and Converged/Iterations are only
// meaningful for Logistic.
type FitResult struct {
	Variant Variant
	A       float64
	B       float64

	// C is the fitted carrying capacity, Logistic only.
	C float64
	// Converged and Iterations describe the logistic outer loop's
	// termination; zero value for closed-form variants.
	Converged  bool
	Iterations int

	// Formula is populated when Options.PrintFormulaOnly is set.
	Formula string

	// Fitted holds the model's value at each input t_i, populated
	// unless PrintFormulaOnly is set.
	Fitted []float64

	// Residual holds y_i - Fitted[i] (or, with ScaleToFit, the
	// residual normalised by the input's scale) when SubtractFit or
	// ScaleToFit is set.
	Residual []float64
}

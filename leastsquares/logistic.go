package leastsquares

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const defaultMaxIterations = 10000

// epsilon is DBL_EPSILON * 1000, the convergence tolerance on the
// outer loop's relative error.
var epsilon = 1000 * 2.220446049250313e-16

// fitLogistic fits n(t) = c / (1 + exp(-(b + a*t))) by alternating a
// linear regression of y_i = ln(n_i/(c-n_i)) against t_i with one of six
// update rules for the carrying capacity c.
func fitLogistic(points []Point, opts Options) (FitResult, error) {
	n := make([]float64, len(points))
	t := make([]float64, len(points))
	for i, p := range points {
		n[i] = p.Y
		t[i] = p.T
	}

	maxN := floats.Max(n)
	c := opts.StartC
	if 2*maxN > c {
		c = 2 * maxN
	}

	step := opts.StepC
	if step <= 1 {
		step = 1.5
	}

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}

	nBar := floats.Sum(n) / float64(len(n))
	tMid := t[len(t)/2]

	var a, b float64
	errVal := math.Inf(1)
	iterations := 0

	y := make([]float64, len(n))

	for math.Abs(errVal) > epsilon {
		if iterations >= maxIter {
			return FitResult{Variant: Logistic, Converged: false, Iterations: iterations, C: c, A: a, B: b}, ErrLogisticNonConvergent
		}
		if opts.CancelFunc != nil && opts.CancelFunc() {
			return FitResult{}, ErrCancelled
		}

		for i := 1; c <= maxN; i++ {
			c = maxN * step * float64(i)
			if opts.EmitConvergenceTrace && opts.Trace != nil {
				*opts.Trace = append(*opts.Trace, TraceLine{Iteration: iterations, C: c, Inflation: true})
			}
		}

		for i := range n {
			y[i] = math.Log(n[i] / (c - n[i]))
		}

		newA, newB, err := linregress(t, y)
		if err != nil {
			return FitResult{}, err
		}

		deltaB := newB - b
		a, b = newA, newB

		cOld := c
		c = updateC(opts.LogisticMethod, c, deltaB, a, b, n, t, nBar, tMid)

		errVal = cOld/c - 1
		iterations++

		if opts.EmitConvergenceTrace && opts.Trace != nil {
			*opts.Trace = append(*opts.Trace, TraceLine{Iteration: iterations, C: c, A: a, B: b, Error: errVal})
		}
	}

	result := FitResult{
		Variant:    Logistic,
		A:          a,
		B:          b,
		C:          c,
		Converged:  true,
		Iterations: iterations,
	}

	if opts.PrintFormulaOnly {
		result.Formula = "n(t) = c / (1 + exp(-(b + a*t)))"
		return result, nil
	}

	fitted := make([]float64, len(points))
	for i, p := range points {
		fitted[i] = c / (1 + math.Exp(-(b + a*p.T)))
	}
	result.Fitted = fitted

	if opts.SubtractFit || opts.ScaleToFit {
		residual := make([]float64, len(points))
		for i, p := range points {
			residual[i] = p.Y - fitted[i]
			if opts.ScaleToFit && p.Y != 0 {
				residual[i] /= p.Y
			}
		}
		result.Residual = residual
	}

	return result, nil
}

// updateC applies one of the six carrying-capacity update rules.
func updateC(method LogisticMethod, c, deltaB, a, b float64, n, t []float64, nBar, tMid float64) float64 {
	switch method {
	case LogisticMethod0:
		return c + deltaB*(c-nBar)
	case LogisticMethod1:
		var sum float64
		for i := range n {
			sum += (math.Log(n[i]/(c-n[i])) - a*t[i] - b) * (c - n[i])
		}
		return c + sum/float64(len(n))
	case LogisticMethod2:
		phi := make([]float64, len(n))
		for i := range n {
			phi[i] = (math.Log(n[i]/(c-n[i])) - a*t[i] - b) * (c - n[i])
		}
		alpha, beta, err := linregress(t, phi)
		if err != nil {
			return c
		}
		return c + beta + alpha*tMid
	case LogisticMethod3:
		var sum float64
		for i := range n {
			sum += (math.Log(n[i]/(c-n[i])) - a*t[i] - b) * (c - n[i])
		}
		return c - sum/float64(len(n))
	case LogisticMethod4:
		phi := make([]float64, len(n))
		for i := range n {
			phi[i] = (math.Log(n[i]/(c-n[i])) - a*t[i] - b) * (c - n[i])
		}
		alpha, beta, err := linregress(t, phi)
		if err != nil {
			return c
		}
		return c - (beta + alpha*tMid)
	case LogisticMethod5:
		return c - deltaB*(c-nBar)
	default:
		return c + deltaB*(c-nBar)
	}
}

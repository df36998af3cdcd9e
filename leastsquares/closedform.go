package leastsquares

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// transform returns the y-transform used for the given closed-form
// variant, and recover turns the fitted (a, b, t) back into the
// variant's native value.
type closedFormSpec struct {
	transform func(y float64) float64
	recover   func(a, b, t float64) float64
	formula   string
}

var closedForms = map[Variant]closedFormSpec{
	Linear: {
		transform: func(y float64) float64 { return y },
		recover:   func(a, b, t float64) float64 { return b + a*t },
		formula:   "y = b + a*t",
	},
	Exponential: {
		transform: func(y float64) float64 { return math.Log(y) },
		recover:   func(a, b, t float64) float64 { return math.Exp(b + a*t) },
		formula:   "y = exp(b + a*t)",
	},
	SquareRoot: {
		transform: func(y float64) float64 { return y * y },
		recover:   func(a, b, t float64) float64 { return math.Sqrt(b + a*t) },
		formula:   "y = sqrt(b + a*t)",
	},
	Logarithmic: {
		transform: func(y float64) float64 { return math.Exp(y) },
		recover:   func(a, b, t float64) float64 { return math.Log(b + a*t) },
		formula:   "y = ln(b + a*t)",
	},
	Square: {
		transform: func(y float64) float64 { return math.Sqrt(y) },
		recover:   func(a, b, t float64) float64 { return math.Pow(b+a*t, 2) },
		formula:   "y = (b + a*t)^2",
	},
}

// linregress computes a, b for the least-squares line y = b + a*t over
// the given transformed samples, using gonum/floats for the four
// accumulation sums: Sx, Sy, Sxx, Sxy.
func linregress(t, y []float64) (a, b float64, err error) {
	n := float64(len(t))

	ty := make([]float64, len(t))
	copy(ty, t)
	floats.Mul(ty, y)

	tt := make([]float64, len(t))
	copy(tt, t)
	floats.Mul(tt, t)

	sx := floats.Sum(t)
	sy := floats.Sum(y)
	sxx := floats.Sum(tt)
	sxy := floats.Sum(ty)

	det := n*sxx - sx*sx
	if det == 0 {
		return 0, 0, ErrSingular
	}

	a = (n*sxy - sx*sy) / det
	b = (sxx*sy - sx*sxy) / det

	return a, b, nil
}

// fitClosedForm runs one of the five closed-form variants: transform y,
// regress the transformed pair, then recover the fit in the variant's
// native space.
func fitClosedForm(points []Point, variant Variant, opts Options) (FitResult, error) {
	def, ok := closedForms[variant]
	if !ok {
		return FitResult{}, ErrSingular // unreachable for valid callers
	}

	t := make([]float64, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		t[i] = p.T
		y[i] = def.transform(p.Y)
	}

	a, b, err := linregress(t, y)
	if err != nil {
		return FitResult{}, err
	}

	result := FitResult{Variant: variant, A: a, B: b}

	if opts.PrintFormulaOnly {
		result.Formula = def.formula
		return result, nil
	}

	fitted := make([]float64, len(points))
	for i, p := range points {
		fitted[i] = def.recover(a, b, p.T)
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

package leastsquares

import "github.com/yoghaf/marketquant/returns"

// Fit runs the requested variant over samples and returns the fitted
// result. Logistic dispatches to the nonlinear outer loop; everything
// else is a closed-form regression over a variant-specific y-transform.
func Fit(samples []Point, variant Variant, opts Options) (FitResult, error) {
	if variant == Logistic {
		return fitLogistic(samples, opts)
	}
	return fitClosedForm(samples, variant, opts)
}

// FitFromSeries builds Points from a returns.Series, using the
// zero-based sample index as t and the sample value as y, then fits.
func FitFromSeries(series returns.Series, variant Variant, opts Options) (FitResult, error) {
	points := make([]Point, len(series))
	for i, s := range series {
		points[i] = Point{T: float64(i), Y: s.Value}
	}
	return Fit(points, variant, opts)
}

package confidence

import (
	"math"

	"github.com/yoghaf/marketquant/normaltable"
)

// SolveByAvg runs the ByAvg confidence solver. P = (sqrt(avg)+1)/2.
// Requires avg >= 0 and rms > 0; any other combination returns the
// fallback estimate untouched, since the radical under the residual
// would otherwise go complex.
func SolveByAvg(avg, rms float64, n int, tbl *normaltable.Table) Estimate {
	if avg < 0 || rms <= 0 {
		return fallback(avg, rms, n, ByAvg)
	}

	p := (math.Sqrt(avg) + 1) / 2
	steps := float64(tbl.StepsPerSigma())
	sqrtN := math.Sqrt(float64(n))

	scale1 := rms / sqrtN
	scale2 := math.Sqrt(avg) + 1

	if scale1 == 0 {
		return fallback(avg, rms, n, ByAvg)
	}

	topCap := int(math.Floor((avg/scale1)*steps)) - 1
	top := topCap
	if top > tbl.Len()-1 {
		top = tbl.Len() - 1
	}
	if top < 0 {
		return fallback(avg, rms, n, ByAvg)
	}

	residual := func(m int) float64 {
		arg := avg - scale1*(float64(m)/steps)
		if arg < 0 {
			// esigma has run past the point where avg - scale1*sigma stays
			// non-negative; treat as "confidence saturated" so the
			// bisection keeps narrowing toward the lower half.
			return -1
		}
		return math.Sqrt(arg) + 1 - scale2*tbl.At(m)
	}

	idx := bisect(top+1, residual)
	c := tbl.At(idx)

	return Estimate{
		P:       p,
		PEff:    p * c,
		PConf:   p * c,
		Avg:     avg,
		RMS:     rms,
		Count:   n,
		Variant: ByAvg,
	}
}

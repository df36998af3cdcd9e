package confidence

import (
	"math"

	"github.com/yoghaf/marketquant/normaltable"
)

// SolveByRms runs the ByRms confidence solver. P = (rms+1)/2. rms may be
// zero; the solver still terminates and the caller is left holding a
// degenerate confidence (downstream callers fall back to the neutral
// gain interpretation in that case).
func SolveByRms(avg, rms float64, n int, tbl *normaltable.Table) Estimate {
	p := (rms + 1) / 2
	steps := float64(tbl.StepsPerSigma())
	sqrt2n := math.Sqrt(2 * float64(n))

	residual := func(m int) float64 {
		return rms - (rms/sqrt2n)*(float64(m)/steps) + 1 - (rms+1)*tbl.At(m)
	}

	idx := bisect(tbl.Len(), residual)
	c := tbl.At(idx)

	return Estimate{
		P:       p,
		PEff:    p * c,
		PConf:   p * c,
		Avg:     avg,
		RMS:     rms,
		Count:   n,
		Variant: ByRms,
	}
}

package confidence

import (
	"math"

	"github.com/yoghaf/marketquant/normaltable"
)

// SolveByAvgRms runs the ByAvgRms confidence solver. P = (avg/rms+1)/2.
// Unlike ByRms and ByAvg, it runs two independent bisections: one for
// the rms-error confidence cr, one for the avg-error confidence ca. The
// combined confidence is their product. Requires rms > 0; else fallback.
func SolveByAvgRms(avg, rms float64, n int, tbl *normaltable.Table) Estimate {
	if rms <= 0 {
		return fallback(avg, rms, n, ByAvgRms)
	}

	p := (avg/rms + 1) / 2
	steps := float64(tbl.StepsPerSigma())
	scale2 := avg/rms + 1

	// Pass 1: cr.
	scale1Cr := rms / math.Sqrt(2*float64(n))
	residualCr := func(m int) float64 {
		return avg/(rms+scale1Cr*(float64(m)/steps)) + 1 - scale2*tbl.At(m)
	}
	idxCr := bisect(tbl.Len(), residualCr)
	cr := tbl.At(idxCr)

	// Pass 2: ca, bisection re-initialised from scratch.
	scale1Ca := rms / math.Sqrt(float64(n))
	residualCa := func(m int) float64 {
		return (avg-scale1Ca*(float64(m)/steps))/rms + 1 - scale2*tbl.At(m)
	}
	idxCa := bisect(tbl.Len(), residualCa)
	ca := tbl.At(idxCa)

	c := ca * cr

	return Estimate{
		P:       p,
		PEff:    p * c,
		PConf:   p * c,
		Avg:     avg,
		RMS:     rms,
		Count:   n,
		Variant: ByAvgRms,
	}
}

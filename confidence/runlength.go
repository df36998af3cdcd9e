package confidence

import (
	"math"

	"github.com/yoghaf/marketquant/normaltable"
)

// Compensate applies run-length compensation to an Estimate's PEff,
// penalising confidence for the error introduced by small sample counts.
// Given N, erfN = erf(1/sqrt(N)); PConf = PEff * (1 - erfN).
func Compensate(e Estimate, tbl *normaltable.Table) Estimate {
	if e.guarded || e.Count <= 0 {
		return e
	}

	erfN := tbl.Erf(1 / math.Sqrt(float64(e.Count)))
	e.PConf = e.PEff * (1 - erfN)

	return e
}

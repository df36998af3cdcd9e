package confidence

import "github.com/yoghaf/marketquant/normaltable"

// Solve runs the requested confidence variant and folds in run-length
// compensation, producing a fully populated Estimate in one call. It is
// the entry point the shannon_effective CLI and any other caller that
// just wants {P, PEff, PConf} for a given variant should use.
func Solve(variant Variant, avg, rms float64, n int, tbl *normaltable.Table) Estimate {
	var e Estimate
	switch variant {
	case ByRms:
		e = SolveByRms(avg, rms, n, tbl)
	case ByAvg:
		e = SolveByAvg(avg, rms, n, tbl)
	case ByAvgRms:
		e = SolveByAvgRms(avg, rms, n, tbl)
	default:
		e = fallback(avg, rms, n, variant)
	}

	return Compensate(e, tbl)
}

// Command shannon_effective prints the Shannon probability and its
// confidence-adjusted variants under all three ConfidenceSolver
// estimators, or (with -e) just the run-length erf term for a sample
// count.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/yoghaf/marketquant/confidence"
	"github.com/yoghaf/marketquant/internal/cli"
	"github.com/yoghaf/marketquant/normaltable"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := cli.NewFlagSet("shannon_effective", "usage: shannon_effective [-c] [-e] AVG RMS N\n       shannon_effective -e N")
	withComp := fs.Bool("c", false, "also print the run-length-compensated probability")
	erfOnly := fs.Bool("e", false, "print erf(1/sqrt(N)) and its complement for N")

	if err := fs.Parse(args); err != nil {
		return cli.ExitArgs
	}

	tbl := normaltable.Shared()

	if *erfOnly && fs.NArg() == 1 {
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil || n <= 0 {
			return cli.Fail(cli.ExitArgs, "shannon_effective: N must be a positive integer")
		}
		erfN := tbl.Erf(1 / math.Sqrt(float64(n)))
		fmt.Printf("erf=%v complement=%v\n", erfN, 1-erfN)
		return cli.ExitOK
	}

	if fs.NArg() != 3 {
		fs.Usage()
		return cli.ExitArgs
	}

	avg, err1 := strconv.ParseFloat(fs.Arg(0), 64)
	rms, err2 := strconv.ParseFloat(fs.Arg(1), 64)
	n, err3 := strconv.Atoi(fs.Arg(2))
	if err1 != nil || err2 != nil || err3 != nil || n <= 0 {
		return cli.Fail(cli.ExitArgs, "shannon_effective: AVG RMS N must be numeric, N > 0")
	}

	variants := []confidence.Variant{confidence.ByRms, confidence.ByAvg, confidence.ByAvgRms}
	for _, v := range variants {
		e := confidence.Solve(v, avg, rms, n, tbl)
		if *withComp {
			fmt.Printf("%s P=%v Peff=%v Pcomp=%v\n", v, e.P, e.PEff, e.PConf)
		} else {
			fmt.Printf("%s P=%v Peff=%v\n", v, e.P, e.PEff)
		}
	}

	return cli.ExitOK
}

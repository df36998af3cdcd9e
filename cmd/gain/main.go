// Command gain streams the cumulative Shannon probability and gain
// over a canonical-format market series, or computes a one-shot G
// directly from a supplied average and RMS.
package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/yoghaf/marketquant/gain"
	"github.com/yoghaf/marketquant/ingest"
	"github.com/yoghaf/marketquant/internal/cli"
	"github.com/yoghaf/marketquant/returns"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := cli.NewFlagSet("gain", "usage: gain [-p] [-t] [filename]\n       gain -a AVG -r RMS\n       gain -P P -r RMS")
	quiet := fs.Bool("p", false, "suppress per-sample emission, print only the terminal G")
	withTimestamp := fs.Bool("t", false, "prepend the sample timestamp to each emitted line")
	avg := fs.Float64("a", math.NaN(), "closed-form mode: average return")
	p := fs.Float64("P", math.NaN(), "closed-form mode: Shannon probability")
	rms := fs.Float64("r", math.NaN(), "closed-form mode: RMS of returns")

	if err := fs.Parse(args); err != nil {
		return cli.ExitArgs
	}

	if !math.IsNaN(*rms) && (!math.IsNaN(*avg) || !math.IsNaN(*p)) {
		return runClosedForm(*avg, *p, *rms)
	}

	filename := ""
	if fs.NArg() > 0 {
		filename = fs.Arg(0)
	}

	f, err := cli.OpenInputOrStdin(filename)
	if err != nil {
		return cli.Fail(cli.ExitOpen, "gain: cannot open %s: %v", filename, err)
	}
	defer f.Close()

	series, diags, err := ingest.ReadCanonical(f)
	if err != nil {
		return cli.Fail(cli.ExitAlloc, "gain: read error: %v", err)
	}
	for _, d := range diags {
		log.Println("gain:", d)
	}

	return streamCumulative(series, *quiet, *withTimestamp)
}

func runClosedForm(avg, p, rms float64) int {
	if math.IsNaN(avg) && !math.IsNaN(p) {
		// Derive avg from P: P = (avg/rms+1)/2 => avg = (2P-1)*rms.
		avg = (2*p - 1) * rms
	}
	if math.IsNaN(avg) {
		return cli.Fail(cli.ExitArgs, "gain: need -a AVG or -P P together with -r RMS")
	}

	_, g := gain.FromStats(avg, rms)
	fmt.Println(g)
	return cli.ExitOK
}

func streamCumulative(series returns.Series, quiet, withTimestamp bool) int {
	stream := returns.NewMarginalReturnStream(series)
	estimator := gain.NewEstimator()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var lastG float64 = 1
	i := 1
	for {
		r, ok := stream.Next()
		if !ok {
			break
		}
		_, g := estimator.Update(r)
		lastG = g

		if !quiet {
			if withTimestamp {
				fmt.Fprintf(out, "%s %v\n", series[i].Timestamp, g)
			} else {
				fmt.Fprintln(out, g)
			}
		}
		i++
	}

	if quiet {
		fmt.Fprintln(out, lastG)
	}

	return cli.ExitOK
}

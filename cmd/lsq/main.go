// Command lsq fits a canonical-format market series against one of six
// curve families and prints the fitted formula, fitted series, or
// residual series.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/yoghaf/marketquant/internal/cli"
	"github.com/yoghaf/marketquant/ingest"
	"github.com/yoghaf/marketquant/leastsquares"
	"github.com/yoghaf/marketquant/returns"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := cli.NewFlagSet("lsq", "usage: lsq [-e|-L|-l|-R|-S] [-c C] [-f STEP] [-m METHOD] [-i] [-o] [-p] [-s] [-t] [filename]")

	exponential := fs.Bool("e", false, "fit the exponential variant")
	logarithmic := fs.Bool("L", false, "fit the logarithmic variant")
	logistic := fs.Bool("l", false, "fit the logistic variant")
	squareRoot := fs.Bool("R", false, "fit the square-root variant")
	square := fs.Bool("S", false, "fit the square variant")

	startC := fs.Float64("c", 0, "logistic: starting carrying-capacity seed")
	stepC := fs.Float64("f", 0, "logistic: carrying-capacity inflation step")
	method := fs.Int("m", 0, "logistic: update method (0-5)")

	trace := fs.Bool("i", false, "emit a convergence trace (logistic only)")
	subtractFit := fs.Bool("o", false, "print the residual series instead of the fit")
	formulaOnly := fs.Bool("p", false, "print only the fitted formula")
	scaleToFit := fs.Bool("s", false, "scale residuals by the input value (implies -o)")
	withTimestamp := fs.Bool("t", false, "prepend the sample timestamp to each emitted line")

	if err := fs.Parse(args); err != nil {
		return cli.ExitArgs
	}

	variant, err := selectVariant(*exponential, *logarithmic, *logistic, *squareRoot, *square)
	if err != nil {
		return cli.Fail(cli.ExitArgs, "lsq: %v", err)
	}

	filename := ""
	if fs.NArg() > 0 {
		filename = fs.Arg(0)
	}

	f, err := cli.OpenInputOrStdin(filename)
	if err != nil {
		return cli.Fail(cli.ExitOpen, "lsq: cannot open %s: %v", filename, err)
	}
	defer f.Close()

	series, diags, err := ingest.ReadCanonical(f)
	if err != nil {
		return cli.Fail(cli.ExitAlloc, "lsq: read error: %v", err)
	}
	for _, d := range diags {
		log.Println("lsq:", d)
	}

	opts := leastsquares.Options{
		SubtractFit:          *subtractFit || *scaleToFit,
		ScaleToFit:           *scaleToFit,
		PrintFormulaOnly:     *formulaOnly,
		StartC:               *startC,
		StepC:                *stepC,
		LogisticMethod:       leastsquares.LogisticMethod(*method),
		EmitConvergenceTrace: *trace,
	}
	if *trace {
		var lines []leastsquares.TraceLine
		opts.Trace = &lines
	}

	result, err := leastsquares.FitFromSeries(series, variant, opts)
	if opts.Trace != nil {
		printTrace(*opts.Trace)
	}
	if err != nil {
		return cli.Fail(cli.ExitAlloc, "lsq: %v", err)
	}

	return emit(result, series, *withTimestamp, opts)
}

// printTrace writes one convergence-trace line per recorded iteration to
// stderr: an inflation step shows only the new C, a regression step shows
// the updated (a, b, c) and the outer loop's relative error.
func printTrace(lines []leastsquares.TraceLine) {
	for _, l := range lines {
		if l.Inflation {
			fmt.Fprintf(os.Stderr, "lsq: trace iter=%d inflate c=%v\n", l.Iteration, l.C)
			continue
		}
		fmt.Fprintf(os.Stderr, "lsq: trace iter=%d a=%v b=%v c=%v err=%v\n", l.Iteration, l.A, l.B, l.C, l.Error)
	}
}

func selectVariant(exponential, logarithmic, logistic, squareRoot, square bool) (leastsquares.Variant, error) {
	count := 0
	variant := leastsquares.Linear
	pick := func(v leastsquares.Variant) {
		variant = v
		count++
	}
	if exponential {
		pick(leastsquares.Exponential)
	}
	if logarithmic {
		pick(leastsquares.Logarithmic)
	}
	if logistic {
		pick(leastsquares.Logistic)
	}
	if squareRoot {
		pick(leastsquares.SquareRoot)
	}
	if square {
		pick(leastsquares.Square)
	}
	if count > 1 {
		return variant, fmt.Errorf("at most one of -e -L -l -R -S may be given")
	}
	return variant, nil
}

func emit(result leastsquares.FitResult, series returns.Series, withTimestamp bool, opts leastsquares.Options) int {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if opts.PrintFormulaOnly {
		fmt.Fprintf(out, "%s: a=%v b=%v", result.Variant, result.A, result.B)
		if result.Variant == leastsquares.Logistic {
			fmt.Fprintf(out, " c=%v converged=%v iterations=%d", result.C, result.Converged, result.Iterations)
		}
		fmt.Fprintln(out, " "+result.Formula)
		return cli.ExitOK
	}

	values := result.Fitted
	if opts.SubtractFit {
		values = result.Residual
	}
	for i, v := range values {
		if withTimestamp && i < len(series) {
			fmt.Fprintf(out, "%s %v\n", series[i].Timestamp, v)
		} else {
			fmt.Fprintln(out, v)
		}
	}

	return cli.ExitOK
}

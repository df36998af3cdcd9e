// Command gain_window streams the windowed Shannon probability and
// gain over a canonical-format market series, using only the last W
// marginal returns at each step.
package main

import (
	"bufio"
	"fmt"
	"log"
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
	fs := cli.NewFlagSet("gain_window", "usage: gain_window -w W [-t] [filename]")
	window := fs.Int("w", 0, "window length in samples")
	withTimestamp := fs.Bool("t", false, "prepend the sample timestamp to each emitted line")

	if err := fs.Parse(args); err != nil {
		return cli.ExitArgs
	}
	if *window <= 0 {
		return cli.Fail(cli.ExitArgs, "gain_window: -w W is required and must be positive")
	}

	filename := ""
	if fs.NArg() > 0 {
		filename = fs.Arg(0)
	}

	f, err := cli.OpenInputOrStdin(filename)
	if err != nil {
		return cli.Fail(cli.ExitOpen, "gain_window: cannot open %s: %v", filename, err)
	}
	defer f.Close()

	series, diags, err := ingest.ReadCanonical(f)
	if err != nil {
		return cli.Fail(cli.ExitAlloc, "gain_window: read error: %v", err)
	}
	for _, d := range diags {
		log.Println("gain_window:", d)
	}

	return streamWindowed(series, *window, *withTimestamp)
}

func streamWindowed(series returns.Series, window int, withTimestamp bool) int {
	stream := returns.NewMarginalReturnStream(series)
	estimator := gain.NewWindowedEstimator(window)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	i := 1
	for {
		r, ok := stream.Next()
		if !ok {
			break
		}
		_, g, emitted := estimator.Update(r)
		if emitted {
			if withTimestamp {
				fmt.Fprintf(out, "%s %v\n", series[i].Timestamp, g)
			} else {
				fmt.Fprintln(out, g)
			}
		}
		i++
	}

	return cli.ExitOK
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// NewFlagSet wraps flag.NewFlagSet with flag.ContinueOnError and a
// usage banner redirected to stderr, so every command reports argument
// errors the same way instead of flag's default os.Exit(2) behavior
// (which would bypass ExitArgs).
func NewFlagSet(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		fs.PrintDefaults()
	}
	return fs
}

// OpenInputOrStdin opens path for reading, or returns os.Stdin when path
// is empty (the CLI surface's "filename optional" convention).
func OpenInputOrStdin(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// Fail prints a one-line diagnostic to stderr and returns the given
// exit code, for the caller to pass straight to os.Exit.
func Fail(code int, format string, args ...any) int {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return code
}

// Package cli holds the small amount of argument-parsing and exit-code
// plumbing shared by the numeric utilities' command-line front-ends.
// None of this belongs in the core packages: it exists only to keep
// each cmd/*/main.go thin and consistent with the others.
package cli

// Exit codes shared by every command-line front-end.
const (
	ExitOK    = 0
	ExitArgs  = 1 // argument error; also triggers help output
	ExitOpen  = 2 // input file could not be opened
	ExitClose = 3 // input file could not be closed/flushed cleanly
	ExitAlloc = 4 // allocation or internal processing failure
)

// Package ingest reads market data from external textual formats —
// the canonical whitespace-separated record format and Yahoo-style
// CSV — into a returns.Series, keeping all format-specific parsing out
// of the numerical core.
package ingest

import "fmt"

// Diagnostic describes one skipped or malformed input line. It is never
// an error: ingestion continues past a Diagnostic, accumulating it for
// the caller to report.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

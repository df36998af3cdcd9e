// Package returns holds the Sample/Series data model and the marginal
// return derivation that every downstream statistic (gain, confidence,
// leastsquares) is built on.
//
// A Series is an immutable, temporally ascending sequence of priced
// observations. Timestamps are opaque strings compared lexically — the
// package never parses dates, it only requires that the caller's
// timestamps already sort in temporal order (see package ingest for the
// collaborators that produce such timestamps from real calendar dates).
package returns

import "errors"

// Sentinel errors for Series construction.
var (
	// ErrNonPositiveValue indicates a sample's value was <= 0 and was
	// dropped rather than admitted into the Series.
	ErrNonPositiveValue = errors.New("returns: sample value must be positive")
)

// Sample is one time-ordered observation: an opaque, lexically orderable
// timestamp and a value. Value must be > 0 for any sample admitted into a
// Series; non-positive values are rejected upstream (see NewSeries).
type Sample struct {
	Timestamp string
	Value     float64
}

// Series is a finite, temporally ascending, immutable ordered sequence of
// Samples. Timestamps are weakly increasing; duplicates are tolerated.
// Once built by NewSeries, a Series is never mutated.
type Series []Sample

// SkipDiagnostic records one input sample dropped during Series
// construction, along with why.
type SkipDiagnostic struct {
	Index int
	Err   error
}

// NewSeries builds a Series from raw samples, dropping any sample whose
// value is non-positive and recording a SkipDiagnostic for it. It does
// not sort: temporal ordering is the caller's responsibility
// (package ingest's readers produce already-ascending Series).
func NewSeries(raw []Sample) (Series, []SkipDiagnostic) {
	out := make(Series, 0, len(raw))
	var skipped []SkipDiagnostic

	for i, s := range raw {
		if s.Value <= 0 {
			skipped = append(skipped, SkipDiagnostic{Index: i, Err: ErrNonPositiveValue})
			continue
		}
		out = append(out, s)
	}

	return out, skipped
}

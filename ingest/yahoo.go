package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/yoghaf/marketquant/returns"
)

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// ReadYahooCSV reads a Yahoo-style CSV: header `Date,Open,High,Low,
// Close,Volume`, followed by data rows of either 6 or 7 comma-separated
// fields (the upstream format sometimes carries an extra trailing
// field; both counts are accepted). The date field is `D-Mon-YY` or
// `D-MM-YY`; the fifth field is always close. Rows with non-positive
// close are rejected with a diagnostic. Output is sorted into ascending
// chronological order regardless of the input row order.
func ReadYahooCSV(r io.Reader) (returns.Series, []Diagnostic, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var samples []returns.Sample
	var diags []Diagnostic

	lineNo := 0
	headerSeen := false

	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, diags, err
		}
		lineNo++

		if !headerSeen {
			headerSeen = true
			if len(fields) > 0 && strings.HasPrefix(strings.ToLower(strings.TrimSpace(fields[0])), "date") {
				continue
			}
		}

		if len(fields) != 6 && len(fields) != 7 {
			diags = append(diags, Diagnostic{Line: lineNo, Message: fmt.Sprintf("expected 6 or 7 fields, got %d", len(fields))})
			continue
		}

		timestamp, err := parseYahooDate(strings.TrimSpace(fields[0]))
		if err != nil {
			diags = append(diags, Diagnostic{Line: lineNo, Message: err.Error()})
			continue
		}

		closePrice, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
		if err != nil {
			diags = append(diags, Diagnostic{Line: lineNo, Message: "unparseable close: " + fields[4]})
			continue
		}
		if closePrice <= 0 {
			diags = append(diags, Diagnostic{Line: lineNo, Message: "non-positive close"})
			continue
		}

		samples = append(samples, returns.Sample{Timestamp: timestamp, Value: closePrice})
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp < samples[j].Timestamp
	})

	return returns.Series(samples), diags, nil
}

// parseYahooDate parses "D-Mon-YY" or "D-MM-YY" into a zero-padded
// YYYYMMDD lexical timestamp, so sorting by string order sorts
// chronologically. Two-digit years follow the conventional epoch split:
// 00-69 -> 2000s, 70-99 -> 1900s.
func parseYahooDate(s string) (string, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed date %q", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("malformed day in date %q", s)
	}

	var month int
	if m, ok := monthNames[strings.ToLower(parts[1])]; ok {
		month = m
	} else {
		month, err = strconv.Atoi(parts[1])
		if err != nil {
			return "", fmt.Errorf("malformed month in date %q", s)
		}
	}

	yy, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", fmt.Errorf("malformed year in date %q", s)
	}
	year := yy + 1900
	if yy < 70 {
		year = yy + 2000
	}

	return fmt.Sprintf("%04d%02d%02d", year, month, day), nil
}

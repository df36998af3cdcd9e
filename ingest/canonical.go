package ingest

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yoghaf/marketquant/returns"
)

// ReadCanonical reads the whitespace-separated canonical record format:
// one record per line, minimum three fields `<timestamp> <identifier>
// <value>`, extra fields permitted (the last field is always the
// value, the first is always the timestamp). Blank lines are ignored;
// lines whose first non-whitespace character is '#' are comments.
func ReadCanonical(r io.Reader) (returns.Series, []Diagnostic, error) {
	scanner := bufio.NewScanner(r)

	var samples []returns.Sample
	var diags []Diagnostic

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			diags = append(diags, Diagnostic{Line: lineNo, Message: "fewer than 3 fields"})
			continue
		}

		timestamp := fields[0]
		raw := fields[len(fields)-1]

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			diags = append(diags, Diagnostic{Line: lineNo, Message: "unparseable value: " + raw})
			continue
		}
		if value <= 0 {
			diags = append(diags, Diagnostic{Line: lineNo, Message: "non-positive value"})
			continue
		}

		samples = append(samples, returns.Sample{Timestamp: timestamp, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, diags, err
	}

	return returns.Series(samples), diags, nil
}

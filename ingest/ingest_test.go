package ingest_test

import (
	"strings"
	"testing"

	"github.com/yoghaf/marketquant/ingest"
)

// TestScenarioS1YahooIngestion covers the Yahoo-style ingestion
// scenario: a two-row CSV, expected canonical output in ascending-time
// order with close prices 0.9015 then 0.8971.
func TestScenarioS1YahooIngestion(t *testing.T) {
	csv := "Date,Open,High,Low,Close,Volume\n" +
		"2-Jan-70,0.9118,0.9133,0.90,0.9015,23200\n" +
		"5-Jan-70,0.9015,0.9059,0.8897,0.8971,42400\n"

	series, diags, err := ingest.ReadYahooCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(series) != 2 {
		t.Fatalf("got %d samples, want 2", len(series))
	}

	if series[0].Value != 0.9015 || series[1].Value != 0.8971 {
		t.Fatalf("got close prices %v, %v; want 0.9015, 0.8971", series[0].Value, series[1].Value)
	}
	if series[0].Timestamp >= series[1].Timestamp {
		t.Fatalf("timestamps not ascending: %s, %s", series[0].Timestamp, series[1].Timestamp)
	}
}

func TestYahooAcceptsSevenFields(t *testing.T) {
	csv := "Date,Open,High,Low,Close,Volume\n" +
		"2-Jan-70,0.9118,0.9133,0.90,0.9015,23200,0\n"

	series, diags, err := ingest.ReadYahooCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(series) != 1 {
		t.Fatalf("got %d samples, want 1", len(series))
	}
}

func TestYahooRejectsNonPositiveClose(t *testing.T) {
	csv := "Date,Open,High,Low,Close,Volume\n" +
		"2-Jan-70,0.9118,0.9133,0.90,-0.1,23200\n"

	series, diags, err := ingest.ReadYahooCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 0 {
		t.Fatalf("got %d samples, want 0", len(series))
	}
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
}

func TestReadCanonicalBasic(t *testing.T) {
	data := "# comment\n\n20260101 GOOG 100.5\n20260102 GOOG extra-field 101.25\n"

	series, diags, err := ingest.ReadCanonical(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(series) != 2 {
		t.Fatalf("got %d samples, want 2", len(series))
	}
	if series[0].Value != 100.5 || series[1].Value != 101.25 {
		t.Fatalf("got values %v, %v", series[0].Value, series[1].Value)
	}
	if series[0].Timestamp != "20260101" {
		t.Fatalf("got timestamp %q, want 20260101", series[0].Timestamp)
	}
}

func TestReadCanonicalSkipsMalformed(t *testing.T) {
	data := "20260101 X\n20260102 X -5\n20260103 X 10\n"

	series, diags, err := ingest.ReadCanonical(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("got %d samples, want 1", len(series))
	}
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diags))
	}
}

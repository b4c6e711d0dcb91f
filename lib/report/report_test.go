package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/techishthoughts/serbench/lib/bench"
	"github.com/techishthoughts/serbench/lib/payload"
	"github.com/techishthoughts/serbench/lib/serializer"
)

// testResults runs short real benchmarks so the comparison operates on
// genuine aggregates
func testResults(t *testing.T) []*bench.BenchmarkResult {
	t.Helper()

	cfg := bench.DefaultConfig()
	cfg.Tier = payload.TierSmall
	cfg.Iterations = 2
	cfg.MemoryMonitoring = false

	registry := serializer.DefaultRegistry()
	var results []*bench.BenchmarkResult
	for _, name := range []string{"json", "gob", "binary"} {
		adapter, err := registry.Get(name)
		if err != nil {
			t.Fatalf("failed to get adapter %s: %v", name, err)
		}
		result, err := bench.Run(adapter, cfg)
		if err != nil {
			t.Fatalf("benchmark for %s failed: %v", name, err)
		}
		results = append(results, &result)
	}
	return results
}

// TestComparisonIndexing tests keying and replacement semantics
func TestComparisonIndexing(t *testing.T) {
	results := testResults(t)

	c := NewComparison(results)
	if c.Len() != 3 {
		t.Errorf("expected 3 indexed results, got %d", c.Len())
	}

	// Re-adding the same (backend, tier) replaces, not duplicates.
	c.Add(results[0])
	if c.Len() != 3 {
		t.Errorf("expected 3 results after replacement, got %d", c.Len())
	}
}

// TestRankings tests that every ranking covers all results and is ordered
func TestRankings(t *testing.T) {
	c := NewComparison(testResults(t))

	fastest := c.FastestSerialization()
	if len(fastest) != 3 {
		t.Fatalf("expected 3 ranked entries, got %d", len(fastest))
	}
	for i := 1; i < len(fastest); i++ {
		if fastest[i].Value < fastest[i-1].Value {
			t.Errorf("fastest ranking not ascending at position %d", i)
		}
	}

	smallest := c.SmallestPayload()
	if len(smallest) != 3 {
		t.Fatalf("expected 3 ranked entries, got %d", len(smallest))
	}
	for i := 1; i < len(smallest); i++ {
		if smallest[i].Value < smallest[i-1].Value {
			t.Errorf("smallest ranking not ascending at position %d", i)
		}
	}

	best := c.BestCompression()
	if len(best) != 3 {
		t.Fatalf("expected 3 ranked entries, got %d", len(best))
	}
	for _, e := range best {
		if e.Value <= 0 || e.Value > 1.5 {
			t.Errorf("implausible compression ratio %f for %s", e.Value, e.Key.Backend)
		}
	}
	// The binary backend only supports the NONE passthrough (ratio 1.0), so
	// it can never beat a backend with real compression.
	if best[0].Key.Backend == "binary" {
		t.Error("passthrough backend ranked best for compression")
	}
}

// TestRenderTable tests the formatted summary output
func TestRenderTable(t *testing.T) {
	c := NewComparison(testResults(t))

	var buf bytes.Buffer
	c.RenderTable(&buf)
	out := buf.String()

	for _, want := range []string{
		"RESULTS", "FASTEST SERIALIZATION", "SMALLEST PAYLOAD", "BEST COMPRESSION",
		"json", "gob", "binary", "SMALL",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

// TestWriteCSV tests the CSV export layout
func TestWriteCSV(t *testing.T) {
	c := NewComparison(testResults(t))

	var buf bytes.Buffer
	if err := c.WriteCSV(&buf); err != nil {
		t.Fatalf("failed to write CSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}

	// Header plus one row per result.
	if len(records) != 4 {
		t.Fatalf("expected 4 CSV records, got %d", len(records))
	}
	if records[0][0] != "backend" || records[0][1] != "tier" {
		t.Errorf("unexpected header: %v", records[0])
	}

	for _, row := range records[1:] {
		if len(row) != len(csvHeader) {
			t.Errorf("expected %d columns, got %d", len(csvHeader), len(row))
		}
		if row[1] != "SMALL" {
			t.Errorf("expected tier SMALL, got %s", row[1])
		}
		// Monitoring was off, so resource columns must be empty, not zero.
		if row[len(row)-1] != "" || row[len(row)-2] != "" {
			t.Errorf("expected empty resource cells, got %q and %q", row[len(row)-2], row[len(row)-1])
		}
	}
}

// TestEmptyComparison tests rendering with no results
func TestEmptyComparison(t *testing.T) {
	c := NewComparison(nil)

	if c.Len() != 0 {
		t.Errorf("expected empty comparison, got %d results", c.Len())
	}

	var buf bytes.Buffer
	c.RenderTable(&buf)
	if buf.Len() == 0 {
		t.Error("expected section headers even with no results")
	}

	buf.Reset()
	if err := c.WriteCSV(&buf); err != nil {
		t.Fatalf("failed to write CSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected header only, got %d records", len(records))
	}
}

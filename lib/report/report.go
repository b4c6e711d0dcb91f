package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/techishthoughts/serbench/lib/bench"
	"github.com/techishthoughts/serbench/lib/payload"
)

// Key identifies one (backend, tier) result in a comparison.
type Key struct {
	Backend string
	Tier    payload.ComplexityTier
}

// Entry is one ranked row: a key plus the metric it was ranked by.
type Entry struct {
	Key   Key
	Value float64
}

// Comparison holds a set of benchmark results for ranking and tabulation.
type Comparison struct {
	results map[Key]*bench.BenchmarkResult
}

// NewComparison indexes results by (backend, tier). Later results for the
// same key replace earlier ones.
func NewComparison(results []*bench.BenchmarkResult) *Comparison {
	c := &Comparison{results: make(map[Key]*bench.BenchmarkResult, len(results))}
	for _, r := range results {
		c.results[Key{Backend: r.Backend, Tier: r.Config.Tier}] = r
	}
	return c
}

// Add inserts or replaces one result.
func (c *Comparison) Add(r *bench.BenchmarkResult) {
	c.results[Key{Backend: r.Backend, Tier: r.Config.Tier}] = r
}

// Len returns the number of indexed results.
func (c *Comparison) Len() int { return len(c.results) }

// FastestSerialization ranks by mean serialization time, ascending. Results
// without a mean (no successful iteration) are excluded.
func (c *Comparison) FastestSerialization() []Entry {
	return c.rank(func(r *bench.BenchmarkResult) (float64, bool) {
		mean, ok := r.MeanSerializationTime()
		return float64(mean.Nanoseconds()) / 1e6, ok
	}, true)
}

// SmallestPayload ranks by mean serialized size in bytes, ascending.
func (c *Comparison) SmallestPayload() []Entry {
	return c.rank(func(r *bench.BenchmarkResult) (float64, bool) {
		return r.MeanSerializedSize()
	}, true)
}

// BestCompression ranks by mean compression ratio, ascending (lower ratio
// means better compression).
func (c *Comparison) BestCompression() []Entry {
	return c.rank(func(r *bench.BenchmarkResult) (float64, bool) {
		return r.MeanCompressionRatio()
	}, true)
}

func (c *Comparison) rank(metric func(*bench.BenchmarkResult) (float64, bool), ascending bool) []Entry {
	entries := make([]Entry, 0, len(c.results))
	for key, r := range c.results {
		if v, ok := metric(r); ok {
			entries = append(entries, Entry{Key: key, Value: v})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			if ascending {
				return entries[i].Value < entries[j].Value
			}
			return entries[i].Value > entries[j].Value
		}
		// Stable tie-break so rankings are deterministic.
		if entries[i].Key.Backend != entries[j].Key.Backend {
			return entries[i].Key.Backend < entries[j].Key.Backend
		}
		return entries[i].Key.Tier < entries[j].Key.Tier
	})
	return entries
}

// RenderTable writes a formatted summary of all results and rankings.
func (c *Comparison) RenderTable(w io.Writer) {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addSection("Results")
	sb.WriteString(fmt.Sprintf("  %-10s %-8s %12s %12s %10s %10s %10s\n",
		"BACKEND", "TIER", "MEAN (ms)", "P95 (ms)", "SIZE (KB)", "RATIO", "SUCCESS"))

	for _, key := range c.sortedKeys() {
		r := c.results[key]
		sb.WriteString(fmt.Sprintf("  %-10s %-8s %12s %12s %10s %10s %9.1f%%\n",
			key.Backend,
			key.Tier,
			formatDuration(r.MeanSerializationTime),
			formatDuration(func() (time.Duration, bool) { return r.SerializationTimePercentile(95) }),
			formatFloat(func() (float64, bool) {
				size, ok := r.MeanSerializedSize()
				return size / 1024.0, ok
			}),
			formatFloat(r.MeanCompressionRatio),
			r.SuccessRatePercent(),
		))
	}

	addSection("Fastest Serialization")
	for i, e := range c.FastestSerialization() {
		sb.WriteString(fmt.Sprintf("  %d. %s/%s (%.3f ms)\n", i+1, e.Key.Backend, e.Key.Tier, e.Value))
	}

	addSection("Smallest Payload")
	for i, e := range c.SmallestPayload() {
		sb.WriteString(fmt.Sprintf("  %d. %s/%s (%.0f bytes)\n", i+1, e.Key.Backend, e.Key.Tier, e.Value))
	}

	addSection("Best Compression")
	for i, e := range c.BestCompression() {
		sb.WriteString(fmt.Sprintf("  %d. %s/%s (ratio %.3f)\n", i+1, e.Key.Backend, e.Key.Tier, e.Value))
	}

	fmt.Fprint(w, sb.String())
}

func (c *Comparison) sortedKeys() []Key {
	keys := make([]Key, 0, len(c.results))
	for key := range c.results {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Backend != keys[j].Backend {
			return keys[i].Backend < keys[j].Backend
		}
		return tierOrder(keys[i].Tier) < tierOrder(keys[j].Tier)
	})
	return keys
}

func tierOrder(t payload.ComplexityTier) int {
	for i, tier := range payload.Tiers() {
		if tier == t {
			return i
		}
	}
	return len(payload.Tiers())
}

func formatDuration(f func() (time.Duration, bool)) string {
	d, ok := f()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.3f", float64(d.Nanoseconds())/1e6)
}

func formatFloat(f func() (float64, bool)) string {
	v, ok := f()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}

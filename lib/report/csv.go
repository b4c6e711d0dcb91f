package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// csvHeader is the column layout of WriteCSV, one row per (backend, tier).
var csvHeader = []string{
	"backend", "tier", "iterations", "success_rate_percent",
	"mean_serialization_ms", "p50_serialization_ms", "p95_serialization_ms", "p99_serialization_ms",
	"mean_size_bytes", "mean_compression_ratio", "mean_throughput_bytes_per_sec",
	"roundtrip_success", "peak_heap_mb", "avg_cpu_percent",
}

// WriteCSV exports all results as CSV. Absent aggregates are written as
// empty cells so downstream tooling can tell "no data" from zero.
func (c *Comparison) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, key := range c.sortedKeys() {
		r := c.results[key]

		row := []string{
			key.Backend,
			string(key.Tier),
			fmt.Sprintf("%d", r.Iterations()),
			fmt.Sprintf("%.1f", r.SuccessRatePercent()),
			csvDuration(r.MeanSerializationTime),
			csvDuration(func() (time.Duration, bool) { return r.SerializationTimePercentile(50) }),
			csvDuration(func() (time.Duration, bool) { return r.SerializationTimePercentile(95) }),
			csvDuration(func() (time.Duration, bool) { return r.SerializationTimePercentile(99) }),
			csvFloat(r.MeanSerializedSize, "%.0f"),
			csvFloat(r.MeanCompressionRatio, "%.4f"),
			csvFloat(r.MeanThroughputBytes, "%.0f"),
			fmt.Sprintf("%t", r.RoundtripSuccess),
			csvFloat(func() (float64, bool) {
				if r.Resources == nil {
					return 0, false
				}
				return r.Resources.MemoryUsageMB(), true
			}, "%.2f"),
			csvFloat(func() (float64, bool) {
				if r.Resources == nil || !r.Resources.CPUValid {
					return 0, false
				}
				return r.Resources.AvgCPUPercent, true
			}, "%.2f"),
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvDuration(f func() (time.Duration, bool)) string {
	d, ok := f()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.4f", float64(d.Nanoseconds())/1e6)
}

func csvFloat(f func() (float64, bool), format string) string {
	v, ok := f()
	if !ok {
		return ""
	}
	return fmt.Sprintf(format, v)
}

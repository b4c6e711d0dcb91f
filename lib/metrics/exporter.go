package metrics

import (
	"fmt"
	"io"

	vm "github.com/VictoriaMetrics/metrics"

	"github.com/techishthoughts/serbench/lib/bench"
)

// Exporter collects benchmark aggregates into an isolated metrics set. Each
// sweep owns its exporter; nothing is registered globally.
type Exporter struct {
	set *vm.Set
}

// NewExporter creates an empty exporter.
func NewExporter() *Exporter {
	return &Exporter{set: vm.NewSet()}
}

// Publish sets the labeled gauges for one benchmark result. Absent
// aggregates (no successful iteration, no resource snapshot) leave their
// gauges unset rather than reporting zero.
func (e *Exporter) Publish(result *bench.BenchmarkResult) {
	backend := result.Backend
	tier := string(result.Config.Tier)

	if mean, ok := result.MeanSerializationTime(); ok {
		e.gauge("serialization_time_ms", backend, tier).Set(float64(mean.Nanoseconds()) / 1e6)
	}
	if ops, ok := result.MeanObjectsPerSecond(); ok {
		e.gauge("serialization_throughput_ops", backend, tier).Set(ops)
	}
	if size, ok := result.MeanSerializedSize(); ok {
		e.gauge("payload_size_bytes", backend, tier).Set(size)
	}
	if ratio, ok := result.MeanCompressionRatio(); ok {
		e.gauge("compression_ratio", backend, tier).Set(ratio)
	}
	if res := result.Resources; res != nil {
		e.gauge("memory_usage_mb", backend, tier).Set(res.MemoryUsageMB())
		if res.CPUValid {
			e.gauge("cpu_usage_percent", backend, tier).Set(res.AvgCPUPercent)
		}
	}
}

// WritePrometheus writes all published samples in Prometheus text format.
func (e *Exporter) WritePrometheus(w io.Writer) {
	e.set.WritePrometheus(w)
}

func (e *Exporter) gauge(name, backend, tier string) *vm.Gauge {
	return e.set.GetOrCreateGauge(fmt.Sprintf(`%s{backend=%q,tier=%q}`, name, backend, tier), nil)
}

package bench

import (
	"fmt"
	"strings"

	"github.com/techishthoughts/serbench/lib/payload"
)

// Configuration defaults. Every BenchmarkConfig field falls back to these;
// constructing a config never fails on missing fields.
const (
	DefaultIterations       = 10
	DefaultWarmupIterations = 3
	DefaultTier             = payload.TierMedium
)

// BenchmarkConfig holds the recognized options for one benchmark run.
// The zero value is not used directly; call DefaultConfig and override.
type BenchmarkConfig struct {
	// Tier selects the workload size class.
	Tier payload.ComplexityTier
	// Seed feeds the dataset generator. Identical seeds yield identical
	// datasets across backends.
	Seed int64
	// Iterations is the number of measured repetitions (at least 1).
	Iterations int
	// Warmup enables discarded warmup iterations before measuring.
	Warmup           bool
	WarmupIterations int
	// Compression enables the compress/decompress leg of each iteration.
	Compression bool
	// CompressionAlgorithm picks a codec by name. Empty means the adapter's
	// first supported algorithm.
	CompressionAlgorithm string
	// Roundtrip enables the deserialize-and-compare-counts check.
	Roundtrip bool
	// MemoryMonitoring attaches a resource monitor to the measure window.
	MemoryMonitoring bool
}

// DefaultConfig returns the documented defaults: tier MEDIUM, 10 iterations,
// warmup off (3 iterations when enabled), compression on, roundtrip on,
// memory monitoring on, fixed generator seed.
func DefaultConfig() BenchmarkConfig {
	return BenchmarkConfig{
		Tier:             DefaultTier,
		Seed:             payload.DefaultSeed,
		Iterations:       DefaultIterations,
		Warmup:           false,
		WarmupIterations: DefaultWarmupIterations,
		Compression:      true,
		Roundtrip:        true,
		MemoryMonitoring: true,
	}
}

// normalized returns a copy with out-of-range fields clamped to defaults.
func (c BenchmarkConfig) normalized() BenchmarkConfig {
	if c.Tier == "" {
		c.Tier = DefaultTier
	}
	if c.Iterations < 1 {
		c.Iterations = DefaultIterations
	}
	if c.WarmupIterations < 1 {
		c.WarmupIterations = DefaultWarmupIterations
	}
	return c
}

// String returns a formatted representation of the configuration.
func (c BenchmarkConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Workload")
	addField("Complexity Tier", string(c.Tier))
	addField("Generator Seed", fmt.Sprintf("%d", c.Seed))

	addSection("Measurement")
	addField("Iterations", fmt.Sprintf("%d", c.Iterations))
	if c.Warmup {
		addField("Warmup", fmt.Sprintf("on (%d iterations)", c.WarmupIterations))
	} else {
		addField("Warmup", "off")
	}
	addField("Compression", onOff(c.Compression))
	if c.Compression && c.CompressionAlgorithm != "" {
		addField("Compression Algorithm", c.CompressionAlgorithm)
	}
	addField("Roundtrip Check", onOff(c.Roundtrip))
	addField("Memory Monitoring", onOff(c.MemoryMonitoring))

	return sb.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

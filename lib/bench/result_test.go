package bench

import (
	"errors"
	"math"
	"testing"
	"time"
)

// TestSerializationResult tests the derived metrics of a successful result
func TestSerializationResult(t *testing.T) {
	data := make([]byte, 2048)
	r := NewSerializationResult("json", "JSON", data, 2*time.Millisecond, 10)

	if !r.Success {
		t.Error("expected successful result")
	}
	if r.Error != "" {
		t.Errorf("expected empty error, got %q", r.Error)
	}
	if r.SizeBytes() != 2048 {
		t.Errorf("expected 2048 bytes, got %d", r.SizeBytes())
	}
	if r.SizeKB() != 2.0 {
		t.Errorf("expected 2.0 KB, got %f", r.SizeKB())
	}

	// 2048 bytes in 2ms = 1024000 bytes/s
	if got := r.BytesPerSecond(); math.Abs(got-1024000) > 1 {
		t.Errorf("expected ~1024000 bytes/s, got %f", got)
	}
	// 10 objects in 2ms = 5000 objects/s
	if got := r.ObjectsPerSecond(); math.Abs(got-5000) > 0.001 {
		t.Errorf("expected 5000 objects/s, got %f", got)
	}
}

// TestFailedSerialization tests that a failed result has no data and carries
// the error message
func TestFailedSerialization(t *testing.T) {
	r := FailedSerialization("gob", "GOB", errors.New("boom"))

	if r.Success {
		t.Error("expected failed result")
	}
	if r.Error != "boom" {
		t.Errorf("expected error 'boom', got %q", r.Error)
	}
	if r.Data != nil {
		t.Error("expected nil data on failure")
	}
	if r.BytesPerSecond() != 0 {
		t.Error("expected zero throughput on failure")
	}
}

// TestCompressionResult tests ratio and savings calculations
func TestCompressionResult(t *testing.T) {
	compressed := make([]byte, 250)
	r := NewCompressionResult("GZIP", compressed, 1000, time.Millisecond)

	if !r.Success {
		t.Error("expected successful result")
	}
	if got := r.Ratio(); math.Abs(got-0.25) > 0.0001 {
		t.Errorf("expected ratio 0.25, got %f", got)
	}
	if got := r.SpaceSavings(); math.Abs(got-0.75) > 0.0001 {
		t.Errorf("expected savings 0.75, got %f", got)
	}
	if r.CompressedSize() != 250 {
		t.Errorf("expected compressed size 250, got %d", r.CompressedSize())
	}
}

// TestCompressionResultZeroOriginal tests the zero-size edge case
func TestCompressionResultZeroOriginal(t *testing.T) {
	r := NewCompressionResult("GZIP", []byte{}, 0, time.Millisecond)
	if got := r.Ratio(); got != 0 {
		t.Errorf("expected ratio 0 for empty input, got %f", got)
	}
}

// TestUncompressedResult tests the NONE passthrough
func TestUncompressedResult(t *testing.T) {
	data := []byte("raw bytes")
	r := UncompressedResult(data)

	if r.Algorithm != "NONE" {
		t.Errorf("expected algorithm NONE, got %s", r.Algorithm)
	}
	if got := r.Ratio(); math.Abs(got-1.0) > 0.0001 {
		t.Errorf("expected ratio 1.0, got %f", got)
	}
	if !r.Success {
		t.Error("expected successful result")
	}
}

// TestBenchmarkResultAggregates tests the (value, ok) aggregate accessors
// over a hand-built result
func TestBenchmarkResultAggregates(t *testing.T) {
	r := BenchmarkResult{Backend: "json"}
	r.serializationResults = []SerializationResult{
		NewSerializationResult("json", "JSON", make([]byte, 100), 10*time.Millisecond, 10),
		NewSerializationResult("json", "JSON", make([]byte, 300), 30*time.Millisecond, 10),
		FailedSerialization("json", "JSON", errors.New("boom")),
	}
	r.compressionResults = []CompressionResult{
		NewCompressionResult("GZIP", make([]byte, 50), 100, time.Millisecond),
		NewCompressionResult("GZIP", make([]byte, 150), 300, time.Millisecond),
	}

	if got := r.Iterations(); got != 3 {
		t.Errorf("expected 3 iterations, got %d", got)
	}
	if got := r.SuccessfulSerializations(); got != 2 {
		t.Errorf("expected 2 successful serializations, got %d", got)
	}
	if got := r.FailedSerializations(); got != 1 {
		t.Errorf("expected 1 failed serialization, got %d", got)
	}
	if got := r.SuccessRatePercent(); math.Abs(got-66.666) > 0.01 {
		t.Errorf("expected ~66.67%% success rate, got %f", got)
	}

	mean, ok := r.MeanSerializationTime()
	if !ok {
		t.Fatal("expected mean serialization time to be present")
	}
	if mean != 20*time.Millisecond {
		t.Errorf("expected mean 20ms, got %s", mean)
	}

	size, ok := r.MeanSerializedSize()
	if !ok {
		t.Fatal("expected mean size to be present")
	}
	if math.Abs(size-200) > 0.001 {
		t.Errorf("expected mean size 200, got %f", size)
	}

	ratio, ok := r.MeanCompressionRatio()
	if !ok {
		t.Fatal("expected mean compression ratio to be present")
	}
	if math.Abs(ratio-0.5) > 0.001 {
		t.Errorf("expected mean ratio 0.5, got %f", ratio)
	}

	p50, ok := r.SerializationTimePercentile(50)
	if !ok {
		t.Fatal("expected p50 to be present")
	}
	if p50 < 10*time.Millisecond || p50 > 30*time.Millisecond {
		t.Errorf("p50 out of range: %s", p50)
	}
}

// TestBenchmarkResultEmptyAggregates tests that aggregates over no successful
// iterations report absence instead of zero
func TestBenchmarkResultEmptyAggregates(t *testing.T) {
	r := BenchmarkResult{Backend: "json"}
	r.serializationResults = []SerializationResult{
		FailedSerialization("json", "JSON", errors.New("boom")),
	}

	if _, ok := r.MeanSerializationTime(); ok {
		t.Error("expected mean serialization time to be absent")
	}
	if _, ok := r.MeanSerializedSize(); ok {
		t.Error("expected mean size to be absent")
	}
	if _, ok := r.MeanCompressionRatio(); ok {
		t.Error("expected mean compression ratio to be absent")
	}
	if _, ok := r.SerializationTimePercentile(95); ok {
		t.Error("expected p95 to be absent")
	}
	if got := r.SuccessRatePercent(); got != 0 {
		t.Errorf("expected 0%% success rate, got %f", got)
	}
}

// TestResultAccessorsCopy tests that the slice accessors return copies
func TestResultAccessorsCopy(t *testing.T) {
	r := BenchmarkResult{}
	r.serializationResults = []SerializationResult{
		NewSerializationResult("json", "JSON", []byte{1}, time.Millisecond, 1),
	}

	out := r.SerializationResults()
	out[0].Backend = "mutated"

	if r.serializationResults[0].Backend != "json" {
		t.Error("accessor leaked the internal slice")
	}
}

// TestConfigNormalization tests clamping of out-of-range config fields
func TestConfigNormalization(t *testing.T) {
	cfg := BenchmarkConfig{Iterations: -5, WarmupIterations: 0}
	n := cfg.normalized()

	if n.Tier != DefaultTier {
		t.Errorf("expected default tier, got %s", n.Tier)
	}
	if n.Iterations != DefaultIterations {
		t.Errorf("expected %d iterations, got %d", DefaultIterations, n.Iterations)
	}
	if n.WarmupIterations != DefaultWarmupIterations {
		t.Errorf("expected %d warmup iterations, got %d", DefaultWarmupIterations, n.WarmupIterations)
	}
}

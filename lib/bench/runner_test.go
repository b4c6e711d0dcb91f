package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/techishthoughts/serbench/lib/payload"
)

// fakeAdapter is a scriptable adapter for orchestrator tests. It serializes
// via JSON so roundtrip checks operate on real data.
type fakeAdapter struct {
	name string

	serializeCalls   int
	deserializeCalls int

	// failSerializeAt fails the n-th Serialize call (1-based, 0 = never).
	failSerializeAt int
	// violateContract returns a successful result without data.
	violateContract bool
	// dropUsers removes users from every deserialized dataset.
	dropUsers int
	// failDeserialize makes every Deserialize call error.
	failDeserialize bool
	// algorithms overrides the supported compression algorithm list.
	algorithms []string
}

func (f *fakeAdapter) Name() string   { return f.name }
func (f *fakeAdapter) Format() string { return "JSON" }

func (f *fakeAdapter) Serialize(ds *payload.Dataset) SerializationResult {
	f.serializeCalls++

	if f.violateContract {
		return NewSerializationResult(f.name, "JSON", nil, time.Millisecond, ds.ObjectCount())
	}
	if f.failSerializeAt > 0 && f.serializeCalls == f.failSerializeAt {
		return FailedSerialization(f.name, "JSON", errors.New("injected serialize failure"))
	}

	data, err := json.Marshal(ds)
	if err != nil {
		return FailedSerialization(f.name, "JSON", err)
	}
	return NewSerializationResult(f.name, "JSON", data, time.Millisecond, ds.ObjectCount())
}

func (f *fakeAdapter) Deserialize(data []byte) (*payload.Dataset, error) {
	f.deserializeCalls++

	if f.failDeserialize {
		return nil, errors.New("injected deserialize failure")
	}

	var ds payload.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	if f.dropUsers > 0 && len(ds.Users) >= f.dropUsers {
		ds.Users = ds.Users[:len(ds.Users)-f.dropUsers]
	}
	return &ds, nil
}

func (f *fakeAdapter) Compress(data []byte, algorithm string) CompressionResult {
	if algorithm == "NONE" {
		return UncompressedResult(data)
	}
	// Fake "compression": prefix the data so decompression is checkable.
	out := append([]byte("c:"), data...)
	return NewCompressionResult(algorithm, out, len(data), time.Millisecond)
}

func (f *fakeAdapter) Decompress(data []byte, algorithm string) ([]byte, error) {
	if algorithm == "NONE" {
		return data, nil
	}
	if len(data) < 2 || string(data[:2]) != "c:" {
		return nil, fmt.Errorf("not compressed data")
	}
	return data[2:], nil
}

func (f *fakeAdapter) SupportedCompressionAlgorithms() []string {
	if f.algorithms != nil {
		return f.algorithms
	}
	return []string{"FAKE", "NONE"}
}

func (f *fakeAdapter) SupportsSchemaEvolution() bool { return true }

func (f *fakeAdapter) RunBenchmark(cfg BenchmarkConfig) BenchmarkResult {
	result, _ := Run(f, cfg)
	return result
}

// testConfig returns a small, fast config with monitoring disabled
func testConfig() BenchmarkConfig {
	cfg := DefaultConfig()
	cfg.Tier = payload.TierSmall
	cfg.Iterations = 5
	cfg.MemoryMonitoring = false
	return cfg
}

// TestRunFailureIsolation tests that a single failed iteration is recorded
// while the run itself stays successful
func TestRunFailureIsolation(t *testing.T) {
	adapter := &fakeAdapter{name: "fake", failSerializeAt: 3}

	result, err := Run(adapter, testConfig())
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	if !result.Success {
		t.Error("expected run success despite one failed iteration")
	}
	if got := result.Iterations(); got != 5 {
		t.Errorf("expected 5 recorded iterations, got %d", got)
	}
	if got := result.SuccessfulSerializations(); got != 4 {
		t.Errorf("expected 4 successful serializations, got %d", got)
	}
	if got := result.FailedSerializations(); got != 1 {
		t.Errorf("expected 1 failed serialization, got %d", got)
	}
	if got := result.SuccessRatePercent(); got != 80.0 {
		t.Errorf("expected 80%% success rate, got %f", got)
	}
	if !result.RoundtripSuccess {
		t.Error("expected roundtrip success")
	}

	// The failed iteration must carry an error message.
	for _, sr := range result.SerializationResults() {
		if !sr.Success && sr.Error == "" {
			t.Error("failed iteration has no error message")
		}
	}
}

// TestRunCompression tests that the compress/decompress leg is measured and
// the first supported algorithm is picked
func TestRunCompression(t *testing.T) {
	adapter := &fakeAdapter{name: "fake"}

	result, err := Run(adapter, testConfig())
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	crs := result.CompressionResults()
	if len(crs) != 5 {
		t.Fatalf("expected 5 compression results, got %d", len(crs))
	}
	for _, cr := range crs {
		if cr.Algorithm != "FAKE" {
			t.Errorf("expected algorithm FAKE, got %s", cr.Algorithm)
		}
		if !cr.Success {
			t.Errorf("expected successful compression, got error %q", cr.Error)
		}
	}
	if !result.RoundtripSuccess {
		t.Error("expected roundtrip success through the compressed path")
	}
}

// TestRunCompressionDisabled tests that no compression records appear when
// the leg is off
func TestRunCompressionDisabled(t *testing.T) {
	adapter := &fakeAdapter{name: "fake"}
	cfg := testConfig()
	cfg.Compression = false

	result, err := Run(adapter, cfg)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if got := len(result.CompressionResults()); got != 0 {
		t.Errorf("expected no compression results, got %d", got)
	}
	if _, ok := result.MeanCompressionRatio(); ok {
		t.Error("expected mean compression ratio to be absent")
	}
}

// TestRunAlgorithmFallback tests the NONE fallback for backends without
// compression support
func TestRunAlgorithmFallback(t *testing.T) {
	adapter := &fakeAdapter{name: "fake", algorithms: []string{"NONE"}}

	result, err := Run(adapter, testConfig())
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	for _, cr := range result.CompressionResults() {
		if cr.Algorithm != "NONE" {
			t.Errorf("expected algorithm NONE, got %s", cr.Algorithm)
		}
		if cr.Ratio() != 1.0 {
			t.Errorf("expected ratio 1.0 for NONE, got %f", cr.Ratio())
		}
	}
}

// TestRunContractViolation tests that a successful result without data
// aborts the run with a fatal error
func TestRunContractViolation(t *testing.T) {
	adapter := &fakeAdapter{name: "fake", violateContract: true}

	result, err := Run(adapter, testConfig())
	if err == nil {
		t.Fatal("expected fatal error for contract violation")
	}

	var cv *ContractViolationError
	if !errors.As(err, &cv) {
		t.Fatalf("expected ContractViolationError, got %T", err)
	}
	if cv.Phase != "serialize" {
		t.Errorf("expected serialize phase, got %s", cv.Phase)
	}
	if result.Success {
		t.Error("expected result marked unsuccessful")
	}
	if result.Error == "" {
		t.Error("expected error message on result")
	}
}

// TestRunUnknownTier tests that an invalid tier fails the run before any
// iteration executes
func TestRunUnknownTier(t *testing.T) {
	adapter := &fakeAdapter{name: "fake"}
	cfg := testConfig()
	cfg.Tier = payload.ComplexityTier("GIGANTIC")

	result, err := Run(adapter, cfg)
	if err == nil {
		t.Fatal("expected error for unknown tier")
	}

	var ge *GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError, got %T", err)
	}
	if adapter.serializeCalls != 0 {
		t.Errorf("expected no serialize calls, got %d", adapter.serializeCalls)
	}
	if result.Success {
		t.Error("expected result marked unsuccessful")
	}
}

// TestRunWarmupDiscarded tests that warmup iterations execute but are not
// recorded
func TestRunWarmupDiscarded(t *testing.T) {
	adapter := &fakeAdapter{name: "fake"}
	cfg := testConfig()
	cfg.Warmup = true
	cfg.WarmupIterations = 2
	cfg.Iterations = 3
	cfg.Compression = false

	result, err := Run(adapter, cfg)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	if got := result.Iterations(); got != 3 {
		t.Errorf("expected 3 recorded iterations, got %d", got)
	}
	// 2 warmup + 3 measured
	if adapter.serializeCalls != 5 {
		t.Errorf("expected 5 serialize calls, got %d", adapter.serializeCalls)
	}
}

// TestRunRoundtripMismatch tests that an object count mismatch flags the run
// without failing it
func TestRunRoundtripMismatch(t *testing.T) {
	adapter := &fakeAdapter{name: "fake", dropUsers: 1}

	result, err := Run(adapter, testConfig())
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if result.RoundtripSuccess {
		t.Error("expected roundtrip flagged unsuccessful")
	}
	if !result.Success {
		t.Error("expected run success despite roundtrip mismatch")
	}
	if got := result.SuccessRatePercent(); got != 100.0 {
		t.Errorf("expected 100%% serialization success rate, got %f", got)
	}
}

// TestRunDeserializeFailure tests that a failing roundtrip leg is tolerated
func TestRunDeserializeFailure(t *testing.T) {
	adapter := &fakeAdapter{name: "fake", failDeserialize: true}
	cfg := testConfig()
	cfg.Compression = false

	result, err := Run(adapter, cfg)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if result.RoundtripSuccess {
		t.Error("expected roundtrip flagged unsuccessful")
	}
	if !result.Success {
		t.Error("expected run success despite deserialize failures")
	}
}

// TestRunRoundtripDisabled tests that no deserialize calls happen when the
// check is off
func TestRunRoundtripDisabled(t *testing.T) {
	adapter := &fakeAdapter{name: "fake"}
	cfg := testConfig()
	cfg.Roundtrip = false
	cfg.Compression = false

	result, err := Run(adapter, cfg)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if adapter.deserializeCalls != 0 {
		t.Errorf("expected no deserialize calls, got %d", adapter.deserializeCalls)
	}
	if !result.RoundtripSuccess {
		t.Error("expected roundtrip to stay true when disabled")
	}
}

// TestRunMetadata tests run identity and timing fields
func TestRunMetadata(t *testing.T) {
	adapter := &fakeAdapter{name: "fake"}

	a, err := Run(adapter, testConfig())
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	b, err := Run(adapter, testConfig())
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	if a.RunID == "" || b.RunID == "" {
		t.Error("expected non-empty run IDs")
	}
	if a.RunID == b.RunID {
		t.Error("expected unique run IDs per run")
	}
	if a.Backend != "fake" {
		t.Errorf("expected backend 'fake', got %s", a.Backend)
	}
	if a.EndTime.Before(a.StartTime) {
		t.Error("expected EndTime >= StartTime")
	}
	if a.TotalDuration() < 0 {
		t.Error("expected non-negative total duration")
	}
}

// TestRunWithMonitoring tests that a monitored run attaches a resource
// snapshot
func TestRunWithMonitoring(t *testing.T) {
	adapter := &fakeAdapter{name: "fake"}
	cfg := testConfig()
	cfg.MemoryMonitoring = true

	runner := &Runner{MonitorInterval: 10 * time.Millisecond}
	result, err := runner.Run(adapter, cfg)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if result.Resources == nil {
		t.Fatal("expected resource snapshot")
	}
	if !result.Resources.Valid {
		t.Error("expected valid snapshot")
	}
	if result.Resources.SampleCount < 1 {
		t.Errorf("expected at least one sample, got %d", result.Resources.SampleCount)
	}
}

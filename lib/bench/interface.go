package bench

import "github.com/techishthoughts/serbench/lib/payload"

// Adapter is the contract every serialization backend must implement.
// Adapters must not retain cross-call mutable state that affects the
// correctness of subsequent runs; warm caches are acceptable as long as they
// only change performance.
type Adapter interface {
	// Name returns the stable backend identifier used as the grouping key
	// in all results.
	Name() string
	// Format returns a human-readable wire format label (e.g. "JSON").
	Format() string
	// Serialize encodes the dataset, timing only the encode step itself.
	Serialize(ds *payload.Dataset) SerializationResult
	// Deserialize reconstructs an object graph whose element counts match
	// the original. Deep field equality is not required.
	Deserialize(data []byte) (*payload.Dataset, error)
	// Compress compresses serialized bytes with the named algorithm. A
	// backend without compression support returns a result with algorithm
	// "NONE" and ratio 1.0 instead of failing.
	Compress(data []byte, algorithm string) CompressionResult
	// Decompress reverses Compress for the named algorithm.
	Decompress(data []byte, algorithm string) ([]byte, error)
	// SupportedCompressionAlgorithms lists the algorithm names Compress
	// accepts, "NONE" included.
	SupportedCompressionAlgorithms() []string
	// SupportsSchemaEvolution is a static capability flag.
	SupportsSchemaEvolution() bool
	// RunBenchmark drives a full measurement run for this adapter. It is a
	// convenience wrapper around the orchestrator in this package.
	RunBenchmark(cfg BenchmarkConfig) BenchmarkResult
}

// Package bench contains the benchmark harness core: the measurement result
// model, the run configuration, the backend adapter contract and the
// orchestrator that drives adapters through a uniform measurement protocol.
//
// The package focuses on:
//   - Fairness: every backend is measured under identical conditions (same
//     dataset, same iteration plan, same timing primitives)
//   - Failure isolation: one failing iteration is recorded and never
//     invalidates the statistics of the remaining iterations
//   - Immutability: per-iteration results are value records owned by the
//     BenchmarkResult that aggregates them
//
// Key Components:
//
//   - Adapter: the contract every serialization backend implements. Adapters
//     time only the encode/decode step itself; dataset generation and
//     aggregation live in the harness.
//
//   - SerializationResult / CompressionResult: immutable per-iteration
//     records with derived metrics (throughput, sizes, compression ratio).
//
//   - BenchmarkConfig: recognized run options with documented defaults.
//     Construction never fails; missing fields fall back to defaults.
//
//   - BenchmarkResult: the aggregate over one (backend, config) run,
//     including percentile latency (HdrHistogram), success accounting and an
//     optional resource monitor snapshot.
//
//   - Runner: the orchestrator state machine
//     (INIT -> WARMUP -> MEASURE -> AGGREGATE -> DONE/FAILED).
//
// Error Taxonomy:
//
//	GenerationError and ContractViolationError are fatal and abort a run.
//	Iteration failures are recoverable and captured per-iteration. Roundtrip
//	mismatches set a flag without failing the run. Resource monitor failures
//	degrade the result (snapshot absent) but never fail it.
//
// Thread Safety:
//
//	A single run executes its iterations sequentially. Multiple runs for
//	different (backend, config) pairs may execute concurrently as long as
//	each owns its monitor; the harness shares no mutable state between runs.
package bench

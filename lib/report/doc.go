// Package report ranks and tabulates benchmark results across backends and
// complexity tiers. It is a pure consumer of already-computed aggregates:
// no measurement logic lives here.
//
// A Comparison is built from a set of BenchmarkResults keyed by
// (backend, tier) and produces rankings (fastest mean serialization time,
// smallest mean payload, best compression ratio), a formatted text table
// and a CSV export.
package report

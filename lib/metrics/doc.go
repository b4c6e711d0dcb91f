// Package metrics publishes benchmark aggregates as labeled numeric samples
// for external dashboards. It wraps a VictoriaMetrics metrics set; the wire
// format (Prometheus exposition text) is produced by WritePrometheus and is
// otherwise an external collaborator's concern.
//
// Per (backend, tier) pair the exporter emits: serialization_time_ms,
// serialization_throughput_ops, payload_size_bytes, compression_ratio,
// memory_usage_mb and cpu_usage_percent. Aggregates that are absent for a
// run (no successful iteration, monitoring disabled) are simply not set.
package metrics

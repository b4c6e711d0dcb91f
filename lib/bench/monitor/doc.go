// Package monitor samples process-level resource usage over a benchmark
// measure window. Sampling runs on its own goroutine at a fixed interval so
// its overhead is never attributed to the backend being measured.
//
// Samples cover heap usage and GC activity (runtime.MemStats) and, where
// /proc is available, resident memory and CPU time (prometheus procfs). On
// platforms without procfs the monitor degrades to heap-only sampling
// instead of failing.
//
// Usage:
//
//	h, err := monitor.Start(time.Second)
//	if err != nil { ... run continues without resource metrics ... }
//	defer h.Stop()
//	// ... measure ...
//	snap := h.Stop()
//
// Stop is idempotent: the first call flushes the last partial window and
// freezes the snapshot, later calls return the same snapshot. Pairing Start
// with a deferred Stop guarantees the sampling goroutine is released even if
// the measure phase panics.
package monitor

package bench

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/techishthoughts/serbench/lib/bench/monitor"
)

// Histogram bounds for serialization latency: 1ns up to one hour, three
// significant figures.
const (
	histogramMin     = 1
	histogramMax     = int64(time.Hour)
	histogramSigFigs = 3
)

// BenchmarkResult aggregates one configuration run for one backend. The
// per-iteration result sequences are ordered and owned exclusively by this
// value; accessors hand out copies.
type BenchmarkResult struct {
	RunID   string
	Backend string
	Config  BenchmarkConfig

	serializationResults []SerializationResult
	compressionResults   []CompressionResult

	RoundtripSuccess bool
	// Resources is nil when monitoring was disabled or degraded.
	Resources *monitor.Snapshot

	StartTime time.Time
	EndTime   time.Time

	// Success is false only when a fatal-class failure occurred. Recoverable
	// per-iteration failures leave it true with SuccessRatePercent < 100.
	Success bool
	Error   string
}

// SerializationResults returns a copy of the ordered per-iteration records.
func (r *BenchmarkResult) SerializationResults() []SerializationResult {
	out := make([]SerializationResult, len(r.serializationResults))
	copy(out, r.serializationResults)
	return out
}

// CompressionResults returns a copy of the ordered per-iteration records.
// Empty when compression was disabled.
func (r *BenchmarkResult) CompressionResults() []CompressionResult {
	out := make([]CompressionResult, len(r.compressionResults))
	copy(out, r.compressionResults)
	return out
}

// Iterations returns the number of recorded measure iterations.
func (r *BenchmarkResult) Iterations() int { return len(r.serializationResults) }

// SuccessfulSerializations counts iterations whose serialize step succeeded.
func (r *BenchmarkResult) SuccessfulSerializations() int {
	n := 0
	for _, sr := range r.serializationResults {
		if sr.Success {
			n++
		}
	}
	return n
}

// FailedSerializations counts iterations whose serialize step failed.
// SuccessfulSerializations + FailedSerializations always equals Iterations.
func (r *BenchmarkResult) FailedSerializations() int {
	return len(r.serializationResults) - r.SuccessfulSerializations()
}

// SuccessRatePercent returns 100 * successful / total, 0 for empty runs.
func (r *BenchmarkResult) SuccessRatePercent() float64 {
	if len(r.serializationResults) == 0 {
		return 0
	}
	return 100.0 * float64(r.SuccessfulSerializations()) / float64(len(r.serializationResults))
}

// MeanSerializationTime averages over successful iterations only. The second
// return value is false when no iteration succeeded.
func (r *BenchmarkResult) MeanSerializationTime() (time.Duration, bool) {
	var sum time.Duration
	n := 0
	for _, sr := range r.serializationResults {
		if sr.Success {
			sum += sr.Duration
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / time.Duration(n), true
}

// SerializationTimePercentile returns the q-th percentile (e.g. 50, 95, 99)
// of successful serialization durations, false when none succeeded.
func (r *BenchmarkResult) SerializationTimePercentile(q float64) (time.Duration, bool) {
	h := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
	n := 0
	for _, sr := range r.serializationResults {
		if sr.Success {
			if err := h.RecordValue(int64(sr.Duration)); err == nil {
				n++
			}
		}
	}
	if n == 0 {
		return 0, false
	}
	return time.Duration(h.ValueAtQuantile(q)), true
}

// MeanSerializedSize averages the payload size of successful iterations,
// false when none succeeded.
func (r *BenchmarkResult) MeanSerializedSize() (float64, bool) {
	var sum float64
	n := 0
	for _, sr := range r.serializationResults {
		if sr.Success {
			sum += float64(sr.SizeBytes())
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// MeanCompressionRatio averages over successful compression records, false
// when there are none (compression disabled or all failed).
func (r *BenchmarkResult) MeanCompressionRatio() (float64, bool) {
	var sum float64
	n := 0
	for _, cr := range r.compressionResults {
		if cr.Success && cr.OriginalSize > 0 {
			sum += cr.Ratio()
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// MeanThroughputBytes averages serialize throughput over successful
// iterations, false when none succeeded.
func (r *BenchmarkResult) MeanThroughputBytes() (float64, bool) {
	var sum float64
	n := 0
	for _, sr := range r.serializationResults {
		if sr.Success {
			sum += sr.BytesPerSecond()
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// MeanObjectsPerSecond averages object throughput over successful
// iterations, false when none succeeded.
func (r *BenchmarkResult) MeanObjectsPerSecond() (float64, bool) {
	var sum float64
	n := 0
	for _, sr := range r.serializationResults {
		if sr.Success {
			sum += sr.ObjectsPerSecond()
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// TotalDuration returns the wall time of the whole run.
func (r *BenchmarkResult) TotalDuration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

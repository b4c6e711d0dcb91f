package bench

import (
	"time"
)

// SerializationResult is the immutable record of one serialize step.
// Failed results carry an error message and zeroed measurements.
type SerializationResult struct {
	Backend          string
	Format           string
	Data             []byte
	Duration         time.Duration
	InputObjectCount int
	Success          bool
	Error            string
	Timestamp        time.Time
}

// NewSerializationResult builds a successful result.
func NewSerializationResult(backend, format string, data []byte, duration time.Duration, objectCount int) SerializationResult {
	return SerializationResult{
		Backend:          backend,
		Format:           format,
		Data:             data,
		Duration:         duration,
		InputObjectCount: objectCount,
		Success:          true,
		Timestamp:        time.Now(),
	}
}

// FailedSerialization builds a failed result. Measurements stay zero so
// failed iterations never pollute aggregates.
func FailedSerialization(backend, format string, err error) SerializationResult {
	return SerializationResult{
		Backend:   backend,
		Format:    format,
		Success:   false,
		Error:     err.Error(),
		Timestamp: time.Now(),
	}
}

// SizeBytes returns the serialized size.
func (r SerializationResult) SizeBytes() int { return len(r.Data) }

// SizeKB returns the serialized size in kibibytes.
func (r SerializationResult) SizeKB() float64 { return float64(r.SizeBytes()) / 1024.0 }

// SizeMB returns the serialized size in mebibytes.
func (r SerializationResult) SizeMB() float64 { return float64(r.SizeBytes()) / (1024.0 * 1024.0) }

// BytesPerSecond returns the serialization throughput, 0 for failed or
// zero-duration results.
func (r SerializationResult) BytesPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.SizeBytes()) / r.Duration.Seconds()
}

// ObjectsPerSecond returns input objects serialized per second.
func (r SerializationResult) ObjectsPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.InputObjectCount) / r.Duration.Seconds()
}

// CompressionResult is the immutable record of one compress step.
type CompressionResult struct {
	Algorithm    string
	Data         []byte
	OriginalSize int
	Duration     time.Duration
	Success      bool
	Error        string
	Timestamp    time.Time
}

// NewCompressionResult builds a successful result.
func NewCompressionResult(algorithm string, data []byte, originalSize int, duration time.Duration) CompressionResult {
	return CompressionResult{
		Algorithm:    algorithm,
		Data:         data,
		OriginalSize: originalSize,
		Duration:     duration,
		Success:      true,
		Timestamp:    time.Now(),
	}
}

// FailedCompression builds a failed result.
func FailedCompression(algorithm string, originalSize int, err error) CompressionResult {
	return CompressionResult{
		Algorithm:    algorithm,
		OriginalSize: originalSize,
		Success:      false,
		Error:        err.Error(),
		Timestamp:    time.Now(),
	}
}

// UncompressedResult marks a backend without compression support: the
// payload passes through untouched, algorithm "NONE", ratio exactly 1.
func UncompressedResult(data []byte) CompressionResult {
	return CompressionResult{
		Algorithm:    "NONE",
		Data:         data,
		OriginalSize: len(data),
		Success:      true,
		Timestamp:    time.Now(),
	}
}

// CompressedSize returns the size after compression.
func (r CompressionResult) CompressedSize() int { return len(r.Data) }

// Ratio returns compressedSize/originalSize, 0 when the original was empty.
func (r CompressionResult) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.CompressedSize()) / float64(r.OriginalSize)
}

// SpaceSavings returns 1 - Ratio().
func (r CompressionResult) SpaceSavings() float64 { return 1.0 - r.Ratio() }

// BytesPerSecond returns the compression throughput over the original size.
func (r CompressionResult) BytesPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.OriginalSize) / r.Duration.Seconds()
}

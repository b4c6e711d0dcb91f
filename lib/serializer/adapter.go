package serializer

import (
	"fmt"
	"time"

	"github.com/techishthoughts/serbench/lib/bench"
	"github.com/techishthoughts/serbench/lib/compress"
	"github.com/techishthoughts/serbench/lib/payload"
)

// ICodec is the minimal boundary a wire format implements. Everything else
// (timing, result records, compression, benchmark orchestration) is shared
// by the common adapter.
type ICodec interface {
	// Marshal encodes a dataset into its wire form.
	Marshal(ds *payload.Dataset) ([]byte, error)
	// Unmarshal decodes wire bytes back into a dataset.
	Unmarshal(data []byte) (*payload.Dataset, error)
}

// adapterImpl implements bench.Adapter for any ICodec. One implementation
// replaces per-format copies of the measurement logic so every backend is
// timed identically.
type adapterImpl struct {
	name            string
	format          string
	codec           ICodec
	schemaEvolution bool
	// compression is false for backends without compression support; they
	// pass payloads through with algorithm "NONE".
	compression bool
}

// newAdapter wires a codec into the common adapter.
func newAdapter(name, format string, codec ICodec, schemaEvolution, compression bool) bench.Adapter {
	return &adapterImpl{
		name:            name,
		format:          format,
		codec:           codec,
		schemaEvolution: schemaEvolution,
		compression:     compression,
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see bench.Adapter)
// --------------------------------------------------------------------------

func (a *adapterImpl) Name() string { return a.name }

func (a *adapterImpl) Format() string { return a.format }

func (a *adapterImpl) Serialize(ds *payload.Dataset) bench.SerializationResult {
	// Time only the encode step; dataset generation happened upstream.
	start := time.Now()
	data, err := a.codec.Marshal(ds)
	elapsed := time.Since(start)

	if err != nil {
		return bench.FailedSerialization(a.name, a.format, err)
	}
	return bench.NewSerializationResult(a.name, a.format, data, elapsed, ds.ObjectCount())
}

func (a *adapterImpl) Deserialize(data []byte) (*payload.Dataset, error) {
	return a.codec.Unmarshal(data)
}

func (a *adapterImpl) Compress(data []byte, algorithm string) bench.CompressionResult {
	if !a.compression || algorithm == "" || algorithm == "NONE" {
		return bench.UncompressedResult(data)
	}

	codec, err := compress.ForName(algorithm)
	if err != nil {
		return bench.FailedCompression(algorithm, len(data), err)
	}

	start := time.Now()
	out, err := codec.Compress(data)
	elapsed := time.Since(start)

	if err != nil {
		return bench.FailedCompression(algorithm, len(data), err)
	}
	return bench.NewCompressionResult(algorithm, out, len(data), elapsed)
}

func (a *adapterImpl) Decompress(data []byte, algorithm string) ([]byte, error) {
	if !a.compression || algorithm == "" || algorithm == "NONE" {
		return data, nil
	}
	codec, err := compress.ForName(algorithm)
	if err != nil {
		return nil, fmt.Errorf("serializer: %w", err)
	}
	return codec.Decompress(data)
}

func (a *adapterImpl) SupportedCompressionAlgorithms() []string {
	if !a.compression {
		return []string{"NONE"}
	}
	return append(compress.Names(), "NONE")
}

func (a *adapterImpl) SupportsSchemaEvolution() bool { return a.schemaEvolution }

func (a *adapterImpl) RunBenchmark(cfg bench.BenchmarkConfig) bench.BenchmarkResult {
	result, _ := bench.Run(a, cfg)
	return result
}

package compress

import (
	"fmt"
	"sort"
)

// ICodec is the interface all compression codecs implement.
type ICodec interface {
	// Name returns the stable algorithm identifier (e.g. "GZIP").
	Name() string
	// Compress returns the compressed form of data.
	Compress(data []byte) ([]byte, error)
	// Decompress reverses Compress.
	Decompress(data []byte) ([]byte, error)
}

var codecs = map[string]ICodec{
	"GZIP":   newGzipCodec(),
	"SNAPPY": newSnappyCodec(),
	"LZ4":    newLZ4Codec(),
	"ZSTD":   newZstdCodec(),
	"BROTLI": newBrotliCodec(),
}

// ForName returns the codec registered under name.
func ForName(name string) (ICodec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("compress: unknown algorithm %q", name)
	}
	return c, nil
}

// Names returns all registered algorithm names in sorted order.
func Names() []string {
	out := make([]string, 0, len(codecs))
	for name := range codecs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

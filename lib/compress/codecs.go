package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// --------------------------------------------------------------------------
// GZIP
// --------------------------------------------------------------------------

type gzipCodec struct{}

func newGzipCodec() ICodec { return gzipCodec{} }

func (gzipCodec) Name() string { return "GZIP" }

func (gzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: gzip write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

func (gzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compress: gzip reader: %w", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compress: gzip read: %w", err)
	}
	return out, nil
}

// --------------------------------------------------------------------------
// SNAPPY (block format)
// --------------------------------------------------------------------------

type snappyCodec struct{}

func newSnappyCodec() ICodec { return snappyCodec{} }

func (snappyCodec) Name() string { return "SNAPPY" }

func (snappyCodec) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (snappyCodec) Decompress(data []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("compress: snappy decode: %w", err)
	}
	return out, nil
}

// --------------------------------------------------------------------------
// LZ4 (frame format, self-describing)
// --------------------------------------------------------------------------

type lz4Codec struct{}

func newLZ4Codec() ICodec { return lz4Codec{} }

func (lz4Codec) Name() string { return "LZ4" }

func (lz4Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: lz4 write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: lz4 close: %w", err)
	}
	return buf.Bytes(), nil
}

func (lz4Codec) Decompress(data []byte) ([]byte, error) {
	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("compress: lz4 read: %w", err)
	}
	return out, nil
}

// --------------------------------------------------------------------------
// ZSTD
// --------------------------------------------------------------------------

// zstdCodec shares one encoder/decoder pair; EncodeAll and DecodeAll are
// safe for concurrent use.
type zstdCodec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func newZstdCodec() ICodec {
	enc, _ := zstd.NewWriter(nil)
	dec, _ := zstd.NewReader(nil)
	return &zstdCodec{enc: enc, dec: dec}
}

func (*zstdCodec) Name() string { return "ZSTD" }

func (c *zstdCodec) Compress(data []byte) ([]byte, error) {
	return c.enc.EncodeAll(data, nil), nil
}

func (c *zstdCodec) Decompress(data []byte) ([]byte, error) {
	out, err := c.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd decode: %w", err)
	}
	return out, nil
}

// --------------------------------------------------------------------------
// BROTLI
// --------------------------------------------------------------------------

type brotliCodec struct{}

func newBrotliCodec() ICodec { return brotliCodec{} }

func (brotliCodec) Name() string { return "BROTLI" }

func (brotliCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: brotli write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: brotli close: %w", err)
	}
	return buf.Bytes(), nil
}

func (brotliCodec) Decompress(data []byte) ([]byte, error) {
	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("compress: brotli read: %w", err)
	}
	return out, nil
}

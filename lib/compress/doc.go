// Package compress provides the compression codecs adapters use for the
// compress/decompress leg of a benchmark iteration. Every codec produces a
// self-describing stream so decompression needs no out-of-band metadata.
//
// Available codecs: gzip and zstd (klauspost/compress), snappy
// (golang/snappy block format), lz4 (pierrec/lz4 frame format) and brotli
// (andybalholm/brotli).
//
// All codecs are stateless from the caller's perspective and safe for
// concurrent use.
package compress

// Package serializer provides the pluggable serialization backends measured
// by the benchmark harness. It defines a common internal codec boundary and
// multiple implementations, each wrapping one wire format behind the
// bench.Adapter contract.
//
// The package focuses on:
//   - One adapter construction path for all formats: a format contributes
//     only its encode/decode functions, the shared adapter supplies timing,
//     compression and benchmark plumbing
//   - Explicit variant selection: backends are chosen by name from an
//     explicitly built registry, never by runtime API probing
//   - Stateless codecs safe for concurrent use
//
// Key Components:
//
//   - ICodec: the minimal encode/decode pair a wire format implements.
//
//   - jsonCodec: encoding/json. Human readable, schema evolution friendly.
//
//   - gobCodec: Go's gob encoding. Go-native, no cross-language story.
//
//   - binaryCodec: custom length-prefixed binary format optimized for this
//     dataset. Smallest and fastest, no schema evolution.
//
//   - msgpackCodec: MessagePack via vmihailenco/msgpack.
//
//   - cborCodec: CBOR (RFC 8949) via fxamacker/cbor with integer keys.
//
//   - Registry: an explicit, caller-owned store of adapter factories. The
//     default registry contains all five backends.
//
// Thread Safety:
//
//	Adapters and codecs are stateless and safe for concurrent use. A
//	Registry is safe for concurrent lookup and registration.
package serializer

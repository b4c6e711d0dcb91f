package serializer

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/techishthoughts/serbench/lib/bench"
	"github.com/techishthoughts/serbench/lib/payload"
)

// NewCBORAdapter creates a backend using CBOR (RFC 8949). The model's
// integer-key struct tags keep the encoding compact.
func NewCBORAdapter() bench.Adapter {
	return newAdapter("cbor", "CBOR", newCBORCodec(), true, true)
}

// cborCodec implements the ICodec interface using CBOR encoding with
// canonical (core deterministic) encoding options.
type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func newCBORCodec() ICodec {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return cborCodec{enc: enc, dec: dec}
}

func (c cborCodec) Marshal(ds *payload.Dataset) ([]byte, error) {
	return c.enc.Marshal(ds)
}

func (c cborCodec) Unmarshal(data []byte) (*payload.Dataset, error) {
	var ds payload.Dataset
	if err := c.dec.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

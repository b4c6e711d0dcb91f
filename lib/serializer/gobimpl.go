package serializer

import (
	"bytes"
	"encoding/gob"

	"github.com/techishthoughts/serbench/lib/bench"
	"github.com/techishthoughts/serbench/lib/payload"
)

// NewGOBAdapter creates a backend using Go's binary gob format.
func NewGOBAdapter() bench.Adapter {
	return newAdapter("gob", "GOB", gobCodec{}, false, true)
}

// gobCodec implements the ICodec interface using gob encoding
type gobCodec struct{}

func (gobCodec) Marshal(ds *payload.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(ds); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) Unmarshal(data []byte) (*payload.Dataset, error) {
	var ds payload.Dataset
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

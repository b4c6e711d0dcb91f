package serializer

import (
	"encoding/json"

	"github.com/techishthoughts/serbench/lib/bench"
	"github.com/techishthoughts/serbench/lib/payload"
)

// NewJSONAdapter creates a backend using encoding/json.
func NewJSONAdapter() bench.Adapter {
	return newAdapter("json", "JSON", jsonCodec{}, true, true)
}

// jsonCodec implements the ICodec interface using json encoding
type jsonCodec struct{}

func (jsonCodec) Marshal(ds *payload.Dataset) ([]byte, error) {
	return json.Marshal(ds)
}

func (jsonCodec) Unmarshal(data []byte) (*payload.Dataset, error) {
	var ds payload.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

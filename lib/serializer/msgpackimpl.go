package serializer

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/techishthoughts/serbench/lib/bench"
	"github.com/techishthoughts/serbench/lib/payload"
)

// NewMsgPackAdapter creates a backend using the MessagePack format.
func NewMsgPackAdapter() bench.Adapter {
	return newAdapter("msgpack", "MessagePack", msgpackCodec{}, true, true)
}

// msgpackCodec implements the ICodec interface using MessagePack encoding
type msgpackCodec struct{}

func (msgpackCodec) Marshal(ds *payload.Dataset) ([]byte, error) {
	return msgpack.Marshal(ds)
}

func (msgpackCodec) Unmarshal(data []byte) (*payload.Dataset, error) {
	var ds payload.Dataset
	if err := msgpack.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

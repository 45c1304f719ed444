package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Protobuf serializes values that implement proto.Message. Values cached
// through it must be proto messages on both the write and read side; anything
// else is rejected at runtime since the cache API is type-erased.
type Protobuf struct{}

var _ Codec = Protobuf{}

func (Protobuf) Marshal(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("protobuf codec: %T is not a proto.Message", v)
	}
	return proto.Marshal(m)
}

func (Protobuf) Unmarshal(b []byte, dest any) error {
	m, ok := dest.(proto.Message)
	if !ok {
		return fmt.Errorf("protobuf codec: %T is not a proto.Message", dest)
	}
	return proto.Unmarshal(b, m)
}

// Package codec defines how cached values are (de)serialized for the
// persistent tier. A single cache instance holds heterogeneous value types,
// so decoding goes into a caller-supplied destination pointer.
package codec

import "encoding/json"

type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(b []byte, dest any) error
}

// JSON is the default codec. The zero value is ready to use.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSON) Unmarshal(b []byte, dest any) error { return json.Unmarshal(b, dest) }

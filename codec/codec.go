// Package codec is the single place component values cross between Go
// structs and bytes. Component metadata and the world state dump both go
// through it, so swapping the underlying JSON implementation is a one-file
// change.
package codec

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Decode unmarshals bz into a value of type T.
func Decode[T any](bz []byte) (T, error) {
	decoded := new(T)
	if err := json.Unmarshal(bz, decoded); err != nil {
		return *decoded, eris.Wrap(err, "failed to decode bytes")
	}
	return *decoded, nil
}

// Encode marshals value to bytes.
func Encode(value any) ([]byte, error) {
	bz, err := json.Marshal(value)
	if err != nil {
		return nil, eris.Wrap(err, "failed to encode value")
	}
	return bz, nil
}

package codec_test

import (
	"testing"

	"github.com/emberworks/loom/assert"
	"github.com/emberworks/loom/codec"
)

type payload struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	bz, err := codec.Encode(payload{Label: "crate", Count: 3})
	assert.NilError(t, err)

	decoded, err := codec.Decode[payload](bz)
	assert.NilError(t, err)
	assert.Equal(t, payload{Label: "crate", Count: 3}, decoded)
}

func TestDecodeRejectsMalformedBytes(t *testing.T) {
	_, err := codec.Decode[payload]([]byte(`{"label":`))
	assert.IsError(t, err)
}

func TestEncodeRejectsUnsupportedValue(t *testing.T) {
	_, err := codec.Encode(make(chan int))
	assert.IsError(t, err)
}

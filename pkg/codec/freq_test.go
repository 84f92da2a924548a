package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFreqPinnedVectors(t *testing.T) {
	assert.Equal(t, []byte{0xF0, 0x03, 0xDE, 0x00}, EncodeFreq(145.5))
	assert.Equal(t, []byte{0x60, 0x92, 0xDF, 0x00}, EncodeFreq(146.52))
}

func TestDecodeFreqRoundTrip(t *testing.T) {
	buf := EncodeFreq(438.5)
	assert.InDelta(t, 438.5, DecodeFreq(buf), 1e-9)
}

func TestFormatFreqMHz(t *testing.T) {
	buf := EncodeFreq(438.5)
	assert.Equal(t, "438.500000", FormatFreqMHz(buf))
}

func TestParseFreqMHzRoundTrip(t *testing.T) {
	buf, err := ParseFreqMHz("145.500000")
	require.NoError(t, err)
	assert.Equal(t, EncodeFreq(145.5), buf)
}

func TestParseFreqMHzRejectsGarbage(t *testing.T) {
	_, err := ParseFreqMHz("not-a-number")
	assert.Error(t, err)
}

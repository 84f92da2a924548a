package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNibbleStringDtmfRoundTrip(t *testing.T) {
	buf, err := EncodeNibbleString("12AB*#", DtmfAlphabet, 8)
	require.NoError(t, err)
	require.Len(t, buf, 8)
	assert.Equal(t, byte(0xFF), buf[6])
	assert.Equal(t, byte(0xFF), buf[7])

	got, err := DecodeNibbleString(buf, DtmfAlphabet)
	require.NoError(t, err)
	assert.Equal(t, "12AB*#", got)
}

func TestNibbleStringKeyAlphabetDoesNotCollideWithTerminator(t *testing.T) {
	// 'F' is alphabet index 15 (0x0F); must not be confused with the
	// 0xFF terminator byte.
	buf, err := EncodeNibbleString("F", KeyAlphabet, 4)
	require.NoError(t, err)
	assert.Equal(t, byte(0x0F), buf[0])
	assert.Equal(t, byte(0xFF), buf[1])

	got, err := DecodeNibbleString(buf, KeyAlphabet)
	require.NoError(t, err)
	assert.Equal(t, "F", got)
}

func TestNibbleStringTooLongFails(t *testing.T) {
	_, err := EncodeNibbleString("0123456789", DtmfAlphabet, 5)
	assert.Error(t, err)
}

func TestNibbleStringRejectsUnknownChar(t *testing.T) {
	_, err := EncodeNibbleString("Z", DtmfAlphabet, 4)
	assert.Error(t, err)
}

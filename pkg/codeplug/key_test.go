package codeplug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyKeyReturnsNil(t *testing.T) {
	buf := make([]byte, KeySize)
	fillBytes(buf, 0xFF)
	k, err := DecodeKey(buf)
	require.NoError(t, err)
	assert.Nil(t, k)
}

func TestKeyArc4RoundTrip(t *testing.T) {
	k := &Key{Algorithm: Arc4, HexKey: "0123456789"}
	buf, err := EncodeKey(k)
	require.NoError(t, err)
	require.Len(t, buf, KeySize)

	got, err := DecodeKey(buf)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *k, *got)
}

func TestKeyAes256UsesFullBuffer(t *testing.T) {
	hexKey := strings.Repeat("ab", 32) // 64 hex chars
	k := &Key{Algorithm: Aes256, HexKey: hexKey}
	buf, err := EncodeKey(k)
	require.NoError(t, err)

	got, err := DecodeKey(buf)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, hexKey, got.HexKey)
}

func TestKeyWrongLengthFails(t *testing.T) {
	_, err := EncodeKey(&Key{Algorithm: Aes128, HexKey: "ABCD"})
	assert.Error(t, err)
}

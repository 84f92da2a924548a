package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGB2312ASCIIRoundTrip(t *testing.T) {
	buf, err := EncodeGB2312("Base01", 10)
	require.NoError(t, err)
	require.Len(t, buf, 10)
	assert.Equal(t, byte(0x00), buf[6])
	assert.Equal(t, byte(0xFF), buf[9])

	got, err := DecodeGB2312(buf)
	require.NoError(t, err)
	assert.Equal(t, "Base01", got)
}

func TestGB2312ExactFitOmitsTerminator(t *testing.T) {
	buf, err := EncodeGB2312("1234567890", 10)
	require.NoError(t, err)
	require.Len(t, buf, 10)

	got, err := DecodeGB2312(buf)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", got)
}

func TestGB2312TooLongFails(t *testing.T) {
	_, err := EncodeGB2312("12345678901", 10)
	assert.Error(t, err)
}

func TestGB2312EmptyString(t *testing.T) {
	buf, err := EncodeGB2312("", 12)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), buf[0])

	got, err := DecodeGB2312(buf)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

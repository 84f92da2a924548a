package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDMRIDRoundTrip(t *testing.T) {
	for _, id := range []uint32{1, 0xABCDEF, MaxDMRID, 3021234} {
		buf := EncodeDMRID(id)
		require.Len(t, buf, 3)
		got, err := DecodeDMRID(buf)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestDMRIDBigEndian(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, EncodeDMRID(0x010203))
}

func TestDecodeDMRIDShortBuffer(t *testing.T) {
	_, err := DecodeDMRID([]byte{0x01, 0x02})
	assert.Error(t, err)
}

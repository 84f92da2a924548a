package codeplug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyRxGroupReturnsNil(t *testing.T) {
	buf := make([]byte, RxGroupSize)
	fillBytes(buf, 0xFF)
	g, err := DecodeRxGroup(buf)
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestRxGroupMemberTerminator(t *testing.T) {
	g := &RxGroup{Name: "Fleet", Members: []uint32{1, 2, 3}}
	buf, err := EncodeRxGroup(g)
	require.NoError(t, err)

	assert.Equal(t, []byte{0x00, 0x00, 0x00}, buf[9:12])
}

func TestRxGroupMaxIDNotMistakenForTerminator(t *testing.T) {
	g := &RxGroup{Name: "Edge", Members: []uint32{0xFFFFFF, 5}}
	buf, err := EncodeRxGroup(g)
	require.NoError(t, err)

	got, err := DecodeRxGroup(buf)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []uint32{0xFFFFFF, 5}, got.Members)
}

func TestRxGroupRoundTrip(t *testing.T) {
	g := &RxGroup{Name: "Ops", Members: []uint32{100, 200, 300}}
	buf, err := EncodeRxGroup(g)
	require.NoError(t, err)
	require.Len(t, buf, RxGroupSize)

	got, err := DecodeRxGroup(buf)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *g, *got)
}

func TestRxGroupTooManyMembersFails(t *testing.T) {
	members := make([]uint32, RxGroupMaxMembers+1)
	_, err := EncodeRxGroup(&RxGroup{Name: "x", Members: members})
	assert.Error(t, err)
}

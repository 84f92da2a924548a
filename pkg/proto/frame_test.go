package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildHandshakeFrame(t *testing.T) {
	f := Frame{Cmd: 0x02, Seq: 0, Payload: []byte("PROGRAMJC8810DU")}
	wire := f.Build()

	assert.Equal(t, []byte{0xA5, 0x02, 0x00, 0x00, 0x00, 0x0F}, wire[:6])
	assert.Equal(t, byte('P'), wire[6])
	assert.Equal(t, byte('U'), wire[20])
	assert.Len(t, wire, 23)
}

func TestBuildPasswordFrame(t *testing.T) {
	f := Frame{Cmd: 0x05, Seq: 0, Payload: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}}
	wire := f.Build()

	assert.Equal(t, byte(0x05), wire[1])
	assert.Equal(t, byte(0x06), wire[5])
	assert.Equal(t, byte(0xFF), wire[6])
	assert.Len(t, wire, 14)
}

func TestBuildChannelWriteHeader(t *testing.T) {
	f := Frame{Cmd: 0x30, Seq: 0, Payload: make([]byte, 1024)}
	wire := f.Build()

	assert.Equal(t, []byte{0x04, 0x00}, wire[4:6])
	assert.Len(t, wire, 1032)
}

func TestBuildThenVerifyRoundTrips(t *testing.T) {
	f := Frame{Cmd: 0x10, Seq: 7, Payload: []byte{1, 2, 3, 4}}
	wire := f.Build()

	var header [headerLen]byte
	copy(header[:], wire[1:6])
	got, err := verify(header, wire[6:])

	assert.NoError(t, err)
	assert.Equal(t, f.Cmd, got.Cmd)
	assert.Equal(t, f.Seq, got.Seq)
	assert.Equal(t, f.Payload, got.Payload)
}

func TestVerifyRejectsBadCrc(t *testing.T) {
	f := Frame{Cmd: 0x10, Seq: 0, Payload: []byte{1, 2, 3}}
	wire := f.Build()
	wire[len(wire)-1] ^= 0xFF

	var header [headerLen]byte
	copy(header[:], wire[1:6])
	_, err := verify(header, wire[6:])

	assert.ErrorIs(t, err, ErrCrcMismatch)
}

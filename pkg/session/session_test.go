package session

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jc8810/rt5dctl/internal/serialio"
	"github.com/jc8810/rt5dctl/pkg/proto"
)

// fixedSizeByCmd mirrors the step table's per-packet response size for
// every cmd a fake radio needs to answer with real data; every other cmd
// (handshake, password, writes, end session) gets a 1-byte ack.
func fixedSizeByCmd(cmd byte) (int, bool) {
	switch cmd {
	case cmdVersion:
		return versionSize, true
	case cmdDtmfRead:
		return dtmfSize, true
	case cmdKeysRead:
		return keysSize, true
	case cmdContactsRead:
		return contactPacketSize, true
	case cmdRxGroupsRead:
		return rxGroupPacketSize, true
	case cmdChannelsRead:
		return channelPacketSize, true
	case cmdVfoRead:
		return vfoSize, true
	case cmdOptFuncRead:
		return optionalFunctionsSize, true
	case cmdBasicInfoRead:
		return basicInfoSize, true
	default:
		return 0, false
	}
}

// newFakeRadio builds a VirtualPort that answers every request with a
// correctly-framed response: real-sized filler data for read steps (the
// low byte of the payload carries the sequence number, so multi-packet
// ordering can be asserted), a 1-byte ack for everything else.
func newFakeRadio() *serialio.VirtualPort {
	respond := func(written []byte) []byte {
		cmd := written[1]
		seq := binary.BigEndian.Uint16(written[2:4])

		size, ok := fixedSizeByCmd(cmd)
		var payload []byte
		if ok {
			payload = make([]byte, size)
			payload[0] = byte(seq)
		} else {
			payload = []byte{0x00}
		}
		return proto.Frame{Cmd: cmd, Seq: seq, Payload: payload}.Build()
	}
	return serialio.NewVirtualPort(respond)
}

func TestReadAllReturnsEveryBlockAtItsDocumentedSize(t *testing.T) {
	vp := newFakeRadio()
	sess := New(proto.New(vp, nil), nil)

	var reports []string
	progress := func(phase string, idx, total int) {
		reports = append(reports, phase)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := sess.ReadAll(ctx, progress)
	require.NoError(t, err)

	assert.Len(t, p.Dtmf, dtmfSize)
	assert.Len(t, p.Keys, keysSize)
	assert.Len(t, p.Contacts, contactPacketCount*contactPacketSize)
	assert.Len(t, p.RxGroups, rxGroupPacketCount*rxGroupPacketSize)
	assert.Len(t, p.Channels, channelPacketCount*channelPacketSize)
	assert.Len(t, p.Vfo, vfoSize)
	assert.Len(t, p.OptionalFunctions, optionalFunctionsSize)
	assert.Len(t, p.BasicInfo, basicInfoSize)
	assert.NotEmpty(t, reports)
}

func TestReadAllContactPacketsArriveInSequenceOrder(t *testing.T) {
	vp := newFakeRadio()
	sess := New(proto.New(vp, nil), nil)

	p, err := sess.ReadAll(context.Background(), nil)
	require.NoError(t, err)

	packets := p.ContactPackets()
	require.Len(t, packets, contactPacketCount)
	for i, pkt := range packets {
		assert.Equal(t, byte(i), pkt[0], "packet %d", i)
	}
}

func TestReadAllFailsOnUndersizedResponse(t *testing.T) {
	respond := func(written []byte) []byte {
		cmd := written[1]
		seq := binary.BigEndian.Uint16(written[2:4])
		if cmd == cmdVersion {
			// One byte short of versionSize.
			return proto.Frame{Cmd: cmd, Seq: seq, Payload: make([]byte, versionSize-1)}.Build()
		}
		return proto.Frame{Cmd: cmd, Seq: seq, Payload: []byte{0x00}}.Build()
	}
	vp := serialio.NewVirtualPort(respond)
	sess := New(proto.New(vp, nil), nil)

	_, err := sess.ReadAll(context.Background(), nil)
	require.Error(t, err)
	var sizeErr *SizeError
	assert.ErrorAs(t, err, &sizeErr)
}

func TestWriteAllSendsSuppliedPayloadsAndVerifiesByReadingBack(t *testing.T) {
	restore := postWriteSettle
	postWriteSettle = time.Millisecond
	defer func() { postWriteSettle = restore }()

	vp := newFakeRadio()
	sess := New(proto.New(vp, nil), nil)

	p := &Payloads{
		Dtmf:              make([]byte, dtmfSize),
		Keys:              make([]byte, keysSize),
		Contacts:          make([]byte, contactPacketCount*contactPacketSize),
		RxGroups:          make([]byte, rxGroupPacketCount*rxGroupPacketSize),
		Channels:          make([]byte, channelPacketCount*channelPacketSize),
		Vfo:               make([]byte, vfoSize),
		OptionalFunctions: make([]byte, optionalFunctionsSize),
		BasicInfo:         make([]byte, basicInfoSize),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	verify, err := sess.WriteAll(ctx, p, true, nil)
	require.NoError(t, err)
	assert.Len(t, verify.Channels, channelPacketCount*channelPacketSize)
}

func TestWriteAllSkipsBasicInfoWhenNotOptedIn(t *testing.T) {
	restore := postWriteSettle
	postWriteSettle = time.Millisecond
	defer func() { postWriteSettle = restore }()

	var sawBasicInfoWrite bool
	vp := serialio.NewVirtualPort(func(written []byte) []byte {
		cmd := written[1]
		seq := binary.BigEndian.Uint16(written[2:4])
		if cmd == cmdBasicInfoWrite {
			sawBasicInfoWrite = true
		}
		size, ok := fixedSizeByCmd(cmd)
		if !ok {
			size = 1
		}
		return proto.Frame{Cmd: cmd, Seq: seq, Payload: make([]byte, size)}.Build()
	})
	sess := New(proto.New(vp, nil), nil)

	p := &Payloads{
		Dtmf:              make([]byte, dtmfSize),
		Keys:              make([]byte, keysSize),
		Contacts:          make([]byte, contactPacketCount*contactPacketSize),
		RxGroups:          make([]byte, rxGroupPacketCount*rxGroupPacketSize),
		Channels:          make([]byte, channelPacketCount*channelPacketSize),
		Vfo:               make([]byte, vfoSize),
		OptionalFunctions: make([]byte, optionalFunctionsSize),
	}

	_, err := sess.WriteAll(context.Background(), p, false, nil)
	require.NoError(t, err)
	assert.False(t, sawBasicInfoWrite)
}

func TestInfoReturnsVersionBlockWithoutTouchingCodeplugBlocks(t *testing.T) {
	var sawCodeplugRead bool
	vp := serialio.NewVirtualPort(func(written []byte) []byte {
		cmd := written[1]
		seq := binary.BigEndian.Uint16(written[2:4])
		switch cmd {
		case cmdDtmfRead, cmdKeysRead, cmdContactsRead, cmdRxGroupsRead, cmdChannelsRead, cmdVfoRead, cmdOptFuncRead, cmdBasicInfoRead:
			sawCodeplugRead = true
		}
		size, ok := fixedSizeByCmd(cmd)
		if !ok {
			size = 1
		}
		payload := make([]byte, size)
		if cmd == cmdVersion {
			payload[0] = 0x07
		}
		return proto.Frame{Cmd: cmd, Seq: seq, Payload: payload}.Build()
	})
	sess := New(proto.New(vp, nil), nil)

	version, err := sess.Info(context.Background())
	require.NoError(t, err)
	require.Len(t, version, versionSize)
	assert.Equal(t, byte(0x07), version[0])
	assert.False(t, sawCodeplugRead)
}

func TestWriteAllRejectsWrongSizedPayload(t *testing.T) {
	vp := newFakeRadio()
	sess := New(proto.New(vp, nil), nil)

	p := &Payloads{Dtmf: make([]byte, dtmfSize-1)}
	_, err := sess.WriteAll(context.Background(), p, false, nil)
	require.Error(t, err)
}

package codeplug

import (
	"fmt"

	"github.com/jc8810/rt5dctl/pkg/codec"
)

// RxGroupSize is the fixed byte length of one rx group record.
const RxGroupSize = 128

// RxGroupCount is the number of rx group slots the radio holds.
const RxGroupCount = 32

// RxGroupMaxMembers bounds how many DMR IDs one group can list.
const RxGroupMaxMembers = 32

// RxGroup is the decoded form of one 128-byte rx group record.
type RxGroup struct {
	Name    string
	Members []uint32
}

const (
	rgOffMembers  = 0
	rgMembersLen  = 96 // 32 * 3 bytes
	rgOffName     = 96
	rgNameLen     = 12
)

// IsEmptyRxGroup reports whether buf is the empty-slot sentinel: byte 96
// is 0xFF.
func IsEmptyRxGroup(buf []byte) bool {
	return buf[rgOffName] == 0xFF
}

// EncodeRxGroup renders g as an RxGroupSize-byte record. Members are
// written as big-endian 24-bit IDs followed by an explicit all-zero
// terminator triple (when room remains) rather than relying on 0xFF
// padding, since 0xFFFFFF is itself a valid 24-bit ID.
func EncodeRxGroup(g *RxGroup) ([]byte, error) {
	buf := make([]byte, RxGroupSize)
	fillBytes(buf, 0xFF)
	if g == nil {
		return buf, nil
	}

	if len(g.Members) > RxGroupMaxMembers {
		return nil, codecErr("rxGroup", "members", errTooMany(RxGroupMaxMembers, len(g.Members)))
	}

	off := rgOffMembers
	for _, id := range g.Members {
		copy(buf[off:off+3], codec.EncodeDMRID(id))
		off += 3
	}
	if off+3 <= rgOffMembers+rgMembersLen {
		buf[off] = 0x00
		buf[off+1] = 0x00
		buf[off+2] = 0x00
	}

	name, err := codec.EncodeGB2312(g.Name, rgNameLen)
	if err != nil {
		return nil, codecErr("rxGroup", "name", err)
	}
	copy(buf[rgOffName:rgOffName+rgNameLen], name)

	return buf, nil
}

// DecodeRxGroup parses an RxGroupSize-byte record, stopping member
// decoding at the first all-zero triple. It returns (nil, nil) for the
// empty-slot sentinel.
func DecodeRxGroup(buf []byte) (*RxGroup, error) {
	if len(buf) != RxGroupSize {
		return nil, codecErr("rxGroup", "", errWrongSize(RxGroupSize, len(buf)))
	}
	if IsEmptyRxGroup(buf) {
		return nil, nil
	}

	var members []uint32
	for off := rgOffMembers; off+3 <= rgOffMembers+rgMembersLen; off += 3 {
		triple := buf[off : off+3]
		if triple[0] == 0 && triple[1] == 0 && triple[2] == 0 {
			break
		}
		id, err := codec.DecodeDMRID(triple)
		if err != nil {
			return nil, codecErr("rxGroup", "members", err)
		}
		members = append(members, id)
	}

	name, err := codec.DecodeGB2312(buf[rgOffName : rgOffName+rgNameLen])
	if err != nil {
		return nil, codecErr("rxGroup", "name", err)
	}

	return &RxGroup{Name: name, Members: members}, nil
}

func errTooMany(max, got int) error {
	return fmt.Errorf("at most %d entries allowed, got %d", max, got)
}

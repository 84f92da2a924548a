package codeplug

import (
	"fmt"

	"github.com/jc8810/rt5dctl/pkg/codec"
)

// DtmfSize is the fixed byte length of the DTMF settings block.
const DtmfSize = 272

// DtmfMaxCodeGroups bounds how many stored code-group entries exist.
const DtmfMaxCodeGroups = 15

// PttID controls when the radio's own DTMF ID is keyed out automatically.
type PttID int

const (
	PttIDOff PttID = iota
	PttIDBot
	PttIDEot
	PttIDBoth
)

// durationValues is the fixed set of DTMF digit/interval durations, in ms.
var durationValues = [5]int{50, 100, 150, 200, 250}

// Dtmf is the decoded form of the 272-byte DTMF settings block.
type Dtmf struct {
	CurrentID  string
	PttID      PttID
	DurationMs int
	IntervalMs int
	CodeGroups []string // up to DtmfMaxCodeGroups entries, each up to 6 digits
}

const (
	dtOffCurrentID  = 0
	dtCurrentIDLen  = 6 // holds up to 5 chars + terminator
	dtOffPttID      = 6
	dtOffDuration   = 7
	dtOffInterval   = 8
	dtOffCodeGroups = 10
	dtCodeGroupLen  = 7 // up to 6 digits + terminator
)

// EncodeDtmf renders d as a DtmfSize-byte block.
func EncodeDtmf(d Dtmf) ([]byte, error) {
	buf := make([]byte, DtmfSize)
	fillBytes(buf, 0xFF)

	cur, err := codec.EncodeNibbleString(d.CurrentID, codec.DtmfAlphabet, dtCurrentIDLen)
	if err != nil {
		return nil, codecErr("dtmf", "currentId", err)
	}
	copy(buf[dtOffCurrentID:dtOffCurrentID+dtCurrentIDLen], cur)

	buf[dtOffPttID] = byte(d.PttID)

	durIdx, err := durationIndex(d.DurationMs)
	if err != nil {
		return nil, codecErr("dtmf", "duration", err)
	}
	buf[dtOffDuration] = byte(durIdx)

	intIdx, err := durationIndex(d.IntervalMs)
	if err != nil {
		return nil, codecErr("dtmf", "interval", err)
	}
	buf[dtOffInterval] = byte(intIdx)

	if len(d.CodeGroups) > DtmfMaxCodeGroups {
		return nil, codecErr("dtmf", "codeGroups", errTooMany(DtmfMaxCodeGroups, len(d.CodeGroups)))
	}
	for i := 0; i < DtmfMaxCodeGroups; i++ {
		off := dtOffCodeGroups + i*dtCodeGroupLen
		var entry string
		if i < len(d.CodeGroups) {
			entry = d.CodeGroups[i]
		}
		enc, err := codec.EncodeNibbleString(entry, codec.DtmfAlphabet, dtCodeGroupLen)
		if err != nil {
			return nil, codecErr("dtmf", "codeGroups", err)
		}
		copy(buf[off:off+dtCodeGroupLen], enc)
	}

	return buf, nil
}

// DecodeDtmf parses a DtmfSize-byte block.
func DecodeDtmf(buf []byte) (Dtmf, error) {
	if len(buf) != DtmfSize {
		return Dtmf{}, codecErr("dtmf", "", errWrongSize(DtmfSize, len(buf)))
	}

	cur, err := codec.DecodeNibbleString(buf[dtOffCurrentID:dtOffCurrentID+dtCurrentIDLen], codec.DtmfAlphabet)
	if err != nil {
		return Dtmf{}, codecErr("dtmf", "currentId", err)
	}

	dur, err := durationFromIndex(int(buf[dtOffDuration]))
	if err != nil {
		return Dtmf{}, codecErr("dtmf", "duration", err)
	}
	interval, err := durationFromIndex(int(buf[dtOffInterval]))
	if err != nil {
		return Dtmf{}, codecErr("dtmf", "interval", err)
	}

	var groups []string
	for i := 0; i < DtmfMaxCodeGroups; i++ {
		off := dtOffCodeGroups + i*dtCodeGroupLen
		entry, err := codec.DecodeNibbleString(buf[off:off+dtCodeGroupLen], codec.DtmfAlphabet)
		if err != nil {
			return Dtmf{}, codecErr("dtmf", "codeGroups", err)
		}
		if entry != "" {
			groups = append(groups, entry)
		}
	}

	return Dtmf{
		CurrentID:  cur,
		PttID:      PttID(buf[dtOffPttID] & 0x0F),
		DurationMs: dur,
		IntervalMs: interval,
		CodeGroups: groups,
	}, nil
}

func durationIndex(ms int) (int, error) {
	for i, v := range durationValues {
		if v == ms {
			return i, nil
		}
	}
	return 0, errInvalidDuration(ms)
}

func durationFromIndex(idx int) (int, error) {
	if idx < 0 || idx >= len(durationValues) {
		return 0, errInvalidDuration(idx)
	}
	return durationValues[idx], nil
}

func errInvalidDuration(v int) error {
	return fmt.Errorf("%d is not one of the five documented duration values", v)
}

package codeplug

import (
	"encoding/binary"

	"github.com/jc8810/rt5dctl/pkg/codec"
)

// ChannelSize is the fixed byte length of one channel record.
const ChannelSize = 64

// ChannelCount is the number of channel slots the radio holds.
const ChannelCount = 1024

// ChannelType discriminates the three channel operating modes. The wire
// encoding lives at byte offsets 14 and 15 of the record (low nibble of
// each): byte14=1 selects Analog (byte15 then ignored); byte14=0 selects
// DMR, with byte15 choosing Tier I (0) or Tier II (1).
type ChannelType int

const (
	ChannelAnalog ChannelType = iota
	ChannelDmrTier1
	ChannelDmrTier2
)

// ChannelPower is the transmit power level.
type ChannelPower int

const (
	PowerLow ChannelPower = iota
	PowerMid
	PowerHigh
)

// Channel is the decoded form of one 64-byte channel record.
type Channel struct {
	Type ChannelType

	RxFreqMHz float64
	TxFreqMHz float64
	RxTone    codec.SubAudio
	TxTone    codec.SubAudio

	Power    ChannelPower
	ScanAdd  bool
	LearnFHSS bool

	// DMR-only fields; zero-valued when Type == ChannelAnalog.
	ColorCode    int
	TimeSlot     int
	ContactIndex int // 1-based Contacts slot, 0 = none
	RxGroupIndex int // 1-based RxGroups slot, 0 = none

	// Analog-only field; empty when Type != ChannelAnalog.
	FHSSCode string // 6 hex digits, "" when unused

	Name string
}

const (
	chOffRxFreq   = 0
	chOffTxFreq   = 4
	chOffRxTone   = 8
	chOffTxTone   = 10
	chOffPower    = 12
	chOffFlags    = 13
	chOffTypeA    = 14
	chOffTypeB    = 15
	chOffColor    = 16
	chOffSlot     = 17
	chOffContact  = 18
	chOffRxGroup  = 20
	chOffFHSS     = 28
	chOffFHSSFlag = 31
	chOffName     = 32
	chNameLen     = 12
)

const flagScanAdd = 1 << 0
const flagLearnFHSS = 1 << 1

// IsEmptyChannel reports whether buf (a ChannelSize-byte record) is the
// empty-slot sentinel: its first 4 bytes all 0xFF or all 0x00.
func IsEmptyChannel(buf []byte) bool {
	return allBytes(buf[0:4], 0xFF) || allBytes(buf[0:4], 0x00)
}

// EncodeChannel renders ch as a ChannelSize-byte record. A nil ch
// produces the empty-slot sentinel (all 0xFF).
func EncodeChannel(ch *Channel) ([]byte, error) {
	buf := make([]byte, ChannelSize)
	fillBytes(buf, 0xFF)
	if ch == nil {
		return buf, nil
	}

	copy(buf[chOffRxFreq:chOffRxFreq+4], codec.EncodeFreq(ch.RxFreqMHz))
	copy(buf[chOffTxFreq:chOffTxFreq+4], codec.EncodeFreq(ch.TxFreqMHz))

	rxTone, err := codec.EncodeSubAudio(ch.RxTone)
	if err != nil {
		return nil, codecErr("channel", "rxTone", err)
	}
	copy(buf[chOffRxTone:chOffRxTone+2], rxTone)

	txTone, err := codec.EncodeSubAudio(ch.TxTone)
	if err != nil {
		return nil, codecErr("channel", "txTone", err)
	}
	copy(buf[chOffTxTone:chOffTxTone+2], txTone)

	buf[chOffPower] = byte(ch.Power)

	var flags byte
	if ch.ScanAdd {
		flags |= flagScanAdd
	}
	if ch.LearnFHSS {
		flags |= flagLearnFHSS
	}
	buf[chOffFlags] = flags

	switch ch.Type {
	case ChannelAnalog:
		buf[chOffTypeA] = 1
		buf[chOffTypeB] = 0xFF // ignored per spec when analog

		if ch.FHSSCode != "" {
			d, err := fhssDigits(ch.FHSSCode)
			if err != nil {
				return nil, codecErr("channel", "fhssCode", err)
			}
			buf[chOffFHSS] = (d[4] << 4) | d[5]
			buf[chOffFHSS+1] = (d[2] << 4) | d[3]
			buf[chOffFHSS+2] = (d[0] << 4) | d[1]
			buf[chOffFHSSFlag] = 0x00
		} else {
			buf[chOffFHSSFlag] = 0xFF
		}
	case ChannelDmrTier1, ChannelDmrTier2:
		buf[chOffTypeA] = 0
		if ch.Type == ChannelDmrTier2 {
			buf[chOffTypeB] = 1
		} else {
			buf[chOffTypeB] = 0
		}
		buf[chOffColor] = byte(ch.ColorCode)
		buf[chOffSlot] = byte(ch.TimeSlot)
		binary.LittleEndian.PutUint16(buf[chOffContact:chOffContact+2], uint16(ch.ContactIndex))
		buf[chOffRxGroup] = byte(ch.RxGroupIndex)
	}

	name, err := codec.EncodeGB2312(ch.Name, chNameLen)
	if err != nil {
		return nil, codecErr("channel", "name", err)
	}
	copy(buf[chOffName:chOffName+chNameLen], name)

	return buf, nil
}

// DecodeChannel parses a ChannelSize-byte record. It returns (nil, nil)
// for the empty-slot sentinel.
func DecodeChannel(buf []byte) (*Channel, error) {
	if len(buf) != ChannelSize {
		return nil, codecErr("channel", "", errWrongSize(ChannelSize, len(buf)))
	}
	if IsEmptyChannel(buf) {
		return nil, nil
	}

	ch := &Channel{}
	ch.RxFreqMHz = codec.DecodeFreq(buf[chOffRxFreq : chOffRxFreq+4])
	ch.TxFreqMHz = codec.DecodeFreq(buf[chOffTxFreq : chOffTxFreq+4])

	rxTone, err := codec.DecodeSubAudio(buf[chOffRxTone : chOffRxTone+2])
	if err != nil {
		return nil, codecErr("channel", "rxTone", err)
	}
	ch.RxTone = rxTone

	txTone, err := codec.DecodeSubAudio(buf[chOffTxTone : chOffTxTone+2])
	if err != nil {
		return nil, codecErr("channel", "txTone", err)
	}
	ch.TxTone = txTone

	ch.Power = ChannelPower(buf[chOffPower])
	flags := buf[chOffFlags]
	ch.ScanAdd = flags&flagScanAdd != 0
	ch.LearnFHSS = flags&flagLearnFHSS != 0

	typeA := buf[chOffTypeA] & 0x0F
	typeB := buf[chOffTypeB] & 0x0F
	if typeA == 1 {
		ch.Type = ChannelAnalog
		if buf[chOffFHSSFlag] == 0x00 {
			d5 := buf[chOffFHSS] & 0x0F
			d4 := (buf[chOffFHSS] >> 4) & 0x0F
			d3 := buf[chOffFHSS+1] & 0x0F
			d2 := (buf[chOffFHSS+1] >> 4) & 0x0F
			d1 := buf[chOffFHSS+2] & 0x0F
			d0 := (buf[chOffFHSS+2] >> 4) & 0x0F
			ch.FHSSCode = hexDigits([6]byte{d0, d1, d2, d3, d4, d5})
		}
	} else if typeB == 1 {
		ch.Type = ChannelDmrTier2
	} else {
		ch.Type = ChannelDmrTier1
	}

	if ch.Type != ChannelAnalog {
		ch.ColorCode = int(buf[chOffColor])
		ch.TimeSlot = int(buf[chOffSlot])
		ch.ContactIndex = int(binary.LittleEndian.Uint16(buf[chOffContact : chOffContact+2]))
		ch.RxGroupIndex = int(buf[chOffRxGroup])
	}

	name, err := codec.DecodeGB2312(buf[chOffName : chOffName+chNameLen])
	if err != nil {
		return nil, codecErr("channel", "name", err)
	}
	ch.Name = name

	return ch, nil
}

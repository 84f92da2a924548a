package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SubAudioKind discriminates the three sub-audio variants.
type SubAudioKind int

const (
	SubAudioOff SubAudioKind = iota
	SubAudioCtcss
	SubAudioDcs
)

// SubAudio is the tagged sub-audio value: Off, a CTCSS tone in tenths of a
// Hz, or a DCS code with its normal/inverted polarity.
type SubAudio struct {
	Kind        SubAudioKind
	CtcssTenths uint16 // round(hz * 10)
	DcsCode     string // 3 digits, e.g. "023"
	DcsInverted bool
}

// CtcssHz returns the tone frequency in Hz for a Ctcss value.
func (s SubAudio) CtcssHz() float64 {
	return float64(s.CtcssTenths) / 10
}

// Off reports a canonical zero value.
func Off() SubAudio { return SubAudio{Kind: SubAudioOff} }

// Ctcss builds a CTCSS sub-audio value from a tone in Hz.
func Ctcss(hz float64) SubAudio {
	return SubAudio{Kind: SubAudioCtcss, CtcssTenths: uint16(math.Round(hz * 10))}
}

// Dcs builds a DCS sub-audio value. code must be one of the 105 entries
// in the fixed DCS table.
func Dcs(code string, inverted bool) SubAudio {
	return SubAudio{Kind: SubAudioDcs, DcsCode: code, DcsInverted: inverted}
}

// EncodeSubAudio returns the 2-byte wire encoding of s.
func EncodeSubAudio(s SubAudio) ([]byte, error) {
	switch s.Kind {
	case SubAudioOff:
		return []byte{0x00, 0x00}, nil
	case SubAudioDcs:
		idx, ok := dcsIndex(s.DcsCode, s.DcsInverted)
		if !ok {
			return nil, fmt.Errorf("codec: unknown dcs code %q", s.DcsCode)
		}
		return []byte{byte(idx + 1), 0x00}, nil
	case SubAudioCtcss:
		return []byte{byte(s.CtcssTenths), byte(s.CtcssTenths >> 8)}, nil
	default:
		return nil, fmt.Errorf("codec: unknown sub-audio kind %d", s.Kind)
	}
}

// DecodeSubAudio parses the 2-byte wire encoding. byte1 == 0 with
// byte0 in [1,210] is DCS; byte1 == 0 with byte0 == 0 is Off; anything
// else is a little-endian CTCSS tenths-of-Hz word — this precedence
// matches the radio's own decoder exactly.
func DecodeSubAudio(buf []byte) (SubAudio, error) {
	if len(buf) < 2 {
		return SubAudio{}, fmt.Errorf("codec: sub-audio needs 2 bytes, got %d", len(buf))
	}
	b0, b1 := buf[0], buf[1]
	if b1 == 0x00 {
		if b0 == 0x00 {
			return Off(), nil
		}
		if b0 >= 1 && b0 <= 210 {
			idx := int(b0) - 1
			if idx < 105 {
				return Dcs(dcsCodes[idx], false), nil
			}
			return Dcs(dcsCodes[idx-105], true), nil
		}
	}
	word := uint16(b0) | uint16(b1)<<8
	return SubAudio{Kind: SubAudioCtcss, CtcssTenths: word}, nil
}

// String renders s in the document's symbolic form: "OFF", "CTCSS 88.5",
// or "D023N"/"D023I".
func (s SubAudio) String() string {
	switch s.Kind {
	case SubAudioOff:
		return "OFF"
	case SubAudioCtcss:
		return fmt.Sprintf("CTCSS %.1f", s.CtcssHz())
	case SubAudioDcs:
		polarity := "N"
		if s.DcsInverted {
			polarity = "I"
		}
		return fmt.Sprintf("D%s%s", s.DcsCode, polarity)
	default:
		return "OFF"
	}
}

// ParseSubAudio parses the document's symbolic sub-audio form back into a
// SubAudio value.
func ParseSubAudio(s string) (SubAudio, error) {
	if s == "" || s == "OFF" {
		return Off(), nil
	}
	if rest, ok := strings.CutPrefix(s, "CTCSS "); ok {
		hz, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return SubAudio{}, fmt.Errorf("codec: invalid ctcss tone %q: %w", s, err)
		}
		return Ctcss(hz), nil
	}
	if len(s) == 5 && s[0] == 'D' && (s[4] == 'N' || s[4] == 'I') {
		code := s[1:4]
		if _, ok := dcsIndex(code, false); ok {
			return Dcs(code, s[4] == 'I'), nil
		}
	}
	return SubAudio{}, fmt.Errorf("codec: %q is not a recognized sub-audio value", s)
}

func dcsIndex(code string, inverted bool) (int, bool) {
	for i, c := range dcsCodes {
		if c == code {
			if inverted {
				return i + 105, true
			}
			return i, true
		}
	}
	return 0, false
}

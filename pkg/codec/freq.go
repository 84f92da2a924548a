// Package codec implements the field-level primitives shared by every
// block codec in pkg/codeplug: frequencies, DMR IDs, sub-audio tones,
// GB2312 strings, and nibble-indexed digit strings.
package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// EncodeFreq converts a frequency in MHz to its wire representation: a
// little-endian u32 count of round(mhz*100000), i.e. a count of 10Hz
// units. The two pinned test vectors (145.5 -> 0x00DE03F0, 146.52 ->
// 0x00DF9260) both fall out of this exact formula.
func EncodeFreq(mhz float64) []byte {
	count := uint32(math.Round(mhz * 100000))
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, count)
	return buf
}

// DecodeFreq reads a 4-byte little-endian frequency count and returns the
// corresponding MHz value.
func DecodeFreq(buf []byte) float64 {
	count := binary.LittleEndian.Uint32(buf)
	return float64(count) / 100000
}

// FormatFreqMHz renders a 4-byte little-endian frequency count as a
// decimal MHz string with six fraction digits, the document's canonical
// frequency representation (e.g. "438.500000").
func FormatFreqMHz(buf []byte) string {
	count := binary.LittleEndian.Uint32(buf)
	whole := count / 100000
	frac := (count % 100000) * 10
	return fmt.Sprintf("%d.%06d", whole, frac)
}

// ParseFreqMHz parses a decimal MHz string back into its 4-byte
// little-endian wire representation.
func ParseFreqMHz(s string) ([]byte, error) {
	mhz, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid frequency %q: %w", s, err)
	}
	return EncodeFreq(mhz), nil
}

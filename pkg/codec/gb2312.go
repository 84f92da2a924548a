package codec

import (
	"fmt"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// gb2312 is the ecosystem's closest match to the radio's GB2312 string
// fields: golang.org/x/text has no standalone GB2312 codec (GB2312 is a
// strict subset of GBK), so GBK is used here, the same substitution the
// rest of the Go DMR/radio tooling in the retrieval pack relies on.
var gb2312 = simplifiedchinese.GBK

// EncodeGB2312 writes s into an n-byte field: the GB2312/GBK-encoded
// bytes, then a single 0x00 terminator if room remains, then 0xFF padding
// to fill the field. Returns an error if the encoded string does not fit.
func EncodeGB2312(s string, n int) ([]byte, error) {
	enc, err := gb2312.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("codec: encoding %q as gb2312: %w", s, err)
	}
	if len(enc) > n {
		return nil, fmt.Errorf("codec: %q encodes to %d bytes, field holds %d", s, len(enc), n)
	}

	buf := make([]byte, n)
	copy(buf, enc)
	if len(enc) < n {
		buf[len(enc)] = 0x00
		for i := len(enc) + 1; i < n; i++ {
			buf[i] = 0xFF
		}
	}
	return buf, nil
}

// DecodeGB2312 reads a GB2312/GBK string out of buf, stopping at the
// first 0x00 or 0xFF terminator byte, or the end of buf if neither
// appears.
func DecodeGB2312(buf []byte) (string, error) {
	end := len(buf)
	for i, b := range buf {
		if b == 0x00 || b == 0xFF {
			end = i
			break
		}
	}
	dec, err := gb2312.NewDecoder().Bytes(buf[:end])
	if err != nil {
		return "", fmt.Errorf("codec: decoding gb2312 field: %w", err)
	}
	return string(dec), nil
}

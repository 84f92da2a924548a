package codec

import (
	"fmt"
	"strings"
)

// DtmfAlphabet is the 16-symbol alphabet used by DTMF digit strings.
const DtmfAlphabet = "0123456789ABCD*#"

// KeyAlphabet is the 16-symbol alphabet used by encryption-key hex
// strings (and any other nibble-indexed hex field).
const KeyAlphabet = "0123456789ABCDEF"

// terminator ends a nibble-indexed string; a valid character byte is the
// character's alphabet index (0x00..0x0F), so it can never collide with
// 0xFF.
const nibbleTerminator = 0xFF

// EncodeNibbleString writes s (every rune must be in alphabet) into an
// n-byte field as one alphabet-index byte per character, followed by a
// 0xFF terminator and 0xFF padding to fill the field.
func EncodeNibbleString(s string, alphabet string, n int) ([]byte, error) {
	if len(s) >= n {
		return nil, fmt.Errorf("codec: %q (%d chars) does not fit a %d-byte field", s, len(s), n)
	}
	buf := make([]byte, n)
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(alphabet, s[i])
		if idx < 0 {
			return nil, fmt.Errorf("codec: char %q not in alphabet %q", s[i], alphabet)
		}
		buf[i] = byte(idx)
	}
	for i := len(s); i < n; i++ {
		buf[i] = nibbleTerminator
	}
	return buf, nil
}

// DecodeNibbleString reads a nibble-indexed string out of buf, stopping
// at the first 0xFF byte.
func DecodeNibbleString(buf []byte, alphabet string) (string, error) {
	var sb strings.Builder
	for _, b := range buf {
		if b == nibbleTerminator {
			break
		}
		if int(b) >= len(alphabet) {
			return "", fmt.Errorf("codec: byte 0x%02X out of range for alphabet %q", b, alphabet)
		}
		sb.WriteByte(alphabet[b])
	}
	return sb.String(), nil
}

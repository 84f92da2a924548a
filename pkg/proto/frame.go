// Package proto implements the radio's byte-framing layer: building and
// parsing [SOF, CMD, SEQ, LEN, PAYLOAD, CRC] frames over a serialio.Port,
// and the send/retry/timeout contract layered on top of it.
package proto

import (
	"encoding/binary"

	"github.com/jc8810/rt5dctl/internal/crc"
)

// SOF is the single start-of-frame sentinel byte.
const SOF = 0xA5

// NakCmd marks a negative-acknowledgement frame: it carries no useful
// payload and is silently dropped by the retry loop rather than treated
// as a response.
const NakCmd = 0xEE

// headerLen is the byte count of CMD, SEQ (2), LEN (2).
const headerLen = 5

// Frame is one decoded request or response: a command byte, a 16-bit
// sequence number, and a payload. It is transient — built fresh for every
// request-response exchange, never reused across steps.
type Frame struct {
	Cmd     byte
	Seq     uint16
	Payload []byte
}

// Build serializes f into the exact 8+N byte wire layout, computing the
// trailing CRC-16 over bytes [CMD..PAYLOAD].
func (f Frame) Build() []byte {
	n := len(f.Payload)
	buf := make([]byte, 6+n+2)
	buf[0] = SOF
	buf[1] = f.Cmd
	binary.BigEndian.PutUint16(buf[2:4], f.Seq)
	binary.BigEndian.PutUint16(buf[4:6], uint16(n))
	copy(buf[6:6+n], f.Payload)

	sum := crc.Checksum(buf[1 : 6+n])
	binary.BigEndian.PutUint16(buf[6+n:8+n], sum)
	return buf
}

// parseHeader decodes the 5 header bytes that follow SOF: CMD, SEQ, LEN.
func parseHeader(header [headerLen]byte) (cmd byte, seq uint16, length int) {
	cmd = header[0]
	seq = binary.BigEndian.Uint16(header[1:3])
	length = int(binary.BigEndian.Uint16(header[3:5]))
	return
}

// verify checks body (PAYLOAD + trailing CRC) against the CRC computed
// over header+payload, returning the parsed Frame on success.
func verify(header [headerLen]byte, body []byte) (Frame, error) {
	n := len(body) - 2
	payload := body[:n]
	wantCrc := binary.BigEndian.Uint16(body[n : n+2])

	sum := crc.New()
	sum.Write(header[:])
	sum.Write(payload)
	if uint16(sum) != wantCrc {
		return Frame{}, ErrCrcMismatch
	}

	cmd, seq, _ := parseHeader(header)
	return Frame{Cmd: cmd, Seq: seq, Payload: append([]byte(nil), payload...)}, nil
}

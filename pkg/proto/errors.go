package proto

import "errors"

// ErrRetryExhausted is returned by SendReceive when all attempts (the
// initial send plus every retry) time out without a usable response.
var ErrRetryExhausted = errors.New("proto: retry exhausted")

// ErrCrcMismatch is returned when a frame's trailing CRC does not match
// the CRC computed over its header and payload. Never retried — a CRC
// failure indicates a wire problem retries cannot fix.
var ErrCrcMismatch = errors.New("proto: crc mismatch")

// ErrMalformedLength is returned when a frame announces a payload length
// judged implausible for the protocol (capped at 65535).
var ErrMalformedLength = errors.New("proto: malformed length")

// maxPayloadLen is the cap applied to an announced LEN field before it is
// treated as MalformedLength rather than an unreasonably large read.
const maxPayloadLen = 65535

// Package serialio provides the byte-level transport (L0) used to talk to
// the radio: exact-length reads with a timeout window, serialized writes,
// and input-buffer discard ahead of a retransmit. Two implementations
// satisfy [Port]: a real one backed by go.bug.st/serial, and an in-memory
// one (see virtual.go) used by the self-test harness and by tests that must
// not require actual hardware.
package serialio

import (
	"context"
	"errors"
	"fmt"
)

// ErrTimeout is returned by ReadExact/ReadByte when the read window expires
// before enough bytes arrive.
var ErrTimeout = errors.New("serialio: read timeout")

// ErrClosed is returned by any operation attempted after Close.
var ErrClosed = errors.New("serialio: port closed")

// Port is the byte transport contract the framing layer is built on.
// Implementations must serialize concurrent Write calls internally; Read
// calls are expected to be single-consumer (the session driver only).
type Port interface {
	// Write sends all of data, blocking on OS buffering if necessary.
	Write(ctx context.Context, data []byte) error
	// ReadExact blocks until exactly n bytes have been read, the context is
	// canceled, or per-byte inactivity exceeds the port's read window.
	ReadExact(ctx context.Context, n int) ([]byte, error)
	// ReadByte is a convenience wrapper over ReadExact(ctx, 1).
	ReadByte(ctx context.Context) (byte, error)
	// DiscardInput empties the OS receive buffer. Called before a retransmit.
	DiscardInput() error
	// Close releases the underlying handle. Safe to call more than once.
	Close() error
}

// TransportError wraps a failure at the byte-transport layer: a closed
// port, an OS I/O failure, or an unexpected zero-byte read (EOF).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("serialio: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func transportErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Op: op, Err: err}
}

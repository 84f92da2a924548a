package serialio

import (
	"context"
	"sync"
)

// Responder observes bytes written to a VirtualPort and returns the bytes
// the simulated radio replies with, if any. It runs synchronously inside
// Write, the same way the teacher's virtual CAN bus loops a sent frame
// straight back to its own subscribers without a real wire in between.
type Responder func(written []byte) []byte

// VirtualPort is an in-memory loopback transport standing in for a real
// USB-serial cable. It is driven by a Responder that inspects what was
// written and queues up a reply, which lets session- and CLI-level tests
// (and the "test" self-test command) exercise the full protocol stack
// without any hardware attached.
type VirtualPort struct {
	mu      sync.Mutex
	cond    *sync.Cond
	inbox   []byte
	written []byte
	closed  bool
	respond Responder
}

// NewVirtualPort builds a virtual port. respond may be nil, in which case
// the port behaves as a pure sink: writes are recorded but nothing is ever
// queued for reading, which is useful for write-only transport tests.
func NewVirtualPort(respond Responder) *VirtualPort {
	v := &VirtualPort{respond: respond}
	v.cond = sync.NewCond(&v.mu)
	return v
}

// Feed injects bytes directly into the read queue, bypassing the
// responder. Useful for scripting a fixed byte sequence ahead of time.
func (v *VirtualPort) Feed(data []byte) {
	v.mu.Lock()
	v.inbox = append(v.inbox, data...)
	v.mu.Unlock()
	v.cond.Broadcast()
}

// Written returns a copy of everything written to the port so far, for
// assertions in tests that check the exact bytes the protocol layer sent.
func (v *VirtualPort) Written() []byte {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]byte, len(v.written))
	copy(out, v.written)
	return out
}

func (v *VirtualPort) Write(ctx context.Context, data []byte) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return transportErr("write", ErrClosed)
	}
	v.written = append(v.written, data...)
	v.mu.Unlock()

	if v.respond == nil {
		return nil
	}
	reply := v.respond(data)
	if len(reply) == 0 {
		return nil
	}
	v.Feed(reply)
	return nil
}

func (v *VirtualPort) ReadExact(ctx context.Context, n int) ([]byte, error) {
	// A cancelable context wakes the waiter through context.AfterFunc,
	// which broadcasts once when the context is done; this keeps ReadExact
	// from blocking forever on a canceled context without spawning a
	// goroutine per wait iteration.
	if ctx.Done() != nil {
		stop := context.AfterFunc(ctx, v.cond.Broadcast)
		defer stop()
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	for len(v.inbox) < n {
		if v.closed {
			return nil, transportErr("read", ErrClosed)
		}
		if ctx.Err() != nil {
			return nil, transportErr("read", ctx.Err())
		}
		v.cond.Wait()
	}
	out := make([]byte, n)
	copy(out, v.inbox[:n])
	v.inbox = v.inbox[n:]
	return out, nil
}

func (v *VirtualPort) ReadByte(ctx context.Context) (byte, error) {
	b, err := v.ReadExact(ctx, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (v *VirtualPort) DiscardInput() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return transportErr("discard", ErrClosed)
	}
	v.inbox = nil
	return nil
}

func (v *VirtualPort) Close() error {
	v.mu.Lock()
	already := v.closed
	v.closed = true
	v.mu.Unlock()
	if !already {
		v.cond.Broadcast()
	}
	return nil
}

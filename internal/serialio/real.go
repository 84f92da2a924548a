package serialio

import (
	"context"
	"sync"
	"time"

	"go.bug.st/serial"
)

// stabilizeDelay is how long to wait after asserting DTR/RTS before the
// radio's UART is ready to receive; the bootloader on the handset needs
// this settle time or the first handshake byte gets dropped.
const stabilizeDelay = 200 * time.Millisecond

// readPollInterval bounds how often ReadExact polls the OS buffer while
// waiting for more bytes to arrive.
const readPollInterval = 10 * time.Millisecond

// readWindow is the inactivity window: if no new byte arrives for this
// long, the read is abandoned as a timeout.
const readWindow = 2 * time.Second

// RealPort is a Port backed by an actual USB-serial device.
type RealPort struct {
	mu     sync.Mutex
	port   serial.Port
	closed bool
}

// Open opens name at 115200 8N1, asserts DTR and RTS, and waits out the
// power-stabilization window before returning.
func Open(name string) (*RealPort, error) {
	mode := &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, transportErr("open", err)
	}
	if err := p.SetDTR(true); err != nil {
		p.Close()
		return nil, transportErr("set-dtr", err)
	}
	if err := p.SetRTS(true); err != nil {
		p.Close()
		return nil, transportErr("set-rts", err)
	}
	// Without a read timeout, Read blocks indefinitely for at least one
	// byte, so ReadExact's poll loop below never gets to check its
	// deadline. Give it a short one so Read returns with 0 bytes when
	// the radio goes quiet.
	if err := p.SetReadTimeout(readPollInterval); err != nil {
		p.Close()
		return nil, transportErr("set-read-timeout", err)
	}
	time.Sleep(stabilizeDelay)
	return &RealPort{port: p}, nil
}

func (p *RealPort) Write(ctx context.Context, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return transportErr("write", ErrClosed)
	}
	_, err := p.port.Write(data)
	return transportErr("write", err)
}

func (p *RealPort) ReadExact(ctx context.Context, n int) ([]byte, error) {
	buf := make([]byte, 0, n)
	deadline := time.Now().Add(readWindow)
	for len(buf) < n {
		select {
		case <-ctx.Done():
			return nil, transportErr("read", ctx.Err())
		default:
		}
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return nil, transportErr("read", ErrClosed)
		}
		chunk := make([]byte, n-len(buf))
		read, err := p.port.Read(chunk)
		p.mu.Unlock()
		if err != nil {
			return nil, transportErr("read", err)
		}
		if read > 0 {
			buf = append(buf, chunk[:read]...)
			deadline = time.Now().Add(readWindow)
			continue
		}
		if time.Now().After(deadline) {
			return nil, transportErr("read", ErrTimeout)
		}
		time.Sleep(readPollInterval)
	}
	return buf, nil
}

func (p *RealPort) ReadByte(ctx context.Context) (byte, error) {
	b, err := p.ReadExact(ctx, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (p *RealPort) DiscardInput() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return transportErr("discard", ErrClosed)
	}
	return transportErr("discard", p.port.ResetInputBuffer())
}

func (p *RealPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return transportErr("close", p.port.Close())
}

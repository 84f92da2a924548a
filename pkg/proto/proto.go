package proto

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jc8810/rt5dctl/internal/serialio"
)

// attemptWindow is how long send_receive waits for a usable response
// before flushing input and retransmitting.
const attemptWindow = 1000 * time.Millisecond

// maxRetries is the number of retransmits attempted after the initial
// send, for 4 total attempts.
const maxRetries = 3

// Transport is the byte-level framing driver for one serial connection.
// It owns no session semantics (step ordering lives in pkg/session) —
// only frame construction, the receive scanner, and the retry loop.
type Transport struct {
	port serialio.Port
	log  *logrus.Entry
}

// New wraps port in a Transport. log may be nil, in which case a
// discard-level logger is used.
func New(port serialio.Port, log *logrus.Entry) *Transport {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l.WithField("component", "proto")
	}
	return &Transport{port: port, log: log}
}

// SendReceive transmits (cmd, seq, payload), then waits for a response
// frame within the attempt window, retrying up to maxRetries times on
// timeout. NAK frames are dropped silently within the same attempt. A CRC
// mismatch fails immediately without retrying.
func (t *Transport) SendReceive(ctx context.Context, cmd byte, seq uint16, payload []byte) (Frame, error) {
	frame := Frame{Cmd: cmd, Seq: seq, Payload: payload}
	wire := frame.Build()

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			t.log.Debugf("[FRAME] retry %d/%d for cmd=0x%02X seq=%d", attempt, maxRetries, cmd, seq)
			if err := t.port.DiscardInput(); err != nil {
				return Frame{}, err
			}
		}
		if err := t.port.Write(ctx, wire); err != nil {
			return Frame{}, err
		}

		resp, err := t.receiveWithin(ctx, attemptWindow)
		switch {
		case err == nil:
			return resp, nil
		case errors.Is(err, serialio.ErrTimeout), isDeadlineErr(err):
			continue
		default:
			return Frame{}, err
		}
	}
	t.log.Warnf("[FRAME] retry exhausted for cmd=0x%02X seq=%d", cmd, seq)
	return Frame{}, ErrRetryExhausted
}

func isDeadlineErr(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// receiveWithin runs the S1/S2/S3 scanner against a sub-context bounded
// by window, dropping NAK frames and retrying the scan within the same
// window rather than surfacing them as a response.
func (t *Transport) receiveWithin(ctx context.Context, window time.Duration) (Frame, error) {
	subCtx, cancel := context.WithTimeout(ctx, window)
	defer cancel()

	for {
		frame, err := t.receiveOne(subCtx)
		if err != nil {
			return Frame{}, err
		}
		if frame.Cmd == NakCmd {
			t.log.Debugf("[FRAME] dropping NAK")
			continue
		}
		return frame, nil
	}
}

// receiveOne runs the scan-for-SOF / header / body state machine once.
func (t *Transport) receiveOne(ctx context.Context) (Frame, error) {
	// S1: scan for SOF.
	for {
		b, err := t.port.ReadByte(ctx)
		if err != nil {
			return Frame{}, err
		}
		if b == SOF {
			break
		}
	}

	// S2: header.
	raw, err := t.port.ReadExact(ctx, headerLen)
	if err != nil {
		return Frame{}, err
	}
	var header [headerLen]byte
	copy(header[:], raw)
	_, _, length := parseHeader(header)
	if length > maxPayloadLen {
		return Frame{}, ErrMalformedLength
	}

	// S3: body (payload + CRC).
	body, err := t.port.ReadExact(ctx, length+2)
	if err != nil {
		return Frame{}, err
	}

	return verify(header, body)
}

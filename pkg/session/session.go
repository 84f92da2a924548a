package session

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jc8810/rt5dctl/pkg/proto"
)

// Command bytes for the twelve ordered steps, read and write variants
// where the radio distinguishes them.
const (
	cmdHandshake = 0x02
	cmdPassword  = 0x05
	cmdVersion   = 0x46

	cmdDtmfRead, cmdDtmfWrite           = 0x16, 0x36
	cmdKeysRead, cmdKeysWrite           = 0x15, 0x35
	cmdContactsRead, cmdContactsWrite   = 0x13, 0x33
	cmdRxGroupsRead, cmdRxGroupsWrite   = 0x14, 0x34
	cmdChannelsRead, cmdChannelsWrite   = 0x10, 0x30
	cmdVfoRead, cmdVfoWrite             = 0x11, 0x31
	cmdOptFuncRead, cmdOptFuncWrite     = 0x12, 0x32
	cmdBasicInfoRead, cmdBasicInfoWrite = 0x19, 0x39
	cmdEndSession                       = 0x01
)

var (
	handshakePayload  = []byte("PROGRAMJC8810DU")
	passwordPayload   = []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	endSessionPayload = []byte{0x00, 0x00}
)

// postWriteSettle is how long the radio is given to flash what it was
// sent before the verify-read of a write session is attempted. A var,
// not a const, so tests can shrink it instead of waiting out the real
// delay.
var postWriteSettle = 10 * time.Second

// SetPostWriteSettleForTest overrides the post-write settle delay and
// returns a func that restores the previous value. For use by tests
// outside this package that need WriteAll to run on a short deadline,
// such as the self-test suite's end-to-end write check.
func SetPostWriteSettleForTest(d time.Duration) (restore func()) {
	prev := postWriteSettle
	postWriteSettle = d
	return func() { postWriteSettle = prev }
}

// Session drives one connected Transport through the handshake, the
// twelve-step block exchange, and end-of-session, in order. It owns no
// retry or framing logic of its own — that lives entirely in pkg/proto —
// only the step sequencing and per-step payload-size contract.
type Session struct {
	tr  *proto.Transport
	log *logrus.Entry
}

// New wraps tr. log may be nil, in which case a discard-level logger is
// used.
func New(tr *proto.Transport, log *logrus.Entry) *Session {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l.WithField("component", "session")
	}
	return &Session{tr: tr, log: log}
}

// handshake runs steps 1-3, common to both a read and a write session.
func (s *Session) handshake(ctx context.Context) ([]byte, error) {
	s.log.Debug("[SESSION] handshake")
	if _, err := s.tr.SendReceive(ctx, cmdHandshake, 0, handshakePayload); err != nil {
		return nil, err
	}
	s.log.Debug("[SESSION] password")
	if _, err := s.tr.SendReceive(ctx, cmdPassword, 0, passwordPayload); err != nil {
		return nil, err
	}
	s.log.Debug("[SESSION] version")
	resp, err := s.tr.SendReceive(ctx, cmdVersion, 0, nil)
	if err != nil {
		return nil, err
	}
	if err := sizeErr("version", versionSize, len(resp.Payload)); err != nil {
		return nil, err
	}
	return resp.Payload, nil
}

// Info runs steps 1-3 (handshake, password, version) followed by end
// session, without touching any codeplug block — the short flow behind
// the CLI's "info" command. It returns the raw 128-byte version block.
func (s *Session) Info(ctx context.Context) ([]byte, error) {
	version, err := s.handshake(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.endSession(ctx); err != nil {
		return nil, err
	}
	return version, nil
}

// endSession runs step 12.
func (s *Session) endSession(ctx context.Context) error {
	s.log.Debug("[SESSION] end session")
	_, err := s.tr.SendReceive(ctx, cmdEndSession, 0, endSessionPayload)
	return err
}

// readBlock performs a single-packet read step, validating the response
// size against want.
func (s *Session) readBlock(ctx context.Context, name string, cmd byte, want int) ([]byte, error) {
	resp, err := s.tr.SendReceive(ctx, cmd, 0, nil)
	if err != nil {
		return nil, err
	}
	if err := sizeErr(name, want, len(resp.Payload)); err != nil {
		return nil, err
	}
	return resp.Payload, nil
}

// writeBlock performs a single-packet write step. The radio's ack is not
// size-checked: only the documented read responses carry a fixed size
// contract.
func (s *Session) writeBlock(ctx context.Context, cmd byte, payload []byte) error {
	_, err := s.tr.SendReceive(ctx, cmd, uint16(0), payload)
	return err
}

// readMultiBlock performs a multi-packet read step, one SendReceive per
// sequence number, reporting progress after each packet.
func (s *Session) readMultiBlock(ctx context.Context, name string, cmd byte, count, packetSize int, progress Progress) ([]byte, error) {
	out := make([]byte, 0, count*packetSize)
	for seq := 0; seq < count; seq++ {
		resp, err := s.tr.SendReceive(ctx, cmd, uint16(seq), nil)
		if err != nil {
			return nil, err
		}
		if err := sizeErr(name, packetSize, len(resp.Payload)); err != nil {
			return nil, err
		}
		out = append(out, resp.Payload...)
		progress(name, seq+1, count)
	}
	return out, nil
}

// writeMultiBlock performs a multi-packet write step, one SendReceive per
// sequence number carrying that packet's slice of data.
func (s *Session) writeMultiBlock(ctx context.Context, name string, cmd byte, data []byte, count, packetSize int, progress Progress) error {
	for seq := 0; seq < count; seq++ {
		chunk := data[seq*packetSize : (seq+1)*packetSize]
		if _, err := s.tr.SendReceive(ctx, cmd, uint16(seq), chunk); err != nil {
			return err
		}
		progress(name, seq+1, count)
	}
	return nil
}

// ReadAll executes the full twelve-step read session: handshake, then
// every block in its documented order, then end-of-session. It aborts on
// the first error — there is no mid-session resume.
func (s *Session) ReadAll(ctx context.Context, progress Progress) (*Payloads, error) {
	progress = progress.orNoop()

	if _, err := s.handshake(ctx); err != nil {
		return nil, err
	}

	p := &Payloads{}
	var err error

	if p.Dtmf, err = s.readBlock(ctx, "dtmf", cmdDtmfRead, dtmfSize); err != nil {
		return nil, err
	}
	progress("dtmf", 1, 1)

	if p.Keys, err = s.readBlock(ctx, "keys", cmdKeysRead, keysSize); err != nil {
		return nil, err
	}
	progress("keys", 1, 1)

	if p.Contacts, err = s.readMultiBlock(ctx, "contacts", cmdContactsRead, contactPacketCount, contactPacketSize, progress); err != nil {
		return nil, err
	}

	if p.RxGroups, err = s.readMultiBlock(ctx, "rxgroups", cmdRxGroupsRead, rxGroupPacketCount, rxGroupPacketSize, progress); err != nil {
		return nil, err
	}

	if p.Channels, err = s.readMultiBlock(ctx, "channels", cmdChannelsRead, channelPacketCount, channelPacketSize, progress); err != nil {
		return nil, err
	}

	if p.Vfo, err = s.readBlock(ctx, "vfo", cmdVfoRead, vfoSize); err != nil {
		return nil, err
	}
	progress("vfo", 1, 1)

	if p.OptionalFunctions, err = s.readBlock(ctx, "optionalfunctions", cmdOptFuncRead, optionalFunctionsSize); err != nil {
		return nil, err
	}
	progress("optionalfunctions", 1, 1)

	if p.BasicInfo, err = s.readBlock(ctx, "basicinfo", cmdBasicInfoRead, basicInfoSize); err != nil {
		return nil, err
	}
	progress("basicinfo", 1, 1)

	if err := s.endSession(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// WriteAll executes a full write session: handshake, steps 4-10 with the
// supplied payloads, step 11 only when includeBasicInfo is set, step 12,
// a settle wait, then a full verify read. The verify read reuses ReadAll
// and its own progress callback; a failure there fails the write.
func (s *Session) WriteAll(ctx context.Context, p *Payloads, includeBasicInfo bool, progress Progress) (*Payloads, error) {
	progress = progress.orNoop()

	if _, err := s.handshake(ctx); err != nil {
		return nil, err
	}

	if err := sizeErr("dtmf", dtmfSize, len(p.Dtmf)); err != nil {
		return nil, err
	}
	if err := s.writeBlock(ctx, cmdDtmfWrite, p.Dtmf); err != nil {
		return nil, err
	}
	progress("dtmf", 1, 1)

	if err := sizeErr("keys", keysSize, len(p.Keys)); err != nil {
		return nil, err
	}
	if err := s.writeBlock(ctx, cmdKeysWrite, p.Keys); err != nil {
		return nil, err
	}
	progress("keys", 1, 1)

	if err := sizeErr("contacts", contactPacketCount*contactPacketSize, len(p.Contacts)); err != nil {
		return nil, err
	}
	if err := s.writeMultiBlock(ctx, "contacts", cmdContactsWrite, p.Contacts, contactPacketCount, contactPacketSize, progress); err != nil {
		return nil, err
	}

	if err := sizeErr("rxgroups", rxGroupPacketCount*rxGroupPacketSize, len(p.RxGroups)); err != nil {
		return nil, err
	}
	if err := s.writeMultiBlock(ctx, "rxgroups", cmdRxGroupsWrite, p.RxGroups, rxGroupPacketCount, rxGroupPacketSize, progress); err != nil {
		return nil, err
	}

	if err := sizeErr("channels", channelPacketCount*channelPacketSize, len(p.Channels)); err != nil {
		return nil, err
	}
	if err := s.writeMultiBlock(ctx, "channels", cmdChannelsWrite, p.Channels, channelPacketCount, channelPacketSize, progress); err != nil {
		return nil, err
	}

	if err := sizeErr("vfo", vfoSize, len(p.Vfo)); err != nil {
		return nil, err
	}
	if err := s.writeBlock(ctx, cmdVfoWrite, p.Vfo); err != nil {
		return nil, err
	}
	progress("vfo", 1, 1)

	if err := sizeErr("optionalfunctions", optionalFunctionsSize, len(p.OptionalFunctions)); err != nil {
		return nil, err
	}
	if err := s.writeBlock(ctx, cmdOptFuncWrite, p.OptionalFunctions); err != nil {
		return nil, err
	}
	progress("optionalfunctions", 1, 1)

	if includeBasicInfo {
		if err := sizeErr("basicinfo", basicInfoSize, len(p.BasicInfo)); err != nil {
			return nil, err
		}
		if err := s.writeBlock(ctx, cmdBasicInfoWrite, p.BasicInfo); err != nil {
			return nil, err
		}
		progress("basicinfo", 1, 1)
	}

	if err := s.endSession(ctx); err != nil {
		return nil, err
	}

	if err := sleepCtx(ctx, postWriteSettle); err != nil {
		return nil, err
	}

	return s.ReadAll(ctx, progress)
}

// sleepCtx waits d, returning early with ctx's error if it is cancelled
// or its deadline elapses first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

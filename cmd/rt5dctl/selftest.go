package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jc8810/rt5dctl/internal/crc"
	"github.com/jc8810/rt5dctl/internal/serialio"
	"github.com/jc8810/rt5dctl/pkg/codec"
	"github.com/jc8810/rt5dctl/pkg/codeplug"
	"github.com/jc8810/rt5dctl/pkg/proto"
	"github.com/jc8810/rt5dctl/pkg/session"
)

// check is one named self-test: a property or concrete scenario from the
// testable-properties list, runnable without real hardware.
type check struct {
	name string
	run  func() error
}

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the built-in self-test suite against the virtual radio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, c := range selfTests() {
				if err := c.run(); err != nil {
					fmt.Fprintf(out, "FAIL %s: %v\n", c.name, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "ok   %s\n", c.name)
			}
			if failed > 0 {
				return fmt.Errorf("%d self-test(s) failed", failed)
			}
			fmt.Fprintln(out, "all self-tests passed")
			return nil
		},
	}
}

func selfTests() []check {
	return []check{
		{"crc known value", checkCrcKnownValue},
		{"frame build layout", checkFrameBuildLayout},
		{"ctcss 88.5 round trip", checkCtcss88p5},
		{"dcs D023I round trip", checkDcsD023I},
		{"frequency 145.5MHz round trip", checkFrequencyRoundTrip},
		{"vfo default substitution", checkVfoDefaultSubstitution},
		{"rx group terminator bytes", checkRxGroupTerminator},
		{"empty channel packer round trip", checkEmptyChannelPackerRoundTrip},
		{"end-to-end read session", checkEndToEndReadSession},
		{"end-to-end write session with verify", checkEndToEndWriteSession},
	}
}

func checkCrcKnownValue() error {
	got := crc.Checksum([]byte("123456789"))
	if got != 0x31C3 {
		return fmt.Errorf("checksum(%q) = 0x%04X, want 0x31C3", "123456789", got)
	}
	return nil
}

func checkFrameBuildLayout() error {
	wire := proto.Frame{Cmd: 0x02, Seq: 0, Payload: []byte("PROGRAMJC8810DU")}.Build()
	if len(wire) != 23 {
		return fmt.Errorf("length = %d, want 23", len(wire))
	}
	if wire[0] != 0xA5 || wire[1] != 0x02 || wire[2] != 0x00 || wire[3] != 0x00 || wire[4] != 0x00 || wire[5] != 0x0F {
		return fmt.Errorf("header bytes = % X, want A5 02 00 00 00 0F", wire[0:6])
	}
	if wire[6] != 'P' || wire[20] != 'U' {
		return fmt.Errorf("payload bytes[6]=%c bytes[20]=%c, want P/U", wire[6], wire[20])
	}
	return nil
}

func checkCtcss88p5() error {
	sub := codec.Ctcss(88.5)
	enc, err := codec.EncodeSubAudio(sub)
	if err != nil {
		return err
	}
	if enc[0] != 0x75 || enc[1] != 0x03 {
		return fmt.Errorf("encode(CTCSS 88.5) = % X, want 75 03", enc)
	}
	dec, err := codec.DecodeSubAudio(enc)
	if err != nil {
		return err
	}
	if dec.CtcssHz() != 88.5 {
		return fmt.Errorf("decode(% X).CtcssHz() = %v, want 88.5", enc, dec.CtcssHz())
	}
	return nil
}

func checkDcsD023I() error {
	sub := codec.Dcs("023", true)
	enc, err := codec.EncodeSubAudio(sub)
	if err != nil {
		return err
	}
	if enc[0] != 0x6A || enc[1] != 0x00 {
		return fmt.Errorf("encode(D023I) = % X, want 6A 00", enc)
	}
	dec, err := codec.DecodeSubAudio(enc)
	if err != nil {
		return err
	}
	if dec.String() != "D023I" {
		return fmt.Errorf("decode(% X).String() = %q, want D023I", enc, dec.String())
	}
	return nil
}

func checkFrequencyRoundTrip() error {
	enc := codec.EncodeFreq(145.5)
	want := []byte{0xF0, 0x03, 0xDE, 0x00}
	for i := range want {
		if enc[i] != want[i] {
			return fmt.Errorf("encode(145.5) = % X, want % X", enc, want)
		}
	}
	dec := codec.DecodeFreq(enc)
	if dec != 145.5 {
		return fmt.Errorf("decode(% X) = %v, want 145.5", enc, dec)
	}
	return nil
}

func checkVfoDefaultSubstitution() error {
	buf := make([]byte, codeplug.VfoSize)
	for i := range buf {
		buf[i] = 0xFF
	}
	v, err := codeplug.DecodeVfo(buf, codeplug.VfoBankA)
	if err != nil {
		return err
	}
	if v.RxFreqMHz != 136.125 {
		return fmt.Errorf("bank A rx = %v, want 136.125", v.RxFreqMHz)
	}
	v, err = codeplug.DecodeVfo(buf, codeplug.VfoBankB)
	if err != nil {
		return err
	}
	if v.RxFreqMHz != 400.125 {
		return fmt.Errorf("bank B rx = %v, want 400.125", v.RxFreqMHz)
	}
	return nil
}

func checkRxGroupTerminator() error {
	buf, err := codeplug.EncodeRxGroup(&codeplug.RxGroup{Members: []uint32{1, 2, 3}})
	if err != nil {
		return err
	}
	if buf[9] != 0x00 || buf[10] != 0x00 || buf[11] != 0x00 {
		return fmt.Errorf("terminator bytes[9:12] = % X, want 00 00 00", buf[9:12])
	}
	return nil
}

func checkEmptyChannelPackerRoundTrip() error {
	slots := make([]*codeplug.Channel, codeplug.ChannelCount)
	packets, err := codeplug.PackChannels(slots)
	if err != nil {
		return err
	}
	if len(packets) != 64 {
		return fmt.Errorf("got %d packets, want 64", len(packets))
	}
	for i, pkt := range packets {
		if len(pkt) != 1024 {
			return fmt.Errorf("packet %d length = %d, want 1024", i, len(pkt))
		}
		for _, b := range pkt {
			if b != 0xFF {
				return fmt.Errorf("packet %d is not all-0xFF", i)
			}
		}
	}
	decoded, err := codeplug.UnpackChannels(packets)
	if err != nil {
		return err
	}
	for i, ch := range decoded {
		if ch != nil {
			return fmt.Errorf("slot %d decoded non-nil for an empty packer round trip", i)
		}
	}
	return nil
}

func virtualRadio() *serialio.VirtualPort {
	return serialio.NewVirtualPort(func(written []byte) []byte {
		cmd := written[1]
		seq := binary.BigEndian.Uint16(written[2:4])

		sizes := map[byte]int{
			0x46: 128, 0x16: 272, 0x15: 264,
			0x13: 800, 0x14: 1024, 0x10: 1024,
			0x11: 128, 0x12: 64, 0x19: 64,
		}
		size, ok := sizes[cmd]
		var payload []byte
		if ok {
			payload = make([]byte, size)
			payload[0] = byte(seq)
		} else {
			payload = []byte{0x00}
		}
		return proto.Frame{Cmd: cmd, Seq: seq, Payload: payload}.Build()
	})
}

func checkEndToEndReadSession() error {
	sess := session.New(proto.New(virtualRadio(), nil), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := sess.ReadAll(ctx, nil)
	if err != nil {
		return err
	}
	if len(p.Channels) != 64*1024 {
		return fmt.Errorf("channels length = %d, want %d", len(p.Channels), 64*1024)
	}
	return nil
}

func checkEndToEndWriteSession() error {
	restore := session.SetPostWriteSettleForTest(time.Millisecond)
	defer restore()

	sess := session.New(proto.New(virtualRadio(), nil), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := &session.Payloads{
		Dtmf:              make([]byte, 272),
		Keys:              make([]byte, 264),
		Contacts:          make([]byte, 800*80),
		RxGroups:          make([]byte, 1024*4),
		Channels:          make([]byte, 1024*64),
		Vfo:               make([]byte, 128),
		OptionalFunctions: make([]byte, 64),
		BasicInfo:         make([]byte, 64),
	}

	verify, err := sess.WriteAll(ctx, p, true, nil)
	if err != nil {
		return err
	}
	if len(verify.Channels) != 1024*64 {
		return fmt.Errorf("verify channels length = %d, want %d", len(verify.Channels), 1024*64)
	}
	return nil
}

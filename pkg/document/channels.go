package document

import (
	"github.com/jc8810/rt5dctl/pkg/codec"
	"github.com/jc8810/rt5dctl/pkg/codeplug"
)

// ChannelSlot is one populated channel, 1-based.
type ChannelSlot struct {
	Slot int `json:"slot"`

	Type      string `json:"type"`
	RxFreqMHz string `json:"rxFreqMHz"`
	TxFreqMHz string `json:"txFreqMHz"`
	RxTone    string `json:"rxTone,omitempty"`
	TxTone    string `json:"txTone,omitempty"`

	Power     string `json:"power,omitempty"`
	ScanAdd   bool   `json:"scanAdd,omitempty"`
	LearnFHSS bool   `json:"learnFhss,omitempty"`

	ColorCode    int `json:"colorCode,omitempty"`
	TimeSlot     int `json:"timeSlot,omitempty"`
	ContactSlot  int `json:"contactSlot,omitempty"`
	RxGroupSlot  int `json:"rxGroupSlot,omitempty"`

	FHSSCode string `json:"fhssCode,omitempty"`
	Name     string `json:"name,omitempty"`
}

func channelsFromSlots(slots []*codeplug.Channel) []ChannelSlot {
	var out []ChannelSlot
	for i, ch := range slots {
		if ch == nil {
			continue
		}
		out = append(out, ChannelSlot{
			Slot:        i + 1,
			Type:        channelTypeToString(ch.Type),
			RxFreqMHz:   formatMHz(ch.RxFreqMHz),
			TxFreqMHz:   formatMHz(ch.TxFreqMHz),
			RxTone:      ch.RxTone.String(),
			TxTone:      ch.TxTone.String(),
			Power:       powerToString(ch.Power),
			ScanAdd:     ch.ScanAdd,
			LearnFHSS:   ch.LearnFHSS,
			ColorCode:   ch.ColorCode,
			TimeSlot:    ch.TimeSlot,
			ContactSlot: ch.ContactIndex,
			RxGroupSlot: ch.RxGroupIndex,
			FHSSCode:    ch.FHSSCode,
			Name:        ch.Name,
		})
	}
	return out
}

func channelsToSlots(doc []ChannelSlot) ([]*codeplug.Channel, error) {
	slots := make([]*codeplug.Channel, codeplug.ChannelCount)
	for _, e := range doc {
		idx := clampSlot(e.Slot, codeplug.ChannelCount) - 1

		rx, err := parseMHz(e.RxFreqMHz)
		if err != nil {
			return nil, err
		}
		tx, err := parseMHz(e.TxFreqMHz)
		if err != nil {
			return nil, err
		}
		rxTone, err := parseToneOrOff(e.RxTone)
		if err != nil {
			return nil, err
		}
		txTone, err := parseToneOrOff(e.TxTone)
		if err != nil {
			return nil, err
		}

		slots[idx] = &codeplug.Channel{
			Type:         channelTypeFromString(e.Type),
			RxFreqMHz:    rx,
			TxFreqMHz:    tx,
			RxTone:       rxTone,
			TxTone:       txTone,
			Power:        powerFromString(e.Power),
			ScanAdd:      e.ScanAdd,
			LearnFHSS:    e.LearnFHSS,
			ColorCode:    e.ColorCode,
			TimeSlot:     e.TimeSlot,
			ContactIndex: e.ContactSlot,
			RxGroupIndex: e.RxGroupSlot,
			FHSSCode:     e.FHSSCode,
			Name:         e.Name,
		}
	}
	return slots, nil
}

func parseToneOrOff(s string) (codec.SubAudio, error) {
	if s == "" {
		return codec.Off(), nil
	}
	return codec.ParseSubAudio(s)
}

package document

import "github.com/jc8810/rt5dctl/pkg/codeplug"

// VfoBank is the document form of one VFO bank record.
type VfoBank struct {
	Type      string `json:"type"`
	RxFreqMHz string `json:"rxFreqMHz"`
	TxFreqMHz string `json:"txFreqMHz"`
	RxTone    string `json:"rxTone,omitempty"`
	TxTone    string `json:"txTone,omitempty"`
	Power     string `json:"power,omitempty"`
	Step      string `json:"step,omitempty"`
	ColorCode int    `json:"colorCode,omitempty"`
	TimeSlot  int    `json:"timeSlot,omitempty"`
	Name      string `json:"name,omitempty"`
}

// Vfo holds both VFO banks.
type Vfo struct {
	A VfoBank `json:"a"`
	B VfoBank `json:"b"`
}

func vfoFromPayload(buf []byte) (*Vfo, error) {
	a, err := codeplug.DecodeVfo(buf[0:codeplug.VfoSize], codeplug.VfoBankA)
	if err != nil {
		return nil, err
	}
	b, err := codeplug.DecodeVfo(buf[codeplug.VfoSize:2*codeplug.VfoSize], codeplug.VfoBankB)
	if err != nil {
		return nil, err
	}
	return &Vfo{A: vfoBankFromCodec(a), B: vfoBankFromCodec(b)}, nil
}

func vfoToPayload(doc *Vfo) ([]byte, error) {
	var a, b VfoBank
	if doc != nil {
		a, b = doc.A, doc.B
	}

	aBuf, err := codeplug.EncodeVfo(vfoBankToCodec(a))
	if err != nil {
		return nil, err
	}
	bBuf, err := codeplug.EncodeVfo(vfoBankToCodec(b))
	if err != nil {
		return nil, err
	}
	return append(aBuf, bBuf...), nil
}

func vfoBankFromCodec(v codeplug.Vfo) VfoBank {
	return VfoBank{
		Type:      channelTypeToString(v.Type),
		RxFreqMHz: formatMHz(v.RxFreqMHz),
		TxFreqMHz: formatMHz(v.TxFreqMHz),
		RxTone:    v.RxTone.String(),
		TxTone:    v.TxTone.String(),
		Power:     powerToString(v.Power),
		Step:      stepToString(v.Step),
		ColorCode: v.ColorCode,
		TimeSlot:  v.TimeSlot,
		Name:      v.Name,
	}
}

func vfoBankToCodec(b VfoBank) codeplug.Vfo {
	rx, _ := parseMHz(valueOrDefaultStr(b.RxFreqMHz, "0.000000"))
	tx, _ := parseMHz(valueOrDefaultStr(b.TxFreqMHz, "0.000000"))
	rxTone, _ := parseToneOrOff(b.RxTone)
	txTone, _ := parseToneOrOff(b.TxTone)
	return codeplug.Vfo{
		Type:      channelTypeFromString(b.Type),
		RxFreqMHz: rx,
		TxFreqMHz: tx,
		RxTone:    rxTone,
		TxTone:    txTone,
		Power:     powerFromString(b.Power),
		Step:      stepFromString(b.Step),
		ColorCode: b.ColorCode,
		TimeSlot:  b.TimeSlot,
		Name:      b.Name,
	}
}

func valueOrDefaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

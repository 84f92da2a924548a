package codeplug

import "github.com/jc8810/rt5dctl/pkg/codec"

// VfoSize is the fixed byte length of one VFO bank record.
const VfoSize = 64

// VfoBank identifies which of the two VFO banks a record belongs to.
type VfoBank int

const (
	VfoBankA VfoBank = iota
	VfoBankB
)

// defaultVfoFreq is substituted whenever a bank's frequency field decodes
// to the all-zero or all-0xFF sentinel.
var defaultVfoFreq = map[VfoBank]float64{
	VfoBankA: 136.125,
	VfoBankB: 400.125,
}

// Step is the VFO tuning step, one of eight fixed values in kHz.
type Step int

const (
	Step2_5 Step = iota
	Step5
	Step6_25
	Step10
	Step12_5
	Step20
	Step25
	Step50
)

var stepValues = [8]float64{2.5, 5, 6.25, 10, 12.5, 20, 25, 50}

// StepKHz returns s's tuning step in kHz.
func (s Step) StepKHz() float64 { return stepValues[s] }

// Vfo is the decoded form of one 64-byte VFO bank record. It shares the
// channel record's general field layout, but carries a tuning Step
// instead of the learn-FHSS flag, and has no FHSS region.
type Vfo struct {
	Type ChannelType

	RxFreqMHz float64
	TxFreqMHz float64
	RxTone    codec.SubAudio
	TxTone    codec.SubAudio

	Power ChannelPower
	Step  Step

	ColorCode int
	TimeSlot  int

	Name string
}

const (
	vfOffRxFreq = 0
	vfOffTxFreq = 4
	vfOffRxTone = 8
	vfOffTxTone = 10
	vfOffPower  = 12
	vfOffStep   = 13
	vfOffTypeA  = 14
	vfOffTypeB  = 15
	vfOffColor  = 16
	vfOffSlot   = 17
	vfOffName   = 32
	vfNameLen   = 12
)

// EncodeVfo renders v as a VfoSize-byte record.
func EncodeVfo(v Vfo) ([]byte, error) {
	buf := make([]byte, VfoSize)
	fillBytes(buf, 0xFF)

	copy(buf[vfOffRxFreq:vfOffRxFreq+4], codec.EncodeFreq(v.RxFreqMHz))
	copy(buf[vfOffTxFreq:vfOffTxFreq+4], codec.EncodeFreq(v.TxFreqMHz))

	rxTone, err := codec.EncodeSubAudio(v.RxTone)
	if err != nil {
		return nil, codecErr("vfo", "rxTone", err)
	}
	copy(buf[vfOffRxTone:vfOffRxTone+2], rxTone)

	txTone, err := codec.EncodeSubAudio(v.TxTone)
	if err != nil {
		return nil, codecErr("vfo", "txTone", err)
	}
	copy(buf[vfOffTxTone:vfOffTxTone+2], txTone)

	buf[vfOffPower] = byte(v.Power)
	buf[vfOffStep] = byte(v.Step)

	if v.Type == ChannelAnalog {
		buf[vfOffTypeA] = 1
	} else {
		buf[vfOffTypeA] = 0
		if v.Type == ChannelDmrTier2 {
			buf[vfOffTypeB] = 1
		} else {
			buf[vfOffTypeB] = 0
		}
		buf[vfOffColor] = byte(v.ColorCode)
		buf[vfOffSlot] = byte(v.TimeSlot)
	}

	name, err := codec.EncodeGB2312(v.Name, vfNameLen)
	if err != nil {
		return nil, codecErr("vfo", "name", err)
	}
	copy(buf[vfOffName:vfOffName+vfNameLen], name)

	return buf, nil
}

// DecodeVfo parses a VfoSize-byte record for the given bank, substituting
// that bank's default frequency wherever a frequency field decodes to the
// all-zero or all-0xFF sentinel.
func DecodeVfo(buf []byte, bank VfoBank) (Vfo, error) {
	if len(buf) != VfoSize {
		return Vfo{}, codecErr("vfo", "", errWrongSize(VfoSize, len(buf)))
	}

	v := Vfo{}
	v.RxFreqMHz = decodeVfoFreq(buf[vfOffRxFreq:vfOffRxFreq+4], bank)
	v.TxFreqMHz = decodeVfoFreq(buf[vfOffTxFreq:vfOffTxFreq+4], bank)

	rxTone, err := codec.DecodeSubAudio(buf[vfOffRxTone : vfOffRxTone+2])
	if err != nil {
		return Vfo{}, codecErr("vfo", "rxTone", err)
	}
	v.RxTone = rxTone

	txTone, err := codec.DecodeSubAudio(buf[vfOffTxTone : vfOffTxTone+2])
	if err != nil {
		return Vfo{}, codecErr("vfo", "txTone", err)
	}
	v.TxTone = txTone

	v.Power = ChannelPower(buf[vfOffPower])
	v.Step = Step(buf[vfOffStep] & 0x0F)

	typeA := buf[vfOffTypeA] & 0x0F
	typeB := buf[vfOffTypeB] & 0x0F
	if typeA == 1 {
		v.Type = ChannelAnalog
	} else if typeB == 1 {
		v.Type = ChannelDmrTier2
		v.ColorCode = int(buf[vfOffColor])
		v.TimeSlot = int(buf[vfOffSlot])
	} else {
		v.Type = ChannelDmrTier1
		v.ColorCode = int(buf[vfOffColor])
		v.TimeSlot = int(buf[vfOffSlot])
	}

	name, err := codec.DecodeGB2312(buf[vfOffName : vfOffName+vfNameLen])
	if err != nil {
		return Vfo{}, codecErr("vfo", "name", err)
	}
	v.Name = name

	return v, nil
}

func decodeVfoFreq(buf []byte, bank VfoBank) float64 {
	if allBytes(buf, 0x00) || allBytes(buf, 0xFF) {
		return defaultVfoFreq[bank]
	}
	return codec.DecodeFreq(buf)
}

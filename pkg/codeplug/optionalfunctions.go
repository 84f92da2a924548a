package codeplug

// OptionalFunctionsSize is the fixed byte length of the optional
// functions settings block.
const OptionalFunctionsSize = 64

// WorkMode selects whether a VFO side operates from a stored channel or
// free-tunes in VFO mode.
type WorkMode int

const (
	WorkModeVFO WorkMode = iota
	WorkModeChannel
)

// OptionalFunctions is the decoded form of the 64-byte optional functions
// block: a dense packing of small enumerations and integers, each
// occupying the low nibble of its own byte unless noted otherwise.
type OptionalFunctions struct {
	SquelchLevel       int
	VoxLevel           int
	VoxDelay           int
	TimeoutTimer       int
	TotRekeyDelay      int
	TotRekeyTimes      int
	BeepEnabled        bool
	RogerBeep          bool
	KeyLock            bool
	LedIndicator       int
	BatterySaveEnabled bool
	ScanMode           int
	ScanResumeMode     int
	ChannelDisplayMode int
	Language           int
	PowerOnDisplay     int
	BacklightTimer     int
	BacklightLevel     int
	Sidekey1Short      int
	Sidekey1Long       int
	Sidekey2Short      int
	Sidekey2Long       int
	AutoKeyLockDelay   int
	DualWatch          bool
	PriorityScan       bool
	WorkModeA          WorkMode
	WorkModeB          WorkMode
	MicGain            int
	ToneBurstFreq      int
	StunAllowed        bool
	KillAllowed        bool
	SmsEnabled         bool
	CallAlertDuration  int
	AutoPowerOffMin    int
	DisplayContrast    int
	KeypadBeepVolume   int
	ChFreqStepDefault  int
	TxInhibitOnBusy    bool
	ReverseBurst       bool
	Companding         bool
	KeepCallTime       int // 0..31, bits 0-4 of byte 50
}

const (
	ofOffSquelch      = 0
	ofOffVox          = 1
	ofOffVoxDelay     = 2
	ofOffTimeout      = 3
	ofOffTotDelay     = 4
	ofOffTotTimes     = 5
	ofOffBeep         = 6
	ofOffRoger        = 7
	ofOffKeyLock      = 8
	ofOffLed          = 9
	ofOffBattSave     = 10
	ofOffScanMode     = 11
	ofOffScanResume   = 12
	ofOffChDisplay    = 13
	ofOffLanguage     = 14
	ofOffPowerOnDisp  = 15
	ofOffBLTimer      = 16
	ofOffBLLevel      = 17
	ofOffSK1Short     = 18
	ofOffSK1Long      = 19
	ofOffSK2Short     = 20
	ofOffSK2Long      = 21
	ofOffAutoLockDely = 23
	ofOffDualWatch    = 24
	ofOffPriorityScan = 25
	ofOffWorkMode     = 26
	ofOffMicGain      = 27
	ofOffToneBurst    = 28
	ofOffStun         = 29
	ofOffKill         = 30
	ofOffSms          = 31
	ofOffAlertDur     = 32
	ofOffAutoOff      = 33
	ofOffContrast     = 34
	ofOffKeypadVol    = 35
	ofOffFreqStep     = 36
	ofOffTxInhibit    = 37
	ofOffRevBurst     = 38
	ofOffCompanding   = 39
	ofOffKeepCallTime = 50
)

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// EncodeOptionalFunctions renders f as an OptionalFunctionsSize-byte
// block.
func EncodeOptionalFunctions(f OptionalFunctions) []byte {
	buf := make([]byte, OptionalFunctionsSize)
	fillBytes(buf, 0xFF)

	buf[ofOffSquelch] = byte(f.SquelchLevel)
	buf[ofOffVox] = byte(f.VoxLevel)
	buf[ofOffVoxDelay] = byte(f.VoxDelay)
	buf[ofOffTimeout] = byte(f.TimeoutTimer)
	buf[ofOffTotDelay] = byte(f.TotRekeyDelay)
	buf[ofOffTotTimes] = byte(f.TotRekeyTimes)
	buf[ofOffBeep] = boolByte(f.BeepEnabled)
	buf[ofOffRoger] = boolByte(f.RogerBeep)
	buf[ofOffKeyLock] = boolByte(f.KeyLock)
	buf[ofOffLed] = byte(f.LedIndicator)
	buf[ofOffBattSave] = boolByte(f.BatterySaveEnabled)
	buf[ofOffScanMode] = byte(f.ScanMode)
	buf[ofOffScanResume] = byte(f.ScanResumeMode)
	buf[ofOffChDisplay] = byte(f.ChannelDisplayMode)
	buf[ofOffLanguage] = byte(f.Language)
	buf[ofOffPowerOnDisp] = byte(f.PowerOnDisplay)
	buf[ofOffBLTimer] = byte(f.BacklightTimer)
	buf[ofOffBLLevel] = byte(f.BacklightLevel)
	buf[ofOffSK1Short] = byte(f.Sidekey1Short)
	buf[ofOffSK1Long] = byte(f.Sidekey1Long)
	buf[ofOffSK2Short] = byte(f.Sidekey2Short)
	buf[ofOffSK2Long] = byte(f.Sidekey2Long)
	buf[ofOffAutoLockDely] = byte(f.AutoKeyLockDelay)
	buf[ofOffDualWatch] = boolByte(f.DualWatch)
	buf[ofOffPriorityScan] = boolByte(f.PriorityScan)
	buf[ofOffWorkMode] = byte(f.WorkModeA&0x0F) | byte(f.WorkModeB&0x0F)<<4
	buf[ofOffMicGain] = byte(f.MicGain)
	buf[ofOffToneBurst] = byte(f.ToneBurstFreq)
	buf[ofOffStun] = boolByte(f.StunAllowed)
	buf[ofOffKill] = boolByte(f.KillAllowed)
	buf[ofOffSms] = boolByte(f.SmsEnabled)
	buf[ofOffAlertDur] = byte(f.CallAlertDuration)
	buf[ofOffAutoOff] = byte(f.AutoPowerOffMin)
	buf[ofOffContrast] = byte(f.DisplayContrast)
	buf[ofOffKeypadVol] = byte(f.KeypadBeepVolume)
	buf[ofOffFreqStep] = byte(f.ChFreqStepDefault)
	buf[ofOffTxInhibit] = boolByte(f.TxInhibitOnBusy)
	buf[ofOffRevBurst] = boolByte(f.ReverseBurst)
	buf[ofOffCompanding] = boolByte(f.Companding)
	buf[ofOffKeepCallTime] = byte(f.KeepCallTime) & 0x1F

	return buf
}

// DecodeOptionalFunctions parses an OptionalFunctionsSize-byte block.
func DecodeOptionalFunctions(buf []byte) (OptionalFunctions, error) {
	if len(buf) != OptionalFunctionsSize {
		return OptionalFunctions{}, codecErr("optionalFunctions", "", errWrongSize(OptionalFunctionsSize, len(buf)))
	}

	return OptionalFunctions{
		SquelchLevel:       int(buf[ofOffSquelch]),
		VoxLevel:           int(buf[ofOffVox]),
		VoxDelay:           int(buf[ofOffVoxDelay]),
		TimeoutTimer:       int(buf[ofOffTimeout]),
		TotRekeyDelay:      int(buf[ofOffTotDelay]),
		TotRekeyTimes:      int(buf[ofOffTotTimes]),
		BeepEnabled:        buf[ofOffBeep] != 0,
		RogerBeep:          buf[ofOffRoger] != 0,
		KeyLock:            buf[ofOffKeyLock] != 0,
		LedIndicator:       int(buf[ofOffLed]),
		BatterySaveEnabled: buf[ofOffBattSave] != 0,
		ScanMode:           int(buf[ofOffScanMode]),
		ScanResumeMode:     int(buf[ofOffScanResume]),
		ChannelDisplayMode: int(buf[ofOffChDisplay]),
		Language:           int(buf[ofOffLanguage]),
		PowerOnDisplay:     int(buf[ofOffPowerOnDisp]),
		BacklightTimer:     int(buf[ofOffBLTimer]),
		BacklightLevel:     int(buf[ofOffBLLevel]),
		Sidekey1Short:      int(buf[ofOffSK1Short]),
		Sidekey1Long:       int(buf[ofOffSK1Long]),
		Sidekey2Short:      int(buf[ofOffSK2Short]),
		Sidekey2Long:       int(buf[ofOffSK2Long]),
		AutoKeyLockDelay:   int(buf[ofOffAutoLockDely]),
		DualWatch:          buf[ofOffDualWatch] != 0,
		PriorityScan:       buf[ofOffPriorityScan] != 0,
		WorkModeA:          WorkMode(buf[ofOffWorkMode] & 0x0F),
		WorkModeB:          WorkMode((buf[ofOffWorkMode] >> 4) & 0x0F),
		MicGain:            int(buf[ofOffMicGain]),
		ToneBurstFreq:      int(buf[ofOffToneBurst]),
		StunAllowed:        buf[ofOffStun] != 0,
		KillAllowed:        buf[ofOffKill] != 0,
		SmsEnabled:         buf[ofOffSms] != 0,
		CallAlertDuration:  int(buf[ofOffAlertDur]),
		AutoPowerOffMin:    int(buf[ofOffAutoOff]),
		DisplayContrast:    int(buf[ofOffContrast]),
		KeypadBeepVolume:   int(buf[ofOffKeypadVol]),
		ChFreqStepDefault:  int(buf[ofOffFreqStep]),
		TxInhibitOnBusy:    buf[ofOffTxInhibit] != 0,
		ReverseBurst:       buf[ofOffRevBurst] != 0,
		Companding:         buf[ofOffCompanding] != 0,
		KeepCallTime:       int(buf[ofOffKeepCallTime] & 0x1F),
	}, nil
}

package document

import "github.com/jc8810/rt5dctl/pkg/codeplug"

// Settings is the document form of the optional functions block: the
// radio's flat record of button assignments, timers, and small
// enumerations.
type Settings struct {
	SquelchLevel       int    `json:"squelchLevel,omitempty"`
	VoxLevel           int    `json:"voxLevel,omitempty"`
	VoxDelay           int    `json:"voxDelay,omitempty"`
	TimeoutTimer       int    `json:"timeoutTimer,omitempty"`
	TotRekeyDelay      int    `json:"totRekeyDelay,omitempty"`
	TotRekeyTimes      int    `json:"totRekeyTimes,omitempty"`
	BeepEnabled        bool   `json:"beepEnabled,omitempty"`
	RogerBeep          bool   `json:"rogerBeep,omitempty"`
	KeyLock            bool   `json:"keyLock,omitempty"`
	LedIndicator       int    `json:"ledIndicator,omitempty"`
	BatterySaveEnabled bool   `json:"batterySaveEnabled,omitempty"`
	ScanMode           int    `json:"scanMode,omitempty"`
	ScanResumeMode     int    `json:"scanResumeMode,omitempty"`
	ChannelDisplayMode int    `json:"channelDisplayMode,omitempty"`
	Language           int    `json:"language,omitempty"`
	PowerOnDisplay     int    `json:"powerOnDisplay,omitempty"`
	BacklightTimer     int    `json:"backlightTimer,omitempty"`
	BacklightLevel     int    `json:"backlightLevel,omitempty"`
	Sidekey1Short      int    `json:"sidekey1Short,omitempty"`
	Sidekey1Long       int    `json:"sidekey1Long,omitempty"`
	Sidekey2Short      int    `json:"sidekey2Short,omitempty"`
	Sidekey2Long       int    `json:"sidekey2Long,omitempty"`
	AutoKeyLockDelay   int    `json:"autoKeyLockDelay,omitempty"`
	DualWatch          bool   `json:"dualWatch,omitempty"`
	PriorityScan       bool   `json:"priorityScan,omitempty"`
	WorkModeA          string `json:"workModeA,omitempty"`
	WorkModeB          string `json:"workModeB,omitempty"`
	MicGain            int    `json:"micGain,omitempty"`
	ToneBurstFreq      int    `json:"toneBurstFreq,omitempty"`
	StunAllowed        bool   `json:"stunAllowed,omitempty"`
	KillAllowed        bool   `json:"killAllowed,omitempty"`
	SmsEnabled         bool   `json:"smsEnabled,omitempty"`
	CallAlertDuration  int    `json:"callAlertDuration,omitempty"`
	AutoPowerOffMin    int    `json:"autoPowerOffMin,omitempty"`
	DisplayContrast    int    `json:"displayContrast,omitempty"`
	KeypadBeepVolume   int    `json:"keypadBeepVolume,omitempty"`
	ChFreqStepDefault  int    `json:"chFreqStepDefault,omitempty"`
	TxInhibitOnBusy    bool   `json:"txInhibitOnBusy,omitempty"`
	ReverseBurst       bool   `json:"reverseBurst,omitempty"`
	Companding         bool   `json:"companding,omitempty"`
	KeepCallTime       int    `json:"keepCallTime,omitempty"`
}

func settingsFromPayload(buf []byte) (*Settings, error) {
	f, err := codeplug.DecodeOptionalFunctions(buf)
	if err != nil {
		return nil, err
	}
	return &Settings{
		SquelchLevel:       f.SquelchLevel,
		VoxLevel:           f.VoxLevel,
		VoxDelay:           f.VoxDelay,
		TimeoutTimer:       f.TimeoutTimer,
		TotRekeyDelay:      f.TotRekeyDelay,
		TotRekeyTimes:      f.TotRekeyTimes,
		BeepEnabled:        f.BeepEnabled,
		RogerBeep:          f.RogerBeep,
		KeyLock:            f.KeyLock,
		LedIndicator:       f.LedIndicator,
		BatterySaveEnabled: f.BatterySaveEnabled,
		ScanMode:           f.ScanMode,
		ScanResumeMode:     f.ScanResumeMode,
		ChannelDisplayMode: f.ChannelDisplayMode,
		Language:           f.Language,
		PowerOnDisplay:     f.PowerOnDisplay,
		BacklightTimer:     f.BacklightTimer,
		BacklightLevel:     f.BacklightLevel,
		Sidekey1Short:      f.Sidekey1Short,
		Sidekey1Long:       f.Sidekey1Long,
		Sidekey2Short:      f.Sidekey2Short,
		Sidekey2Long:       f.Sidekey2Long,
		AutoKeyLockDelay:   f.AutoKeyLockDelay,
		DualWatch:          f.DualWatch,
		PriorityScan:       f.PriorityScan,
		WorkModeA:          workModeToString(f.WorkModeA),
		WorkModeB:          workModeToString(f.WorkModeB),
		MicGain:            f.MicGain,
		ToneBurstFreq:      f.ToneBurstFreq,
		StunAllowed:        f.StunAllowed,
		KillAllowed:        f.KillAllowed,
		SmsEnabled:         f.SmsEnabled,
		CallAlertDuration:  f.CallAlertDuration,
		AutoPowerOffMin:    f.AutoPowerOffMin,
		DisplayContrast:    f.DisplayContrast,
		KeypadBeepVolume:   f.KeypadBeepVolume,
		ChFreqStepDefault:  f.ChFreqStepDefault,
		TxInhibitOnBusy:    f.TxInhibitOnBusy,
		ReverseBurst:       f.ReverseBurst,
		Companding:         f.Companding,
		KeepCallTime:       f.KeepCallTime,
	}, nil
}

func settingsToPayload(s *Settings) ([]byte, error) {
	if s == nil {
		return codeplug.EncodeOptionalFunctions(codeplug.OptionalFunctions{}), nil
	}
	return codeplug.EncodeOptionalFunctions(codeplug.OptionalFunctions{
		SquelchLevel:       s.SquelchLevel,
		VoxLevel:           s.VoxLevel,
		VoxDelay:           s.VoxDelay,
		TimeoutTimer:       s.TimeoutTimer,
		TotRekeyDelay:      s.TotRekeyDelay,
		TotRekeyTimes:      s.TotRekeyTimes,
		BeepEnabled:        s.BeepEnabled,
		RogerBeep:          s.RogerBeep,
		KeyLock:            s.KeyLock,
		LedIndicator:       s.LedIndicator,
		BatterySaveEnabled: s.BatterySaveEnabled,
		ScanMode:           s.ScanMode,
		ScanResumeMode:     s.ScanResumeMode,
		ChannelDisplayMode: s.ChannelDisplayMode,
		Language:           s.Language,
		PowerOnDisplay:     s.PowerOnDisplay,
		BacklightTimer:     s.BacklightTimer,
		BacklightLevel:     s.BacklightLevel,
		Sidekey1Short:      s.Sidekey1Short,
		Sidekey1Long:       s.Sidekey1Long,
		Sidekey2Short:      s.Sidekey2Short,
		Sidekey2Long:       s.Sidekey2Long,
		AutoKeyLockDelay:   s.AutoKeyLockDelay,
		DualWatch:          s.DualWatch,
		PriorityScan:       s.PriorityScan,
		WorkModeA:          workModeFromString(s.WorkModeA),
		WorkModeB:          workModeFromString(s.WorkModeB),
		MicGain:            s.MicGain,
		ToneBurstFreq:      s.ToneBurstFreq,
		StunAllowed:        s.StunAllowed,
		KillAllowed:        s.KillAllowed,
		SmsEnabled:         s.SmsEnabled,
		CallAlertDuration:  s.CallAlertDuration,
		AutoPowerOffMin:    s.AutoPowerOffMin,
		DisplayContrast:    s.DisplayContrast,
		KeypadBeepVolume:   s.KeypadBeepVolume,
		ChFreqStepDefault:  s.ChFreqStepDefault,
		TxInhibitOnBusy:    s.TxInhibitOnBusy,
		ReverseBurst:       s.ReverseBurst,
		Companding:         s.Companding,
		KeepCallTime:       s.KeepCallTime,
	}), nil
}

package document

import "github.com/jc8810/rt5dctl/pkg/codeplug"

// Every enum conversion here is deliberately lenient on the way in: an
// unrecognized symbolic name falls back to the type's documented default
// (its zero value) rather than failing the load, so a hand-edited or
// older document stays loadable.

func pttIDToString(v codeplug.PttID) string {
	switch v {
	case codeplug.PttIDBot:
		return "BOT"
	case codeplug.PttIDEot:
		return "EOT"
	case codeplug.PttIDBoth:
		return "BOTH"
	default:
		return "OFF"
	}
}

func pttIDFromString(s string) codeplug.PttID {
	switch s {
	case "BOT":
		return codeplug.PttIDBot
	case "EOT":
		return codeplug.PttIDEot
	case "BOTH":
		return codeplug.PttIDBoth
	default:
		return codeplug.PttIDOff
	}
}

func algorithmToString(v codeplug.Algorithm) string {
	switch v {
	case codeplug.Aes128:
		return "AES128"
	case codeplug.Aes256:
		return "AES256"
	default:
		return "ARC4"
	}
}

func algorithmFromString(s string) codeplug.Algorithm {
	switch s {
	case "AES128":
		return codeplug.Aes128
	case "AES256":
		return codeplug.Aes256
	default:
		return codeplug.Arc4
	}
}

func callTypeToString(v codeplug.CallType) string {
	switch v {
	case codeplug.CallPrivate:
		return "PRIVATE"
	case codeplug.CallAllCall:
		return "ALL_CALL"
	default:
		return "GROUP"
	}
}

func callTypeFromString(s string) codeplug.CallType {
	switch s {
	case "PRIVATE":
		return codeplug.CallPrivate
	case "ALL_CALL":
		return codeplug.CallAllCall
	default:
		return codeplug.CallGroup
	}
}

func channelTypeToString(v codeplug.ChannelType) string {
	switch v {
	case codeplug.ChannelDmrTier1:
		return "DMR_TIER_I"
	case codeplug.ChannelDmrTier2:
		return "DMR_TIER_II"
	default:
		return "ANALOG"
	}
}

func channelTypeFromString(s string) codeplug.ChannelType {
	switch s {
	case "DMR_TIER_I":
		return codeplug.ChannelDmrTier1
	case "DMR_TIER_II":
		return codeplug.ChannelDmrTier2
	default:
		return codeplug.ChannelAnalog
	}
}

func powerToString(v codeplug.ChannelPower) string {
	switch v {
	case codeplug.PowerMid:
		return "MID"
	case codeplug.PowerHigh:
		return "HIGH"
	default:
		return "LOW"
	}
}

func powerFromString(s string) codeplug.ChannelPower {
	switch s {
	case "MID":
		return codeplug.PowerMid
	case "HIGH":
		return codeplug.PowerHigh
	default:
		return codeplug.PowerLow
	}
}

func workModeToString(v codeplug.WorkMode) string {
	if v == codeplug.WorkModeChannel {
		return "CHANNEL"
	}
	return "VFO"
}

func workModeFromString(s string) codeplug.WorkMode {
	if s == "CHANNEL" {
		return codeplug.WorkModeChannel
	}
	return codeplug.WorkModeVFO
}

var stepNames = [8]string{"2.5", "5", "6.25", "10", "12.5", "20", "25", "50"}

func stepToString(v codeplug.Step) string {
	if int(v) < 0 || int(v) >= len(stepNames) {
		return stepNames[0]
	}
	return stepNames[v]
}

func stepFromString(s string) codeplug.Step {
	for i, name := range stepNames {
		if name == s {
			return codeplug.Step(i)
		}
	}
	return codeplug.Step2_5
}

package codeplug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalFunctionsRoundTrip(t *testing.T) {
	f := OptionalFunctions{
		SquelchLevel: 5,
		VoxLevel:     3,
		BeepEnabled:  true,
		KeyLock:      true,
		WorkModeA:    WorkModeChannel,
		WorkModeB:    WorkModeVFO,
		KeepCallTime: 20,
	}
	buf := EncodeOptionalFunctions(f)
	require.Len(t, buf, OptionalFunctionsSize)

	got, err := DecodeOptionalFunctions(buf)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestOptionalFunctionsWorkModePacking(t *testing.T) {
	f := OptionalFunctions{WorkModeA: WorkModeChannel, WorkModeB: WorkModeChannel}
	buf := EncodeOptionalFunctions(f)
	assert.Equal(t, byte(0x11), buf[26])
}

func TestOptionalFunctionsKeepCallTimeMasksToFiveBits(t *testing.T) {
	f := OptionalFunctions{KeepCallTime: 31}
	buf := EncodeOptionalFunctions(f)
	assert.Equal(t, byte(0x1F), buf[50])
}

package codeplug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jc8810/rt5dctl/pkg/codec"
)

func TestEmptyChannelSentinels(t *testing.T) {
	allFF := make([]byte, ChannelSize)
	fillBytes(allFF, 0xFF)
	assert.True(t, IsEmptyChannel(allFF))

	allZero := make([]byte, ChannelSize)
	assert.True(t, IsEmptyChannel(allZero))
}

func TestDecodeEmptyChannelReturnsNil(t *testing.T) {
	buf := make([]byte, ChannelSize)
	fillBytes(buf, 0xFF)
	ch, err := DecodeChannel(buf)
	require.NoError(t, err)
	assert.Nil(t, ch)
}

func TestChannelTierIIRoundTrip(t *testing.T) {
	ch := &Channel{
		Type:      ChannelDmrTier2,
		RxFreqMHz: 441.0,
		TxFreqMHz: 446.0,
		RxTone:    codec.Off(),
		TxTone:    codec.Off(),
		ColorCode: 7,
		TimeSlot:  1,
		Name:      "Repeater",
	}
	buf, err := EncodeChannel(ch)
	require.NoError(t, err)
	require.Len(t, buf, ChannelSize)

	assert.Equal(t, byte(0), buf[14]&0x0F)
	assert.Equal(t, byte(1), buf[15]&0x0F)

	got, err := DecodeChannel(buf)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ChannelDmrTier2, got.Type)
	assert.Equal(t, 7, got.ColorCode)
	assert.Equal(t, 1, got.TimeSlot)
	assert.InDelta(t, 441.0, got.RxFreqMHz, 1e-9)
	assert.InDelta(t, 446.0, got.TxFreqMHz, 1e-9)
	assert.Equal(t, "Repeater", got.Name)
}

func TestChannelAnalogWithFHSSRoundTrip(t *testing.T) {
	ch := &Channel{
		Type:      ChannelAnalog,
		RxFreqMHz: 145.5,
		TxFreqMHz: 145.5,
		RxTone:    codec.Ctcss(88.5),
		TxTone:    codec.Off(),
		FHSSCode:  "A1B2C3",
		Name:      "Simplex",
	}
	buf, err := EncodeChannel(ch)
	require.NoError(t, err)

	got, err := DecodeChannel(buf)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ChannelAnalog, got.Type)
	assert.Equal(t, "A1B2C3", got.FHSSCode)
	assert.Equal(t, codec.SubAudioCtcss, got.RxTone.Kind)
}

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubAudioOffRoundTrip(t *testing.T) {
	buf, err := EncodeSubAudio(Off())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00}, buf)

	got, err := DecodeSubAudio(buf)
	require.NoError(t, err)
	assert.Equal(t, SubAudioOff, got.Kind)
}

func TestCtcss885(t *testing.T) {
	buf, err := EncodeSubAudio(Ctcss(88.5))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x75, 0x03}, buf)

	got, err := DecodeSubAudio(buf)
	require.NoError(t, err)
	assert.Equal(t, SubAudioCtcss, got.Kind)
	assert.InDelta(t, 88.5, got.CtcssHz(), 1e-9)
}

func TestDcsD023Inverted(t *testing.T) {
	buf, err := EncodeSubAudio(Dcs("023", true))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x6A, 0x00}, buf)

	got, err := DecodeSubAudio(buf)
	require.NoError(t, err)
	assert.Equal(t, SubAudioDcs, got.Kind)
	assert.Equal(t, "023", got.DcsCode)
	assert.True(t, got.DcsInverted)
}

func TestDcsTableRoundTripsAllEntries(t *testing.T) {
	for _, inverted := range []bool{false, true} {
		for _, code := range dcsCodes {
			buf, err := EncodeSubAudio(Dcs(code, inverted))
			require.NoError(t, err)
			got, err := DecodeSubAudio(buf)
			require.NoError(t, err)
			assert.Equal(t, code, got.DcsCode)
			assert.Equal(t, inverted, got.DcsInverted)
		}
	}
}

func TestEncodeUnknownDcsCodeFails(t *testing.T) {
	_, err := EncodeSubAudio(Dcs("999", false))
	assert.Error(t, err)
}

func TestSubAudioStringForm(t *testing.T) {
	assert.Equal(t, "OFF", Off().String())
	assert.Equal(t, "CTCSS 88.5", Ctcss(88.5).String())
	assert.Equal(t, "D023I", Dcs("023", true).String())
	assert.Equal(t, "D023N", Dcs("023", false).String())
}

func TestParseSubAudioRoundTrip(t *testing.T) {
	for _, s := range []string{"OFF", "CTCSS 88.5", "D023N", "D023I"} {
		parsed, err := ParseSubAudio(s)
		require.NoError(t, err)
		assert.Equal(t, s, parsed.String())
	}
}

func TestParseSubAudioRejectsGarbage(t *testing.T) {
	_, err := ParseSubAudio("NOT-A-TONE")
	assert.Error(t, err)
}

package codeplug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDtmfRoundTrip(t *testing.T) {
	d := Dtmf{
		CurrentID:  "123*#",
		PttID:      PttIDBoth,
		DurationMs: 150,
		IntervalMs: 250,
		CodeGroups: []string{"12345", "6789AB"},
	}
	buf, err := EncodeDtmf(d)
	require.NoError(t, err)
	require.Len(t, buf, DtmfSize)

	got, err := DecodeDtmf(buf)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestDtmfEmptyRoundTrip(t *testing.T) {
	d := Dtmf{PttID: PttIDOff, DurationMs: 50, IntervalMs: 50}
	buf, err := EncodeDtmf(d)
	require.NoError(t, err)

	got, err := DecodeDtmf(buf)
	require.NoError(t, err)
	assert.Equal(t, "", got.CurrentID)
	assert.Empty(t, got.CodeGroups)
}

func TestDtmfInvalidDurationFails(t *testing.T) {
	_, err := EncodeDtmf(Dtmf{DurationMs: 999})
	assert.Error(t, err)
}

func TestDtmfTooManyCodeGroupsFails(t *testing.T) {
	groups := make([]string, DtmfMaxCodeGroups+1)
	for i := range groups {
		groups[i] = "1"
	}
	_, err := EncodeDtmf(Dtmf{DurationMs: 50, IntervalMs: 50, CodeGroups: groups})
	assert.Error(t, err)
}

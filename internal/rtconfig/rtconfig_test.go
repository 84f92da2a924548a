package rtconfig

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := Settings{Port: "/dev/ttyUSB0", Baud: 57600}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{Port: "", Baud: defaultBaud}, got)
}

func TestPathCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := Path()
	require.NoError(t, err)

	_, err = os.Stat(path[:len(path)-len("/"+defaultFile)])
	assert.NoError(t, err)
}

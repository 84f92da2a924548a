// Package rtconfig persists small CLI conveniences — the last serial port
// and baud rate used — across invocations of rt5dctl. It carries no wire
// or document semantics. The CLI writes the port name here on connect but
// does not read it back: the port is always given on the command line.
package rtconfig

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"
)

const (
	sectionName  = "radio"
	portKey      = "port"
	baudKey      = "baud"
	defaultFile  = "rt5dctl.ini"
	defaultBaud  = 115200
)

// Settings holds the last-used connection parameters.
type Settings struct {
	Port string
	Baud int
}

// Path returns the settings file location, creating its parent directory
// if necessary.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "rt5dctl")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultFile), nil
}

// Load reads the settings file, returning zero-value defaults (empty port,
// 115200 baud) if it does not exist yet.
func Load() (Settings, error) {
	path, err := Path()
	if err != nil {
		return Settings{}, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{Baud: defaultBaud}, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return Settings{}, err
	}
	sec := cfg.Section(sectionName)
	baud := sec.Key(baudKey).MustInt(defaultBaud)
	return Settings{
		Port: sec.Key(portKey).String(),
		Baud: baud,
	}, nil
}

// Save writes s to the settings file, overwriting whatever was there.
func Save(s Settings) error {
	path, err := Path()
	if err != nil {
		return err
	}

	cfg := ini.Empty()
	sec, err := cfg.NewSection(sectionName)
	if err != nil {
		return err
	}
	if _, err := sec.NewKey(portKey, s.Port); err != nil {
		return err
	}
	baud := s.Baud
	if baud == 0 {
		baud = defaultBaud
	}
	if _, err := sec.NewKey(baudKey, strconv.Itoa(baud)); err != nil {
		return err
	}
	return cfg.SaveTo(path)
}

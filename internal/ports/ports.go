// Package ports enumerates candidate USB-serial devices the radio might be
// attached on, for the CLI's "ports" command.
package ports

import (
	"sort"

	"go.bug.st/serial/enumerator"
)

// Info describes one discovered serial port.
type Info struct {
	Name         string
	IsUSB        bool
	VID          string
	PID          string
	SerialNumber string
}

// List returns every serial port the OS reports, USB ones first, each
// group sorted by name. go.bug.st/serial/enumerator covers the platform
// differences itself (including the Windows registry walk), so this
// package never touches OS-specific APIs directly.
func List() ([]Info, error) {
	raw, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	infos := make([]Info, 0, len(raw))
	for _, p := range raw {
		infos = append(infos, Info{
			Name:         p.Name,
			IsUSB:        p.IsUSB,
			VID:          p.VID,
			PID:          p.PID,
			SerialNumber: p.SerialNumber,
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].IsUSB != infos[j].IsUSB {
			return infos[i].IsUSB
		}
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

package output

import (
	"errors"
	"fmt"
	"strings"

	"quadlet-generator/internal/common"
)

// ErrUnknownMode is returned by ParseMode for an unrecognised name.
var ErrUnknownMode = errors.New("unknown output mode")

// Mode selects the serialization target.
type Mode int

const (
	// ModeConfig renders a Quadlet unit file.
	ModeConfig Mode = iota
	// ModeCommand renders a podman command line.
	ModeCommand
)

// String returns the CLI name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeConfig:
		return "quadlet"
	case ModeCommand:
		return "podman"
	default:
		return common.UnknownStr
	}
}

// ParseMode resolves a mode name. Both the CLI names and the aliases
// "config", "command" and "podman-run" are accepted.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "quadlet", "config":
		return ModeConfig, nil
	case "podman", "podman-run", "command":
		return ModeCommand, nil
	default:
		return 0, fmt.Errorf("%w %q (expected quadlet or podman)", ErrUnknownMode, name)
	}
}

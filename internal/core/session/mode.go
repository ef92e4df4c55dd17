package session

import (
	"errors"
	"fmt"
)

// ErrInvalidMode indicates a driver count other than 1, 2 or 4.
var ErrInvalidMode = errors.New("invalid mode")

// Mode is the number of drivers displayed at once.
type Mode int

const (
	ModeOne  Mode = 1
	ModeTwo  Mode = 2
	ModeFour Mode = 4
)

// Modes lists the modes in header-cycle order.
var Modes = []Mode{ModeOne, ModeTwo, ModeFour}

// ParseMode validates a driver count.
func ParseMode(drivers int) (Mode, error) {
	for _, mode := range Modes {
		if int(mode) == drivers {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: %d drivers", ErrInvalidMode, drivers)
}

// Valid reports whether the mode is one of Modes.
func (mode Mode) Valid() bool {
	_, err := ParseMode(int(mode))
	return err == nil
}

// Next returns the following mode in the cycle 1, 2, 4, 1.
func (mode Mode) Next() Mode {
	for index, candidate := range Modes {
		if candidate == mode {
			return Modes[(index+1)%len(Modes)]
		}
	}
	return ModeOne
}

// Drivers returns how many slots the mode exposes.
func (mode Mode) Drivers() int {
	return int(mode)
}

// Exposes reports whether slot is addressable in this mode.
func (mode Mode) Exposes(slot int) bool {
	return slot >= 0 && slot < mode.Drivers()
}

// String returns the header label for the mode.
func (mode Mode) String() string {
	if mode == ModeOne {
		return "1 Driver Mode"
	}
	return fmt.Sprintf("%d Driver Mode", int(mode))
}

// RequiredMode returns the smallest mode that exposes slot.
func RequiredMode(slot int) Mode {
	switch {
	case slot <= 0:
		return ModeOne
	case slot == 1:
		return ModeTwo
	default:
		return ModeFour
	}
}

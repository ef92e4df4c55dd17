package animation

import "time"

// DefaultConfig returns the flash timing used for a closed lap.
func DefaultConfig() Config {
	return Config{
		Flashes: 3,
		OnDuration: Range{
			Min: 160 * time.Millisecond,
			Max: 180 * time.Millisecond,
		},
		OffDuration: Range{
			Min: 90 * time.Millisecond,
			Max: 110 * time.Millisecond,
		},
	}
}

package flash

import "strconv"

// Config controls the registered flash simulation.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Order  Order

	// Rows, when set, seeds the grid instead of random energies. Width and
	// Height are then taken from Rows.
	Rows [][]int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 10, Height: 10, Seed: 11, Order: OrderQueue}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["order"]; ok {
		if parsed, err := ParseOrder(v); err == nil {
			c.Order = parsed
		}
	}
	return c
}

package app

import "flag"

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim   string
	Input string
	Order string
	Scale int
	TPS   int
	Seed  int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "flash", Order: "queue", Scale: 24, TPS: 10, Seed: 11}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Input, "input", c.Input, "digit grid file to load instead of a random grid")
	fs.StringVar(&c.Order, "order", c.Order, "cascade worklist order (queue or stack)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random grids and resets")
}

// SimConfig converts the flags into the string map understood by sim factories.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{"order": c.Order}
}

package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

type runConfig struct {
	ConfigPath string
	Ticks      int
	MaxTicks   int
	Order      string
	Watch      bool
	TPS        int
	Seed       int64
	Width      int
	Height     int
	Workers    int
	Describe   bool
	Inputs     []string
}

func defaultRunConfig() runConfig {
	return runConfig{
		Ticks:    100,
		MaxTicks: 1000,
		Order:    "queue",
		TPS:      10,
		Seed:     11,
		Width:    10,
		Height:   10,
		Workers:  runtime.NumCPU(),
	}
}

func (c *runConfig) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "TOML file with run settings; flags take precedence")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "ticks for the fixed-length flash count")
	fs.IntVar(&c.MaxTicks, "max-ticks", c.MaxTicks, "upper bound when searching for the synchronized tick")
	fs.StringVar(&c.Order, "order", c.Order, "cascade worklist order (queue or stack)")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "animate the grid in the terminal instead of printing results (single input only)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second in watch mode")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random grid used when no input is given")
	fs.IntVar(&c.Width, "width", c.Width, "random grid width")
	fs.IntVar(&c.Height, "height", c.Height, "random grid height")
	fs.IntVar(&c.Workers, "workers", c.Workers, "grids simulated concurrently")
	fs.BoolVar(&c.Describe, "describe", c.Describe, "print the simulation parameters and exit (single input only)")
}

type fileConfig struct {
	Ticks    int      `toml:"ticks"`
	MaxTicks int      `toml:"max_ticks"`
	Order    string   `toml:"order"`
	TPS      int      `toml:"tps"`
	Seed     int64    `toml:"seed"`
	Width    int      `toml:"width"`
	Height   int      `toml:"height"`
	Workers  int      `toml:"workers"`
	Inputs   []string `toml:"inputs"`
}

// applyFile overlays the keys present in the TOML file at path onto cfg.
func applyFile(cfg *runConfig, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown keys %v", undecoded)
	}

	if meta.IsDefined("ticks") {
		cfg.Ticks = raw.Ticks
	}
	if meta.IsDefined("max_ticks") {
		cfg.MaxTicks = raw.MaxTicks
	}
	if meta.IsDefined("order") {
		cfg.Order = strings.TrimSpace(raw.Order)
	}
	if meta.IsDefined("tps") {
		cfg.TPS = raw.TPS
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	if meta.IsDefined("width") {
		cfg.Width = raw.Width
	}
	if meta.IsDefined("height") {
		cfg.Height = raw.Height
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("inputs") {
		cfg.Inputs = normalizeInputs(raw.Inputs)
	}
	return nil
}

func (c *runConfig) validate() error {
	switch {
	case c.Ticks < 0:
		return fmt.Errorf("ticks must be >= 0, got %d", c.Ticks)
	case c.MaxTicks < 0:
		return fmt.Errorf("max-ticks must be >= 0, got %d", c.MaxTicks)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("random grid size must be positive, got %dx%d", c.Width, c.Height)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	case (c.Watch || c.Describe) && len(c.Inputs) > 1:
		return fmt.Errorf("-watch and -describe take a single input, got %d", len(c.Inputs))
	}
	return nil
}

func normalizeInputs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

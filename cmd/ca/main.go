//go:build ebiten

package main

import (
	"errors"
	"flag"

	"flashgrid/internal/app"
	"flashgrid/internal/core"
	"flashgrid/internal/input"
	"flashgrid/internal/logging"
	"flashgrid/internal/sims/flash"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.ConfigureRuntime("ca")

	sim, err := buildSim(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("build sim")
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("flashgrid: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(size.W*cfg.Scale, size.H*cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("run game")
	}
}

func buildSim(cfg *app.Config) (core.Sim, error) {
	if cfg.Input != "" && cfg.Sim == "flash" {
		rows, err := input.LoadDigits(cfg.Input)
		if err != nil {
			return nil, err
		}
		order, err := flash.ParseOrder(cfg.Order)
		if err != nil {
			return nil, err
		}
		fc := flash.DefaultConfig()
		fc.Rows = rows
		fc.Order = order
		s, err := flash.New(fc)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		return nil, err
	}
	return factory(cfg.SimConfig())
}

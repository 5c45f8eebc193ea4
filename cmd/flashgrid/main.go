package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"flashgrid/internal/core"
	"flashgrid/internal/input"
	"flashgrid/internal/logging"
	"flashgrid/internal/sims/flash"
	"flashgrid/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var newScreen = tcell.NewScreen

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := logging.ConfigureRuntime("flashgrid")
	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "flashgrid: %v\n", err)
		os.Exit(1)
	}
}

type job struct {
	name string
	rows [][]int
}

type outcome struct {
	name     string
	flashes  int
	syncTick int
	syncErr  error
}

func run(ctx context.Context, args []string, stdout io.Writer, logger zerolog.Logger) error {
	cfg := defaultRunConfig()
	fs := flag.NewFlagSet("flashgrid", flag.ContinueOnError)
	cfg.bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.ConfigPath != "" {
		if err := applyFile(&cfg, cfg.ConfigPath); err != nil {
			return err
		}
		// Flags win over the file.
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	if fs.NArg() > 0 {
		cfg.Inputs = normalizeInputs(fs.Args())
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	order, err := flash.ParseOrder(cfg.Order)
	if err != nil {
		return err
	}

	jobs, err := loadJobs(cfg)
	if err != nil {
		return err
	}

	switch {
	case cfg.Describe:
		sim, err := newSim(jobs[0], cfg, order, logger)
		if err != nil {
			return err
		}
		_, err = sim.Parameters().WriteTo(stdout)
		return err
	case cfg.Watch:
		return watch(ctx, jobs[0], cfg, order, logger)
	}

	engine := flash.NewEngine(flash.WithOrder(order), flash.WithLogger(logger))
	results, err := solveAll(ctx, jobs, cfg, engine, logger)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Fprintf(stdout, "%s: flashes after %d ticks: %d\n", res.name, cfg.Ticks, res.flashes)
		if res.syncErr != nil {
			fmt.Fprintf(stdout, "%s: not synchronized within %d ticks\n", res.name, cfg.MaxTicks)
			continue
		}
		fmt.Fprintf(stdout, "%s: synchronized at tick %d\n", res.name, res.syncTick)
	}
	return nil
}

func loadJobs(cfg runConfig) ([]job, error) {
	if len(cfg.Inputs) == 0 {
		name := fmt.Sprintf("random(%dx%d seed=%d)", cfg.Width, cfg.Height, cfg.Seed)
		return []job{{name: name, rows: core.NewRNG(cfg.Seed).Digits(cfg.Height, cfg.Width)}}, nil
	}
	jobs := make([]job, 0, len(cfg.Inputs))
	for _, path := range cfg.Inputs {
		rows, err := input.LoadDigits(path)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job{name: path, rows: rows})
	}
	return jobs, nil
}

// solveAll runs every job on its own grid, at most cfg.Workers at a time.
// Results keep the job order.
func solveAll(ctx context.Context, jobs []job, cfg runConfig, engine *flash.Engine, logger zerolog.Logger) ([]outcome, error) {
	results := make([]outcome, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := solve(j, cfg, engine)
			if err != nil {
				return err
			}
			logger.Info().Str("input", j.name).Int("flashes", res.flashes).Int("sync_tick", res.syncTick).Msg("solved")
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func solve(j job, cfg runConfig, engine *flash.Engine) (outcome, error) {
	grid, err := flash.FromRows(j.rows)
	if err != nil {
		return outcome{}, fmt.Errorf("%s: %w", j.name, err)
	}
	res := outcome{name: j.name}
	res.flashes, err = engine.RunFixedTicks(grid.Clone(), cfg.Ticks)
	if err != nil {
		return outcome{}, fmt.Errorf("%s: %w", j.name, err)
	}
	res.syncTick, err = engine.RunUntilSynchronized(grid, cfg.MaxTicks)
	switch {
	case errors.Is(err, flash.ErrNotSynchronized):
		res.syncErr = err
	case err != nil:
		return outcome{}, fmt.Errorf("%s: %w", j.name, err)
	}
	return res, nil
}

func newSim(j job, cfg runConfig, order flash.Order, logger zerolog.Logger) (*flash.Sim, error) {
	fc := flash.DefaultConfig()
	fc.Rows = j.rows
	fc.Seed = cfg.Seed
	fc.Order = order
	sim, err := flash.New(fc, flash.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", j.name, err)
	}
	return sim, nil
}

func watch(ctx context.Context, j job, cfg runConfig, order flash.Order, logger zerolog.Logger) error {
	sim, err := newSim(j, cfg, order, logger.Level(zerolog.WarnLevel))
	if err != nil {
		return err
	}
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	// Nothing is logged while the viewer owns the terminal.
	err = term.New(screen, sim, cfg.TPS, cfg.Seed).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	st := sim.Stats()
	ev := logger.Info().Str("input", j.name).Int("ticks", st.Ticks).Int("flashes", st.Flashes)
	if st.SyncTick > 0 {
		ev = ev.Int("sync_tick", st.SyncTick)
	}
	ev.Msg("watch finished")
	return nil
}

package flash

import (
	"iter"

	"flashgrid/internal/core"
)

// Stats accumulates per-run counters for a Sim.
type Stats struct {
	Ticks       int
	Flashes     int
	LastFlashes int
	// SyncTick is the first tick in which every cell flashed, or 0.
	SyncTick int
}

// Sim adapts a Grid and Engine to the core.Sim interface so that viewers can
// drive it one tick at a time.
type Sim struct {
	cfg     Config
	engine  *Engine
	grid    *Grid
	display []uint8
	stats   Stats
	err     error
}

// New builds a Sim from cfg. Engine options override cfg.Order.
func New(cfg Config, opts ...Option) (*Sim, error) {
	if len(cfg.Rows) > 0 {
		g, err := FromRows(cfg.Rows)
		if err != nil {
			return nil, err
		}
		cfg.Height, cfg.Width = g.Rows(), g.Cols()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	engineOpts := append([]Option{WithOrder(cfg.Order)}, opts...)
	s := &Sim{
		cfg:     cfg,
		engine:  NewEngine(engineOpts...),
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	s.Reset(0)
	if s.err != nil {
		return nil, s.err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "flash" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the display buffer. See DisplayFlash.
func (s *Sim) Cells() []uint8 { return s.display }

// Stats returns the counters accumulated since the last Reset.
func (s *Sim) Stats() Stats { return s.stats }

// Err returns the error that halted the simulation, if any.
func (s *Sim) Err() error { return s.err }

// Snapshot yields a read-only view of the current cells.
func (s *Sim) Snapshot() iter.Seq2[core.Point, Cell] { return s.grid.AllCells() }

// Reset rebuilds the grid. Configured rows are reloaded verbatim; otherwise
// energies are drawn from seed, or from the configured seed when seed is 0.
func (s *Sim) Reset(seed int64) {
	rows := s.cfg.Rows
	if len(rows) == 0 {
		effective := seed
		if effective == 0 {
			effective = s.cfg.Seed
		}
		rows = core.NewRNG(effective).Digits(s.cfg.Height, s.cfg.Width)
	}
	g, err := FromRows(rows)
	if err != nil {
		s.err = err
		return
	}
	s.grid = g
	s.stats = Stats{}
	s.err = nil
	s.rebuildDisplay()
}

// Step advances the grid by one tick. After an engine error the Sim stops
// advancing and reports the error through Err.
func (s *Sim) Step() {
	if s.err != nil || s.grid == nil {
		return
	}
	res, err := s.engine.Tick(s.grid)
	if err != nil {
		s.err = err
		return
	}
	s.stats.Ticks++
	s.stats.Flashes += res.Flashes
	s.stats.LastFlashes = res.Flashes
	if s.stats.SyncTick == 0 && res.Flashes == s.grid.Len() {
		s.stats.SyncTick = s.stats.Ticks
	}
	s.rebuildDisplay()
}

func (s *Sim) rebuildDisplay() {
	ticked := s.stats.Ticks > 0
	i := 0
	for _, c := range s.grid.AllCells() {
		s.display[i] = DisplayValue(c, ticked)
		i++
	}
}

// Parameters describes the configuration and live counters.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
				core.StringParam("order", "Worklist order", s.engine.Order().String()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("ticks", "Ticks", s.stats.Ticks),
				core.IntParam("flashes", "Total flashes", s.stats.Flashes),
				core.IntParam("last_flashes", "Last tick flashes", s.stats.LastFlashes),
				core.IntParam("sync_tick", "Synchronized at", s.stats.SyncTick),
			},
		},
	}}
}

func init() {
	core.Register("flash", func(cfg map[string]string) (core.Sim, error) {
		s, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

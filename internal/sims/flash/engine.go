package flash

import (
	"fmt"
	"strings"

	"flashgrid/internal/core"

	"github.com/rs/zerolog"
)

// Order selects how the cascade worklist is drained. The final grid does not
// depend on it; only the visiting sequence changes.
type Order int

const (
	// OrderQueue drains the worklist first-in first-out.
	OrderQueue Order = iota
	// OrderStack drains the worklist last-in first-out.
	OrderStack
)

func (o Order) String() string {
	switch o {
	case OrderQueue:
		return "queue"
	case OrderStack:
		return "stack"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder converts "queue" or "stack" into an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "queue", "fifo", "bfs":
		return OrderQueue, nil
	case "stack", "lifo", "dfs":
		return OrderStack, nil
	default:
		return OrderQueue, fmt.Errorf("unknown worklist order %q", s)
	}
}

// TickResult summarises one tick.
type TickResult struct {
	Flashes int
}

// Engine advances grids tick by tick. An Engine holds no grid state and may be
// reused across grids, but a single grid must not be ticked concurrently.
type Engine struct {
	order Order
	log   zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithOrder sets the worklist discipline.
func WithOrder(o Order) Option {
	return func(e *Engine) { e.order = o }
}

// WithLogger attaches a logger. Ticks are logged at trace level and query
// outcomes at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine returns a queue-ordered engine with logging disabled unless
// overridden by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{order: OrderQueue, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// Order reports the engine's worklist discipline.
func (e *Engine) Order() Order { return e.order }

// Tick charges every cell, resolves the flash cascade and discharges flashed
// cells. The grid is mutated in place.
func (e *Engine) Tick(g *Grid) (TickResult, error) {
	if err := e.charge(g); err != nil {
		return TickResult{}, err
	}
	flashes, err := e.cascade(g)
	if err != nil {
		return TickResult{}, err
	}
	if err := e.discharge(g); err != nil {
		return TickResult{}, err
	}
	e.log.Trace().Int("flashes", flashes).Int("cells", g.Len()).Msg("tick")
	return TickResult{Flashes: flashes}, nil
}

func (e *Engine) charge(g *Grid) error {
	for p := range g.bounds.All() {
		c, err := g.Get(p.Row, p.Col)
		if err != nil {
			return err
		}
		c.Energy++
		if err := g.put(p.Row, p.Col, c); err != nil {
			return err
		}
	}
	return nil
}

// cascade flashes every charged cell above MaxEnergy and propagates to
// neighbours until the worklist drains. A cell enters the worklist only when
// it first crosses the threshold, and a flashed cell is never charged again
// in the same tick, so at most Len() flashes occur.
func (e *Engine) cascade(g *Grid) (int, error) {
	wl := worklist{order: e.order}
	for p, c := range g.AllCells() {
		if c.Energy > MaxEnergy && !c.Flashed {
			wl.push(p)
		}
	}

	flashes := 0
	for {
		p, ok := wl.pop()
		if !ok {
			break
		}
		c, err := g.Get(p.Row, p.Col)
		if err != nil {
			return flashes, err
		}
		if c.Flashed {
			continue
		}
		c.Flashed = true
		if err := g.put(p.Row, p.Col, c); err != nil {
			return flashes, err
		}
		flashes++

		for n := range g.Neighbors(p.Row, p.Col) {
			nc, err := g.Get(n.Row, n.Col)
			if err != nil {
				return flashes, err
			}
			if nc.Flashed {
				continue
			}
			nc.Energy++
			if err := g.put(n.Row, n.Col, nc); err != nil {
				return flashes, err
			}
			if nc.Energy == MaxEnergy+1 {
				wl.push(n)
			}
		}
	}
	return flashes, nil
}

func (e *Engine) discharge(g *Grid) error {
	for p := range g.bounds.All() {
		c, err := g.Get(p.Row, p.Col)
		if err != nil {
			return err
		}
		if !c.Flashed {
			continue
		}
		if err := g.put(p.Row, p.Col, Cell{}); err != nil {
			return err
		}
	}
	return nil
}

// RunFixedTicks advances g by n ticks and returns the total number of flashes.
func (e *Engine) RunFixedTicks(g *Grid, n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTicks, n)
	}
	total := 0
	for i := 0; i < n; i++ {
		res, err := e.Tick(g)
		if err != nil {
			return total, fmt.Errorf("tick %d: %w", i+1, err)
		}
		total += res.Flashes
	}
	e.log.Debug().Int("ticks", n).Int("flashes", total).Msg("fixed run complete")
	return total, nil
}

// RunUntilSynchronized ticks g until every cell flashes in the same tick and
// returns that tick's 1-based index. At most maxTicks ticks are run; if none
// of them synchronizes the grid ErrNotSynchronized is returned.
func (e *Engine) RunUntilSynchronized(g *Grid, maxTicks int) (int, error) {
	if maxTicks < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTicks, maxTicks)
	}
	for tick := 1; tick <= maxTicks; tick++ {
		res, err := e.Tick(g)
		if err != nil {
			return 0, fmt.Errorf("tick %d: %w", tick, err)
		}
		if res.Flashes == g.Len() {
			e.log.Debug().Int("tick", tick).Msg("synchronized")
			return tick, nil
		}
	}
	e.log.Debug().Int("max_ticks", maxTicks).Msg("synchronization bound exhausted")
	return 0, fmt.Errorf("%w within %d ticks", ErrNotSynchronized, maxTicks)
}

// Simulate runs exactly ticks ticks, summing flashes and recording the first
// synchronized tick if one occurs.
func (e *Engine) Simulate(g *Grid, ticks int) (Report, error) {
	if ticks < 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidTicks, ticks)
	}
	rep := Report{Kind: ReportCounted}
	for tick := 1; tick <= ticks; tick++ {
		res, err := e.Tick(g)
		if err != nil {
			return rep, fmt.Errorf("tick %d: %w", tick, err)
		}
		rep.Ticks = tick
		rep.Flashes += res.Flashes
		if rep.Kind == ReportCounted && res.Flashes == g.Len() {
			rep.Kind = ReportSynchronized
			rep.SyncTick = tick
		}
	}
	e.log.Debug().Int("ticks", rep.Ticks).Int("flashes", rep.Flashes).Stringer("kind", rep.Kind).Msg("simulation complete")
	return rep, nil
}

// RunFixedTicks advances g by n ticks with a queue-ordered engine.
func RunFixedTicks(g *Grid, n int) (int, error) { return defaultEngine.RunFixedTicks(g, n) }

// RunUntilSynchronized searches for the first synchronized tick with a
// queue-ordered engine.
func RunUntilSynchronized(g *Grid, maxTicks int) (int, error) {
	return defaultEngine.RunUntilSynchronized(g, maxTicks)
}

// Simulate runs a fixed-length simulation with a queue-ordered engine.
func Simulate(g *Grid, ticks int) (Report, error) { return defaultEngine.Simulate(g, ticks) }

type worklist struct {
	order Order
	items []core.Point
	head  int
}

func (w *worklist) push(p core.Point) { w.items = append(w.items, p) }

func (w *worklist) pop() (core.Point, bool) {
	if w.head >= len(w.items) {
		return core.Point{}, false
	}
	if w.order == OrderStack {
		last := len(w.items) - 1
		p := w.items[last]
		w.items = w.items[:last]
		return p, true
	}
	p := w.items[w.head]
	w.head++
	return p, true
}

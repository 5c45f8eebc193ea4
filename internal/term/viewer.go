// Package term renders a flash simulation in a terminal.
package term

import (
	"context"
	"fmt"
	"image/color"
	"iter"
	"time"

	"flashgrid/internal/core"
	"flashgrid/internal/sims/flash"

	"github.com/gdamore/tcell/v2"
)

// Source is the read-only view of a simulation the viewer needs, plus the
// Step/Reset controls bound to keys.
type Source interface {
	Size() core.Size
	Step()
	Reset(seed int64)
	Snapshot() iter.Seq2[core.Point, flash.Cell]
	Stats() flash.Stats
	Palette() []color.RGBA
}

// Viewer draws each cell as its energy digit, coloured through the source
// palette, with a status line underneath.
type Viewer struct {
	screen tcell.Screen
	sim    Source
	step   *core.FixedStep
	seed   int64

	paused bool
	styles []tcell.Style
}

// New builds a viewer ticking at tps. The screen must already be initialised.
func New(screen tcell.Screen, sim Source, tps int, seed int64) *Viewer {
	v := &Viewer{
		screen: screen,
		sim:    sim,
		step:   core.NewFixedStep(tps),
		seed:   seed,
	}
	for i, c := range sim.Palette() {
		st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		if i == flash.DisplayFlash {
			st = st.Bold(true)
		}
		v.styles = append(v.styles, st)
	}
	return v
}

// Paused reports whether automatic ticking is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// Draw paints the current snapshot and status line. Call Show to flush.
func (v *Viewer) Draw() {
	v.screen.Clear()
	stats := v.sim.Stats()
	ticked := stats.Ticks > 0
	for p, c := range v.sim.Snapshot() {
		val := flash.DisplayValue(c, ticked)
		ch := rune('0' + c.Energy%10)
		v.screen.SetContent(p.Col, p.Row, ch, nil, v.style(val))
	}

	status := fmt.Sprintf("tick %d  flashes %d  last %d", stats.Ticks, stats.Flashes, stats.LastFlashes)
	if stats.SyncTick > 0 {
		status += fmt.Sprintf("  sync@%d", stats.SyncTick)
	}
	if v.paused {
		status += "  [paused]"
	}
	v.drawText(0, v.sim.Size().H+1, status)
}

func (v *Viewer) style(val uint8) tcell.Style {
	if int(val) < len(v.styles) {
		return v.styles[val]
	}
	return tcell.StyleDefault
}

func (v *Viewer) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// HandleEvent applies a key binding and reports whether the viewer should
// quit: q/Esc quit, space toggles pause, n steps once, r resets.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.sim.Step()
			case 'r':
				v.sim.Reset(v.seed)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

// Run polls input and ticks the simulation until the user quits or ctx is
// cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)
	defer close(quit)

	poll := time.NewTicker(max(v.step.Interval()/2, time.Millisecond))
	defer poll.Stop()

	v.Draw()
	v.screen.Show()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.HandleEvent(ev) {
				return nil
			}
		case <-poll.C:
			if v.paused || !v.step.ShouldStep() {
				continue
			}
			v.sim.Step()
		}
		v.Draw()
		v.screen.Show()
	}
}

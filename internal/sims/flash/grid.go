package flash

import (
	"fmt"
	"iter"

	"flashgrid/internal/core"
)

// MaxEnergy is the highest energy a cell may hold at a tick boundary. A cell
// whose energy rises above it flashes.
const MaxEnergy = 9

// Cell is a single grid position.
type Cell struct {
	Energy  int
	Flashed bool
}

// Grid is a fixed-size rectangle of cells stored in row-major order.
type Grid struct {
	bounds core.Bounds
	cells  []Cell
}

// FromRows builds a Grid from initial energies. Every row must be non-empty,
// all rows must have the same length and every value must lie in [0, 9].
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidShape)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrInvalidShape)
	}
	g := &Grid{bounds: core.NewBounds(len(rows), cols), cells: make([]Cell, len(rows)*cols)}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidShape, r, len(row), cols)
		}
		for c, e := range row {
			if e < 0 || e > MaxEnergy {
				return nil, fmt.Errorf("%w: energy %d at (%d,%d) outside [0,%d]", ErrInvalidShape, e, r, c, MaxEnergy)
			}
			g.cells[g.bounds.Index(r, c)] = Cell{Energy: e}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.bounds.Rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.bounds.Cols }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.bounds.Contains(row, col) {
		return Cell{}, g.outOfBounds(row, col)
	}
	return g.cells[g.bounds.Index(row, col)], nil
}

// Set replaces the cell at (row, col). Between ticks a cell holds an energy
// in [0, MaxEnergy] and no flash marker; anything else fails with
// ErrInvalidCell.
func (g *Grid) Set(row, col int, c Cell) error {
	if c.Energy < 0 || c.Energy > MaxEnergy || c.Flashed {
		return fmt.Errorf("%w: %+v at (%d,%d)", ErrInvalidCell, c, row, col)
	}
	return g.put(row, col, c)
}

// put stores c without validating it. The engine uses it for the transient
// states inside a tick.
func (g *Grid) put(row, col int, c Cell) error {
	if !g.bounds.Contains(row, col) {
		return g.outOfBounds(row, col)
	}
	g.cells[g.bounds.Index(row, col)] = c
	return nil
}

// Neighbors yields the in-bounds Moore neighbours of (row, col) in row-major
// order. Out-of-bounds origins yield nothing.
func (g *Grid) Neighbors(row, col int) iter.Seq[core.Point] {
	if !g.bounds.Contains(row, col) {
		return func(func(core.Point) bool) {}
	}
	return g.bounds.Moore(row, col)
}

// AllCells yields every cell with its coordinate in row-major order. The
// cells are copies; mutating them has no effect on the grid.
func (g *Grid) AllCells() iter.Seq2[core.Point, Cell] {
	return func(yield func(core.Point, Cell) bool) {
		for i, c := range g.cells {
			if !yield(g.bounds.At(i), c) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{bounds: g.bounds, cells: cells}
}

// Energies returns a snapshot of the energy values, one slice per row.
func (g *Grid) Energies() [][]int {
	out := make([][]int, g.bounds.Rows)
	for r := range out {
		row := make([]int, g.bounds.Cols)
		for c := range row {
			row[c] = g.cells[g.bounds.Index(r, c)].Energy
		}
		out[r] = row
	}
	return out
}

// StepOnce advances the grid by one tick using a queue-ordered engine and
// returns the number of cells that flashed.
func (g *Grid) StepOnce() (int, error) {
	res, err := defaultEngine.Tick(g)
	return res.Flashes, err
}

func (g *Grid) outOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.bounds.Rows, g.bounds.Cols)
}

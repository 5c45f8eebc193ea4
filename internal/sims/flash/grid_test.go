package flash

import (
	"errors"
	"slices"
	"testing"

	"flashgrid/internal/core"
)

// digits converts lines of decimal digits into an energy matrix.
func digits(lines ...string) [][]int {
	out := make([][]int, len(lines))
	for i, line := range lines {
		row := make([]int, len(line))
		for j, ch := range line {
			row[j] = int(ch - '0')
		}
		out[i] = row
	}
	return out
}

func mustGrid(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := FromRows(digits(lines...))
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return g
}

func TestFromRowsRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
	}{
		{name: "nil", rows: nil},
		{name: "empty row", rows: [][]int{{}}},
		{name: "jagged", rows: [][]int{{1, 2, 3}, {4, 5}}},
		{name: "jagged longer", rows: [][]int{{1}, {2, 3}}},
		{name: "negative", rows: [][]int{{1, -1}}},
		{name: "too high", rows: [][]int{{1, 10}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := FromRows(tc.rows)
			if !errors.Is(err, ErrInvalidShape) {
				t.Fatalf("expected ErrInvalidShape, got %v", err)
			}
			if g != nil {
				t.Fatalf("expected nil grid on error")
			}
		})
	}
}

func TestFromRowsCopiesInput(t *testing.T) {
	rows := digits("12", "34")
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	rows[0][0] = 9
	c, err := g.Get(0, 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.Energy != 1 {
		t.Fatalf("grid shares storage with input: energy %d", c.Energy)
	}
	if g.Rows() != 2 || g.Cols() != 2 || g.Len() != 4 {
		t.Fatalf("unexpected dimensions %dx%d len %d", g.Rows(), g.Cols(), g.Len())
	}
}

func TestGetSetBounds(t *testing.T) {
	g := mustGrid(t, "123", "456")

	c, err := g.Get(1, 2)
	if err != nil || c.Energy != 6 {
		t.Fatalf("Get(1,2) = %+v, %v", c, err)
	}
	if err := g.Set(0, 1, Cell{Energy: 9}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	c, _ = g.Get(0, 1)
	if c.Energy != 9 || c.Flashed {
		t.Fatalf("Set did not store cell: %+v", c)
	}

	for _, bad := range []Cell{{Energy: -5}, {Energy: MaxEnergy + 1}, {Energy: 9, Flashed: true}, {Flashed: true}} {
		if err := g.Set(1, 1, bad); !errors.Is(err, ErrInvalidCell) {
			t.Fatalf("Set(%+v): expected ErrInvalidCell, got %v", bad, err)
		}
	}
	if c, _ := g.Get(1, 1); c != (Cell{Energy: 5}) {
		t.Fatalf("rejected Set changed the cell: %+v", c)
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {5, 5}} {
		if _, err := g.Get(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get%v: expected ErrOutOfBounds, got %v", p, err)
		}
		if err := g.Set(p[0], p[1], Cell{}); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set%v: expected ErrOutOfBounds, got %v", p, err)
		}
	}
}

func TestRejectedSetKeepsTickConsistent(t *testing.T) {
	g := mustGrid(t, "99", "99")
	if err := g.Set(0, 0, Cell{Energy: -5}); !errors.Is(err, ErrInvalidCell) {
		t.Fatalf("negative energy accepted: %v", err)
	}
	if err := g.Set(1, 1, Cell{Energy: 9, Flashed: true}); !errors.Is(err, ErrInvalidCell) {
		t.Fatalf("pre-flashed cell accepted: %v", err)
	}

	flashes, err := g.StepOnce()
	if err != nil {
		t.Fatalf("StepOnce: %v", err)
	}
	if flashes != 4 {
		t.Fatalf("flashes = %d, want 4", flashes)
	}
	for p, c := range g.AllCells() {
		if c.Energy != 0 || c.Flashed {
			t.Fatalf("cell %v = %+v after synchronized tick", p, c)
		}
	}
}

func TestNeighborsOrderAndBorders(t *testing.T) {
	g := mustGrid(t, "000", "000", "000")
	pts := func(pairs ...int) []core.Point {
		out := make([]core.Point, 0, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			out = append(out, core.Point{Row: pairs[i], Col: pairs[i+1]})
		}
		return out
	}

	cases := []struct {
		row, col int
		want     []core.Point
	}{
		{1, 1, pts(0, 0, 0, 1, 0, 2, 1, 0, 1, 2, 2, 0, 2, 1, 2, 2)},
		{0, 0, pts(0, 1, 1, 0, 1, 1)},
		{0, 1, pts(0, 0, 0, 2, 1, 0, 1, 1, 1, 2)},
		{2, 2, pts(1, 1, 1, 2, 2, 1)},
		{1, 0, pts(0, 0, 0, 1, 1, 1, 2, 0, 2, 1)},
		{3, 3, nil},
		{-1, 0, nil},
	}
	for _, tc := range cases {
		got := slices.Collect(g.Neighbors(tc.row, tc.col))
		if !slices.Equal(got, tc.want) {
			t.Fatalf("Neighbors(%d,%d) = %v, want %v", tc.row, tc.col, got, tc.want)
		}
	}

	single := mustGrid(t, "5")
	if got := slices.Collect(single.Neighbors(0, 0)); len(got) != 0 {
		t.Fatalf("1x1 grid should have no neighbours, got %v", got)
	}
}

func TestNeighborsStopsEarly(t *testing.T) {
	g := mustGrid(t, "000", "000", "000")
	seen := 0
	for range g.Neighbors(1, 1) {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Fatalf("expected early break after 3, got %d", seen)
	}
}

func TestAllCellsRowMajor(t *testing.T) {
	g := mustGrid(t, "12", "34", "56")
	var energies []int
	var points []core.Point
	for p, c := range g.AllCells() {
		points = append(points, p)
		energies = append(energies, c.Energy)
	}
	if !slices.Equal(energies, []int{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("unexpected energies %v", energies)
	}
	if points[3] != (core.Point{Row: 1, Col: 1}) {
		t.Fatalf("unexpected point ordering %v", points)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, "99", "99")
	clone := g.Clone()
	if _, err := clone.StepOnce(); err != nil {
		t.Fatalf("StepOnce: %v", err)
	}
	if !slices.EqualFunc(g.Energies(), digits("99", "99"), slices.Equal) {
		t.Fatalf("source grid mutated by clone step: %v", g.Energies())
	}
	if !slices.EqualFunc(clone.Energies(), digits("00", "00"), slices.Equal) {
		t.Fatalf("clone did not step: %v", clone.Energies())
	}
}

package core

import "iter"

// Point addresses a cell by row and column.
type Point struct {
	Row, Col int
}

// Bounds describes a bounded (non-wrapping) rectangle of cells stored in
// row-major order.
type Bounds struct {
	Rows, Cols int
}

// NewBounds returns Bounds for a rows x cols grid. Non-positive dimensions
// yield an empty rectangle.
func NewBounds(rows, cols int) Bounds {
	if rows <= 0 || cols <= 0 {
		return Bounds{}
	}
	return Bounds{Rows: rows, Cols: cols}
}

// Len returns the number of cells in the rectangle.
func (b Bounds) Len() int { return b.Rows * b.Cols }

// Index returns the linear slice index for (row, col).
func (b Bounds) Index(row, col int) int { return row*b.Cols + col }

// At converts a linear index back into a Point.
func (b Bounds) At(idx int) Point { return Point{Row: idx / b.Cols, Col: idx % b.Cols} }

// Contains reports whether (row, col) lies inside the rectangle.
func (b Bounds) Contains(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// Moore yields the in-bounds members of the 3x3 block around (row, col),
// excluding the centre, scanning row by row from the top-left. Border cells
// have fewer than eight neighbours; there is no wraparound.
func (b Bounds) Moore(row, col int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dr := -1; dr <= 1; dr++ {
			nr := row + dr
			if nr < 0 || nr >= b.Rows {
				continue
			}
			for dc := -1; dc <= 1; dc++ {
				nc := col + dc
				if nc < 0 || nc >= b.Cols {
					continue
				}
				if dr == 0 && dc == 0 {
					continue
				}
				if !yield(Point{Row: nr, Col: nc}) {
					return
				}
			}
		}
	}
}

// All yields every point in row-major order.
func (b Bounds) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r := 0; r < b.Rows; r++ {
			for c := 0; c < b.Cols; c++ {
				if !yield(Point{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

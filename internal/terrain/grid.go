package terrain

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Resolution describes the row/column dimensions of a height grid.
// It is fixed once a grid exists; changing it means building a new grid.
type Resolution struct {
	Rows int
	Cols int
}

// Valid reports whether both dimensions are positive.
func (r Resolution) Valid() bool { return r.Rows > 0 && r.Cols > 0 }

// CellCount returns Rows*Cols.
func (r Resolution) CellCount() int { return r.Rows * r.Cols }

// Grid is a rectangular height field stored row-major
// (index = row*Cols + col).
type Grid struct {
	res  Resolution
	data []float64
}

// NewGrid allocates a grid with every cell set to initial.
// Returns ErrInvalidResolution for non-positive dimensions.
func NewGrid(res Resolution, initial float64) (*Grid, error) {
	if !res.Valid() {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidResolution, res.Rows, res.Cols)
	}
	g := &Grid{res: res, data: make([]float64, res.CellCount())}
	if initial != 0 {
		g.Fill(initial)
	}
	return g, nil
}

// Resolution returns the grid dimensions.
func (g *Grid) Resolution() Resolution { return g.res }

// At returns the elevation at (row, col).
func (g *Grid) At(row, col int) float64 { return g.data[row*g.res.Cols+col] }

// Set writes the elevation at (row, col).
func (g *Grid) Set(row, col int, h float64) { g.data[row*g.res.Cols+col] = h }

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// MinMax returns the lowest and highest elevation in the grid.
func (g *Grid) MinMax() (min, max float64) {
	return floats.Min(g.data), floats.Max(g.data)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{res: g.res, data: make([]float64, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether two grids have identical dimensions and
// bit-identical cell values.
func (g *Grid) Equal(other *Grid) bool {
	if g.res != other.res {
		return false
	}
	for i, v := range g.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

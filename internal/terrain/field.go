package terrain

import (
	"github.com/dgravesa/go-parallel/parallel"

	"terramesh/internal/profiling"
)

// Field passes fill or merge whole grids. Each pass is row-parallel: cells
// carry no cross-row or cross-column dependency, so rows are partitioned
// across workers and the pass joins before the caller continues.

// Perturbate synthesizes a height field by summing noise layers. Cell
// (row, col) accumulates, per layer, the sampler value at (row, col,
// layer.Frequency) remapped from [0,1] to [-Amplitude, +Amplitude]. Layers
// are additive, so their order does not affect the result. An empty layer
// list yields an all-zero grid.
func Perturbate(res Resolution, sampler Sampler, layers []Layer) (*Grid, error) {
	g, err := NewGrid(res, 0)
	if err != nil {
		return nil, err
	}
	perturbInto(g, sampler, layers)
	return g, nil
}

// perturbInto adds the layered field onto g in place.
func perturbInto(g *Grid, sampler Sampler, layers []Layer) {
	defer profiling.Track("terrain.Perturbate")()
	parallel.For(g.res.Rows, func(row, _ int) {
		for col := 0; col < g.res.Cols; col++ {
			h := 0.0
			for _, l := range layers {
				h += sampler.Sample(float64(row), float64(col), l.Frequency)*l.Amplitude*2 - l.Amplitude
			}
			g.data[row*g.res.Cols+col] += h
		}
	})
}

// Cutoff floors base against a second field synthesized from layers: every
// cell becomes max(base, cutoff). A smoother cutoff stack (the perturbation
// layers minus their finest octaves) lifts detail noise onto plateau-like
// landmasses instead of merely adding another octave.
func Cutoff(base *Grid, sampler Sampler, layers []Layer) error {
	cut, err := Perturbate(base.Resolution(), sampler, layers)
	if err != nil {
		return err
	}
	defer profiling.Track("terrain.Cutoff")()
	parallel.For(base.res.Rows, func(row, _ int) {
		for col := 0; col < base.res.Cols; col++ {
			if c := cut.At(row, col); c > base.At(row, col) {
				base.Set(row, col, c)
			}
		}
	})
	return nil
}

package terrain

// Generator owns a height grid and exposes the build pipeline as a chain.
// Mutating calls modify the grid in place and return the same handle:
//
//	gen.Reset().Perturbate(layers).Cutoff(smoothLayers)
//
// The chaining is an ergonomic convenience, not a concurrency contract; a
// Generator is not safe for concurrent mutation.
type Generator struct {
	res     Resolution
	sampler Sampler
	grid    *Grid
}

// NewGenerator allocates a flat grid at the given resolution. The sampler is
// used by all subsequent Perturbate and Cutoff calls.
func NewGenerator(res Resolution, sampler Sampler) (*Generator, error) {
	grid, err := NewGrid(res, 0)
	if err != nil {
		return nil, err
	}
	return &Generator{res: res, sampler: sampler, grid: grid}, nil
}

// Grid returns the current height field. Mesh and render pipelines consume it
// independently; neither mutates it.
func (g *Generator) Grid() *Grid { return g.grid }

// Reset flattens the grid back to zero elevation.
func (g *Generator) Reset() *Generator {
	g.grid.Fill(0)
	return g
}

// Perturbate adds a multi-layer noise field onto the current grid.
func (g *Generator) Perturbate(layers []Layer) *Generator {
	perturbInto(g.grid, g.sampler, layers)
	return g
}

// Cutoff floors the current grid against a field synthesized from layers.
// The cutoff layer stack is independent of any previous Perturbate call.
func (g *Generator) Cutoff(layers []Layer) *Generator {
	// The resolution was validated at construction, so Cutoff cannot fail.
	_ = Cutoff(g.grid, g.sampler, layers)
	return g
}

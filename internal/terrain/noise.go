package terrain

import "github.com/aquilax/go-perlin"

// Sampler produces deterministic noise in [0,1] for a coordinate pair at a
// given frequency. Implementations must be pure: identical inputs always
// yield identical outputs, and concurrent calls must not interfere.
// Frequency is an explicit argument so row-parallel passes never go through
// mutable sampler state.
type Sampler interface {
	Sample(x, y, frequency float64) float64
}

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// PerlinSampler adapts aquilax/go-perlin to the Sampler contract. The
// underlying permutation tables are immutable after construction, so a single
// instance is safe for concurrent sampling.
type PerlinSampler struct {
	noise *perlin.Perlin
}

// NewPerlinSampler builds a Perlin-backed sampler from a seed.
func NewPerlinSampler(seed int64) *PerlinSampler {
	return &PerlinSampler{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

// Sample returns Perlin noise at (x*frequency, y*frequency) remapped from
// [-1,1] to [0,1].
func (s *PerlinSampler) Sample(x, y, frequency float64) float64 {
	return (s.noise.Noise2D(x*frequency, y*frequency) + 1) / 2
}

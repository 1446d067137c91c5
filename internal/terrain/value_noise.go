package terrain

import "math"

// Simple deterministic 2D value noise with no external deps; uses integer
// hashing for lattice values.

// ValueSampler is a hash-based value-noise Sampler. It carries only an
// immutable seed, so concurrent sampling is race-free.
type ValueSampler struct {
	seed int64
}

// NewValueSampler builds a value-noise sampler from a seed.
func NewValueSampler(seed int64) *ValueSampler {
	return &ValueSampler{seed: seed}
}

// Sample returns bilinear value noise at (x*frequency, y*frequency) in [0,1].
func (s *ValueSampler) Sample(x, y, frequency float64) float64 {
	return valueNoise2D(x*frequency, y*frequency, s.seed)
}

// fade is the smoothstep-like curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash2 is a SplitMix64-style integer hash, stable across runs for the same
// inputs.
func hash2(x, y, seed int64) uint64 {
	v := uint64(x) + (uint64(y) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// latticeValue maps the hash of a lattice point to [0,1].
func latticeValue(x, y, seed int64) float64 {
	return float64(hash2(x, y, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, y float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	x1 := x0 + 1
	y1 := y0 + 1

	// Interpolation weights
	fx := fade(x - x0)
	fy := fade(y - y0)

	v00 := latticeValue(int64(x0), int64(y0), seed)
	v10 := latticeValue(int64(x1), int64(y0), seed)
	v01 := latticeValue(int64(x0), int64(y1), seed)
	v11 := latticeValue(int64(x1), int64(y1), seed)

	i0 := lerp(v00, v10, fx)
	i1 := lerp(v01, v11, fx)
	return lerp(i0, i1, fy) // [0,1]
}

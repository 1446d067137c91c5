package config

import "terramesh/internal/terrain"

// Default generation parameters used by the CLI. Library callers can pass any
// layer stacks they want; these are the stock ones.

// DefaultLayers returns the standard four-octave perturbation stack. Octaves
// double in frequency while halving in amplitude, approximating a fractal
// surface.
func DefaultLayers() []terrain.Layer {
	return []terrain.Layer{
		{Frequency: 1.0 / 64, Amplitude: 32},
		{Frequency: 1.0 / 32, Amplitude: 16},
		{Frequency: 1.0 / 16, Amplitude: 8},
		{Frequency: 1.0 / 8, Amplitude: 4},
	}
}

// DefaultCutoffLayers returns the stock cutoff stack: the perturbation stack
// minus its finest-detail octave, so the plateau surface the terrain is
// floored against stays smoother than the terrain itself.
func DefaultCutoffLayers() []terrain.Layer {
	layers := DefaultLayers()
	return layers[:len(layers)-1]
}

package terrain

// Layer is one octave of noise: the frequency the sampler is queried at and
// the amplitude its contribution is scaled by. A slice of layers defines a
// multi-octave field.
type Layer struct {
	Frequency float64
	Amplitude float64
}

package render

// RGB is one pixel: a red/green/blue channel triple.
type RGB struct {
	R, G, B uint8
}

// Fixed palette shared by the visualization modes.
var (
	seaColor           = RGB{R: 40, G: 70, B: 160}
	continentLineColor = RGB{R: 35, G: 30, B: 25}
	lowLandColor       = RGB{R: 70, G: 120, B: 60}
	highLandColor      = RGB{R: 205, G: 200, B: 190}
	lightSeaColor      = RGB{R: 90, G: 140, B: 200}
	darkSeaColor       = RGB{R: 10, G: 30, B: 90}
	contourLineColor   = RGB{R: 70, G: 45, B: 20}
	backgroundColor    = RGB{R: 245, G: 240, B: 225}
)

// Blend linearly interpolates each channel from c1 toward c2 by t in [0,1].
// Channel math runs in float64 and truncates on output.
func Blend(c1, c2 RGB, t float64) RGB {
	return RGB{
		R: blendChannel(c1.R, c2.R, t),
		G: blendChannel(c1.G, c2.G, t),
		B: blendChannel(c1.B, c2.B, t),
	}
}

func blendChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)))
}

package render

import "math"

// One shade function per visualization mode. All of them treat a degenerate
// (flat) grid as ratio 0 rather than dividing by a zero range.

func shadeHeight(h float64, st stats, cfg Config) RGB {
	if cfg.ShowSea && h < st.seaLevel {
		return seaColor
	}
	ratio := 0.0
	if st.heightRange > 0 {
		ratio = (h - st.min) / st.heightRange
	}
	v := uint8(255 * ratio)
	return RGB{R: v, G: v, B: v}
}

func shadeRelief(h float64, st stats, _ Config) RGB {
	// Cells within a narrow buffer of the sea level form the coastline.
	buffer := 3.0 / 255.0 * st.heightRange
	d := h - st.seaLevel
	switch {
	case math.Abs(d) <= buffer:
		return continentLineColor
	case d > 0:
		t := 0.0
		if span := st.max - st.seaLevel; span > 0 {
			t = d / span
		}
		return Blend(lowLandColor, highLandColor, t)
	default:
		t := 0.0
		if span := st.seaLevel - st.min; span > 0 {
			t = -d / span
		}
		return Blend(lightSeaColor, darkSeaColor, t)
	}
}

func shadeContour(h float64, st stats, cfg Config) RGB {
	if st.heightRange <= 0 {
		return backgroundColor
	}
	span := st.heightRange / cfg.ContourLineDensity
	band := span * 0.05
	if dist := contourDistance(h-st.min, span); dist < band {
		return Blend(contourLineColor, backgroundColor, dist/band)
	}
	return backgroundColor
}

func shadeHeightWithContour(h float64, st stats, cfg Config) RGB {
	base := shadeHeight(h, st, cfg)
	if st.heightRange <= 0 {
		return base
	}
	span := st.heightRange / cfg.ContourLineDensity
	// Wider spill band than ModeContour, so lines stay visible on the
	// grayscale base.
	band := span * 0.1
	if dist := contourDistance(h-st.min, span); dist < band {
		return Blend(contourLineColor, base, dist/band)
	}
	return base
}

// contourDistance returns the elevation distance from rel (height above the
// grid minimum, rel >= 0) to the nearest contour level, where levels sit at
// every multiple of span.
func contourDistance(rel, span float64) float64 {
	rem := math.Mod(rel, span)
	return math.Min(rem, span-rem)
}

package render

import (
	"fmt"

	"github.com/dgravesa/go-parallel/parallel"

	"terramesh/internal/profiling"
	"terramesh/internal/terrain"
)

// Mode selects one of the fixed visualization modes.
type Mode int

const (
	// ModeHeight renders normalized elevation as grayscale, with an optional
	// flat sea fill below sea level.
	ModeHeight Mode = iota
	// ModeRelief shades land and sea with blended palettes and marks the
	// coastline.
	ModeRelief
	// ModeContour draws evenly spaced elevation contour lines on a flat
	// background.
	ModeContour
	// ModeHeightWithContour overlays contour lines on the grayscale height
	// rendering.
	ModeHeightWithContour
)

func (m Mode) String() string {
	switch m {
	case ModeHeight:
		return "height"
	case ModeRelief:
		return "relief"
	case ModeContour:
		return "contour"
	case ModeHeightWithContour:
		return "height-contour"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a mode name to its Mode value.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "height":
		return ModeHeight, nil
	case "relief":
		return ModeRelief, nil
	case "contour":
		return ModeContour, nil
	case "height-contour":
		return ModeHeightWithContour, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// stats holds the per-render precomputation shared by all modes.
type stats struct {
	min         float64
	max         float64
	heightRange float64
	seaLevel    float64
}

func computeStats(grid *terrain.Grid, cfg Config) stats {
	min, max := grid.MinMax()
	r := max - min
	return stats{
		min:         min,
		max:         max,
		heightRange: r,
		seaLevel:    cfg.SeaLevelRatio*r + min,
	}
}

// shadeFunc maps one cell elevation to a pixel, given the shared stats.
type shadeFunc func(h float64, st stats, cfg Config) RGB

// Render rasterizes the grid under the selected mode. The grid is read-only
// input; the result is a pure function of grid, mode, and cfg. Rows are
// filled in parallel.
func Render(grid *terrain.Grid, mode Mode, cfg Config) (*PixelBuffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var shade shadeFunc
	switch mode {
	case ModeHeight:
		shade = shadeHeight
	case ModeRelief:
		shade = shadeRelief
	case ModeContour:
		shade = shadeContour
	case ModeHeightWithContour:
		shade = shadeHeightWithContour
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	defer profiling.Track("render.Render")()
	st := computeStats(grid, cfg)
	res := grid.Resolution()
	pb := newPixelBuffer(res)
	parallel.For(res.Rows, func(row, _ int) {
		for col := 0; col < res.Cols; col++ {
			pb.set(row, col, shade(grid.At(row, col), st, cfg))
		}
	})
	return pb, nil
}

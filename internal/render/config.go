package render

import "fmt"

// Config controls sea-level placement and contour spacing for a render pass.
type Config struct {
	// SeaLevelRatio places the sea level within the height range: sea level =
	// min + ratio*(max-min). Must be in [0,1].
	SeaLevelRatio float64
	// ShowSea fills cells below sea level with the sea color in Height-based
	// modes.
	ShowSea bool
	// ContourLineDensity is the number of contour intervals across the full
	// height range. Must be positive.
	ContourLineDensity float64
}

// DefaultConfig returns the standard render settings.
func DefaultConfig() Config {
	return Config{
		SeaLevelRatio:      0.2,
		ShowSea:            true,
		ContourLineDensity: 25,
	}
}

// Validate returns ErrInvalidConfiguration for out-of-range fields.
func (c Config) Validate() error {
	if c.SeaLevelRatio < 0 || c.SeaLevelRatio > 1 {
		return fmt.Errorf("%w: sea level ratio %v outside [0,1]", ErrInvalidConfiguration, c.SeaLevelRatio)
	}
	if c.ContourLineDensity <= 0 {
		return fmt.Errorf("%w: contour line density %v must be positive", ErrInvalidConfiguration, c.ContourLineDensity)
	}
	return nil
}

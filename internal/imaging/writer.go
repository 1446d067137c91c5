package imaging

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"terramesh/internal/render"
)

// Write encodes a pixel buffer to path. The format follows the file
// extension: .bmp encodes BMP, anything else PNG. Encode and I/O failures are
// returned to the caller; nothing is retried.
func Write(path string, pb *render.PixelBuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	img := pb.Image()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(file, img)
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

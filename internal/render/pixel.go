package render

import (
	"image"
	"image/color"

	"terramesh/internal/terrain"
)

// PixelBuffer is a row-major Rows x Cols RGB raster. Render produces it and
// the image encoder consumes it; it is never mutated after construction.
type PixelBuffer struct {
	Rows int
	Cols int
	Pix  []RGB
}

func newPixelBuffer(res terrain.Resolution) *PixelBuffer {
	return &PixelBuffer{
		Rows: res.Rows,
		Cols: res.Cols,
		Pix:  make([]RGB, res.CellCount()),
	}
}

// At returns the pixel at (row, col).
func (p *PixelBuffer) At(row, col int) RGB { return p.Pix[row*p.Cols+col] }

func (p *PixelBuffer) set(row, col int, c RGB) { p.Pix[row*p.Cols+col] = c }

// Image converts the buffer to an RGBA image for encoding. Grid rows map to
// image Y, grid columns to image X.
func (p *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Cols, p.Rows))
	for row := 0; row < p.Rows; row++ {
		for col := 0; col < p.Cols; col++ {
			c := p.At(row, col)
			img.SetRGBA(col, row, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

package imaging

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"terramesh/internal/render"
)

func testBuffer() *render.PixelBuffer {
	pb := &render.PixelBuffer{Rows: 2, Cols: 3, Pix: make([]render.RGB, 6)}
	for i := range pb.Pix {
		pb.Pix[i] = render.RGB{R: uint8(40 * i), G: 10, B: 200}
	}
	return pb
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, Write(path, testBuffer()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(200*0x101), b)
}

func TestWriteBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bmp")
	require.NoError(t, Write(path, testBuffer()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := bmp.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}

func TestWriteUnwritablePath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "out.png"), testBuffer())
	assert.Error(t, err, "unwritable destination must surface an error")
}

// bmp package implements a bitmap reader for uncompressed 1, 4, 8 and 24 bit files
package bmp

import (
	"image"
	"image/color"
)

type Pixel struct {
	R, G, B uint8
}

// PixelGrid holds decoded pixels row-major, first row at the top of the image.
// A grid is never modified once handed out; operations return new grids.
type PixelGrid [][]Pixel

// Returns the Pixels in bytes as BGR (Blue, Green, Red)
func (p Pixel) BytesBGR() []byte {
	return []byte{p.B, p.G, p.R}
}

// NewPixelGrid allocates a black grid of the given size.
func NewPixelGrid(width, height int) PixelGrid {
	pixels := make(PixelGrid, height)
	for i := 0; i < height; i++ {
		pixels[i] = make([]Pixel, width)
	}
	return pixels
}

func (g PixelGrid) Height() int {
	return len(g)
}

func (g PixelGrid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Empty reports whether the grid has no pixels at all.
func (g PixelGrid) Empty() bool {
	return g.Width() == 0 || g.Height() == 0
}

// Returns a Copy of the grid
func (g PixelGrid) Clone() PixelGrid {
	if g == nil {
		return nil
	}

	pixels := make(PixelGrid, len(g))
	for row := range g {
		pixels[row] = make([]Pixel, len(g[row]))
		copy(pixels[row], g[row])
	}
	return pixels
}

// ToRGBA copies the grid into an opaque *image.RGBA.
func (g PixelGrid) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y, row := range g {
		for x, p := range row {
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// GridFromImage copies any image.Image into a grid, dropping alpha.
func GridFromImage(img image.Image) PixelGrid {
	bounds := img.Bounds()
	pixels := NewPixelGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pixels[y][x] = Pixel{R: c.R, G: c.G, B: c.B}
		}
	}
	return pixels
}

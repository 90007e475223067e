package utils

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/anas-shakeel/bmpview/internal/bmp"
)

// FitWidth shrinks grid so that it fits in the given number of terminal
// columns, keeping its aspect ratio. Grids that already fit are returned as is.
func FitWidth(grid bmp.PixelGrid, columns int) bmp.PixelGrid {
	maxWidth := max(1, columns/len(Block))
	if grid.Empty() || grid.Width() <= maxWidth {
		return grid
	}

	height := max(1, grid.Height()*maxWidth/grid.Width())
	src := grid.ToRGBA()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return bmp.GridFromImage(dst)
}

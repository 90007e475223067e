// Adjusts image dimensions, orientation, or structure.
package adjustments

import (
	"math"

	"github.com/anas-shakeel/bmpview/internal/bmp"
)

// Resize scales the grid by factor using nearest-neighbor sampling and
// returns a new grid. Each target dimension is floor(size*factor), but never
// less than 1.
//
// An upscale that would produce more than bmp.MaxPixels pixels is reduced to
// the largest factor that fits, the same on both axes. Factors of 1 or less are
// never reduced.
//
// A target pixel (x, y) samples source (x*width/newWidth, y*height/newHeight),
// truncated and clamped to the last column/row. That index mapping biases
// samples toward the top-left; callers rely on it staying exactly this way.
func Resize(grid bmp.PixelGrid, factor float64) bmp.PixelGrid {
	if grid.Empty() {
		return nil
	}

	width, height := grid.Width(), grid.Height()
	newWidth, newHeight := targetSize(width, height, factor)

	resized := make(bmp.PixelGrid, newHeight)
	for row := 0; row < newHeight; row++ { // Height | Rows
		srcRow := sourceIndex(row, height, newHeight)
		resized[row] = make([]bmp.Pixel, newWidth)

		for col := 0; col < newWidth; col++ { // Width | Columns
			resized[row][col] = grid[srcRow][sourceIndex(col, width, newWidth)]
		}
	}

	return resized
}

func targetSize(width, height int, factor float64) (int, int) {
	if factor > 1 {
		limit := math.Sqrt(float64(bmp.MaxPixels) / (float64(width) * float64(height)))
		if factor > limit {
			factor = max(1, limit)
		}
	}
	return scaledDimension(width, factor), scaledDimension(height, factor)
}

func scaledDimension(size int, factor float64) int {
	scaled := math.Floor(float64(size) * factor)
	if math.IsNaN(scaled) || scaled < 1 {
		return 1
	}
	return int(scaled)
}

func sourceIndex(target, size, newSize int) int {
	return min(target*size/newSize, size-1)
}

// Filters perform color manipulation and per-pixel operations
package filters

import (
	"errors"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/anas-shakeel/bmpview/internal/adjustments"
	"github.com/anas-shakeel/bmpview/internal/bmp"
)

// ChannelMask selects which color channels survive processing.
type ChannelMask struct {
	Red, Green, Blue bool
}

var AllChannels = ChannelMask{Red: true, Green: true, Blue: true}

// ParseChannels builds a mask from the enabled channel letters, e.g. "rb".
func ParseChannels(channels string) (ChannelMask, error) {
	var mask ChannelMask
	for _, c := range strings.ToLower(channels) {
		switch c {
		case 'r':
			mask.Red = true
		case 'g':
			mask.Green = true
		case 'b':
			mask.Blue = true
		default:
			return ChannelMask{}, errors.New("invalid color channel: only r, g, and b are supported")
		}
	}
	return mask, nil
}

func (m ChannelMask) String() string {
	var sb strings.Builder
	if m.Red {
		sb.WriteByte('r')
	}
	if m.Green {
		sb.WriteByte('g')
	}
	if m.Blue {
		sb.WriteByte('b')
	}
	return sb.String()
}

// Apply zeroes the disabled channels of p.
func (m ChannelMask) Apply(p bmp.Pixel) bmp.Pixel {
	if !m.Red {
		p.R = 0
	}
	if !m.Green {
		p.G = 0
	}
	if !m.Blue {
		p.B = 0
	}
	return p
}

// Brightness scales the luma of p by factor and leaves chroma alone.
// 1.0 keeps the pixel (within rounding), 0.0 removes all luma.
func Brightness(p bmp.Pixel, factor float64) bmp.Pixel {
	y, u, v := RGBToYUV(float64(p.R)/255, float64(p.G)/255, float64(p.B)/255)
	r, g, b := YUVToRGB(y*factor, u, v)
	return bmp.Pixel{R: toChannel(r), G: toChannel(g), B: toChannel(b)}
}

func toChannel(v float64) uint8 {
	return uint8(lo.Clamp(math.Round(v*255), 0, 255))
}

// Process resizes grid by scale, applies brightness and finally masks
// channels. Masking happens after the color round trip, so a disabled channel
// still feeds the luma of its pixel.
//
// grid is not modified. An empty grid gives an empty (nil) result.
// brightness is expected in [0, 1] and is not checked here.
func Process(grid bmp.PixelGrid, brightness, scale float64, mask ChannelMask) bmp.PixelGrid {
	if grid.Empty() {
		return nil
	}

	// Resize always allocates, so the pixels can be rewritten in place
	processed := adjustments.Resize(grid, scale)
	for row := range processed {
		for col, p := range processed[row] {
			processed[row][col] = mask.Apply(Brightness(p, brightness))
		}
	}

	return processed
}

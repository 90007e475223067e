package bmp

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSignature    = errors.New("invalid file: provided file is not a bitmap")
	ErrTruncatedHeader     = errors.New("truncated file: bitmap header is incomplete")
	ErrInvalidDimensions   = errors.New("invalid bitmap: width must be positive and height non-zero")
	ErrUnsupportedBitDepth = errors.New("unsupported BMP format")
	ErrTruncatedPalette    = errors.New("truncated file: color table is incomplete")
	ErrTruncatedPixelData  = errors.New("truncated file: pixel array is incomplete")
)

// UnsupportedBitDepthError carries the bit count of a bitmap that is not
// 1, 4, 8 or 24 bits-per-pixel.
type UnsupportedBitDepthError struct {
	BitsPerPixel uint16
}

func (e *UnsupportedBitDepthError) Error() string {
	return fmt.Sprintf("%v: %d bits-per-pixel (only 1, 4, 8 and 24 are supported)", ErrUnsupportedBitDepth, e.BitsPerPixel)
}

func (e *UnsupportedBitDepthError) Is(target error) bool {
	return target == ErrUnsupportedBitDepth
}

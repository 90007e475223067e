package bmp

import (
	"bytes"
	"encoding/binary"
)

// MaxPixels bounds width*height so a tiny header can't request a huge grid.
// At 3 bytes per Pixel the largest grid takes 192 MiB.
const MaxPixels = 1 << 26

// Decoder reads BMP files held in memory.
//
// Pixel data shorter than the header promises is read as zeros unless Strict
// is set, in which case Decode fails with ErrTruncatedPixelData. Either way
// the rule is the same for every bit depth.
type Decoder struct {
	Strict bool
}

// Decode parses data with the default (zero-filling) Decoder.
func Decode(data []byte) (BitmapHeader, PixelGrid, error) {
	return Decoder{}.Decode(data)
}

// Info parses and validates the headers without touching the color table
// or the pixel array.
func Info(data []byte) (BitmapHeader, error) {
	if len(data) >= 2 && (data[0] != 'B' || data[1] != 'M') {
		return BitmapHeader{}, ErrInvalidSignature
	}
	if len(data) < HeaderSize {
		return BitmapHeader{}, ErrTruncatedHeader
	}

	// Both structs are packed, so binary.Read lands every field on its
	// documented offset (Width at 18, BitCount at 28, ColorsUsed at 46...).
	r := bytes.NewReader(data[:HeaderSize])
	var bfHeader BitmapFileHeader
	var biHeader BitmapInfoHeader
	if err := binary.Read(r, binary.LittleEndian, &bfHeader); err != nil {
		return BitmapHeader{}, ErrTruncatedHeader
	}
	if err := binary.Read(r, binary.LittleEndian, &biHeader); err != nil {
		return BitmapHeader{}, ErrTruncatedHeader
	}

	header := BitmapHeader{
		FileSize:        bfHeader.Size,
		PixelDataOffset: bfHeader.OffBits,
		Width:           biHeader.Width,
		Height:          biHeader.Height,
		BitsPerPixel:    biHeader.BitCount,
		ColorsUsed:      biHeader.ColorsUsed,
	}

	switch header.BitsPerPixel {
	case 1, 4, 8, 24:
	default:
		return BitmapHeader{}, &UnsupportedBitDepthError{BitsPerPixel: header.BitsPerPixel}
	}

	if header.Width <= 0 || header.Height == 0 {
		return BitmapHeader{}, ErrInvalidDimensions
	}
	if int64(header.Width)*int64(header.AbsHeight()) > MaxPixels {
		return BitmapHeader{}, ErrInvalidDimensions
	}

	return header, nil
}

// Decode parses the headers, the color table and the pixel array of a BMP
// file. The returned grid is always top-to-bottom.
func (d Decoder) Decode(data []byte) (BitmapHeader, PixelGrid, error) {
	header, err := Info(data)
	if err != nil {
		return BitmapHeader{}, nil, err
	}

	var palette []Pixel
	if header.Indexed() {
		palette, err = readPalette(data, header.ColorsUsed, header.BitsPerPixel)
		if err != nil {
			return BitmapHeader{}, nil, err
		}
	}

	width := int(header.Width)
	height := header.AbsHeight()
	stride := header.Stride()

	var pixelData []byte
	if int64(header.PixelDataOffset) < int64(len(data)) {
		pixelData = data[header.PixelDataOffset:]
	}
	if d.Strict && int64(stride)*int64(height) > int64(len(pixelData)) {
		return BitmapHeader{}, nil, ErrTruncatedPixelData
	}

	// One backing array instead of an allocation per row
	backing := make([]Pixel, width*height)
	pixels := make(PixelGrid, height)
	scratch := make([]byte, stride)
	for i := 0; i < height; i++ {
		// Bottom-up files store the top row last
		diskRow := height - i - 1
		if header.TopDown() {
			diskRow = i
		}

		scanline := rowSlice(pixelData, diskRow, stride, scratch)
		pixels[i] = backing[i*width : (i+1)*width : (i+1)*width]
		unpackRow(pixels[i], scanline, header.BitsPerPixel, palette)
	}

	return header, pixels, nil
}

// rowSlice returns the stride bytes of a disk row. Rows running past the end
// of the pixel array are copied into scratch and zero-padded.
func rowSlice(pixelData []byte, diskRow, stride int, scratch []byte) []byte {
	start := diskRow * stride
	end := start + stride
	if end <= len(pixelData) {
		return pixelData[start:end]
	}

	clear(scratch)
	if start < len(pixelData) {
		copy(scratch, pixelData[start:])
	}
	return scratch
}

// unpackRow fills row from one padded scanline.
func unpackRow(row []Pixel, scanline []byte, bitsPerPixel uint16, palette []Pixel) {
	for x := range row {
		switch bitsPerPixel {
		case 1:
			bit := 7 - uint(x%8) // MSB is the leftmost pixel
			row[x] = lookup(palette, int(scanline[x/8]>>bit)&1)
		case 4:
			shift := uint(4) // High nibble first
			if x%2 == 1 {
				shift = 0
			}
			row[x] = lookup(palette, int(scanline[x/2]>>shift)&0x0f)
		case 8:
			row[x] = lookup(palette, int(scanline[x]))
		case 24:
			i := x * 3
			row[x] = Pixel{R: scanline[i+2], G: scanline[i+1], B: scanline[i]}
		}
	}
}

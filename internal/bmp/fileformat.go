// BMP-specific structs and types
package bmp

import "fmt"

// Sizes of the two on-disk headers. The color table (if any) starts right
// after them, at offset HeaderSize.
const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeaderSize     = FileHeaderSize + InfoHeaderSize
)

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

type BitmapFileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].

type BitmapInfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels (negative means top-down rows)
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes).
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// BitmapHeader is the subset of both headers the decoder works with.
// It is a plain value; nothing in it changes after parsing.
type BitmapHeader struct {
	FileSize        uint32
	PixelDataOffset uint32
	Width           int32
	Height          int32 // Sign encodes row order, see TopDown
	BitsPerPixel    uint16
	ColorsUsed      uint32
}

// TopDown reports whether rows are stored top-to-bottom on disk.
func (h BitmapHeader) TopDown() bool {
	return h.Height < 0
}

// AbsHeight returns the pixel height regardless of row order.
func (h BitmapHeader) AbsHeight() int {
	height := int(h.Height)
	if height < 0 {
		return -height
	}
	return height
}

// Stride returns the padded length of a single scanline in bytes.
func (h BitmapHeader) Stride() int {
	return BytesPerRow(int(h.Width), int(h.BitsPerPixel))
}

// Indexed reports whether pixels are palette indexes.
func (h BitmapHeader) Indexed() bool {
	return h.BitsPerPixel != 24
}

// PaletteSize returns the number of color table entries the bitmap carries.
func (h BitmapHeader) PaletteSize() int {
	if !h.Indexed() {
		return 0
	}
	if h.ColorsUsed != 0 {
		return int(h.ColorsUsed)
	}
	return 1 << h.BitsPerPixel
}

// Describe returns the metadata as "Label: value" lines (in human-readable format)
func (h BitmapHeader) Describe() []string {
	orientation := "bottom-up"
	if h.TopDown() {
		orientation = "top-down"
	}

	lines := []string{
		fmt.Sprintf("Filesize: \t%v bytes", h.FileSize),
		fmt.Sprintf("Width: \t\t%v px", h.Width),
		fmt.Sprintf("Height: \t%v px", h.AbsHeight()),
		fmt.Sprintf("BitCount: \t%vbits", h.BitsPerPixel),
		fmt.Sprintf("PixelOffset: \t%v bytes", h.PixelDataOffset),
		fmt.Sprintf("Stride: \t%v bytes", h.Stride()),
		fmt.Sprintf("Rows: \t\t%v", orientation),
	}
	if h.Indexed() {
		lines = append(lines, fmt.Sprintf("Palette: \t%v colors", h.PaletteSize()))
	}
	return lines
}

// BytesPerRow returns the on-disk row length: BMP pads every scanline to a
// 4-byte boundary.
func BytesPerRow(width, bitsPerPixel int) int {
	bitsPerRow := width * bitsPerPixel
	return ((bitsPerRow + 31) / 32) * 4
}

package bmp

import (
	"bytes"
	"encoding/binary"
)

// fixture describes a synthetic bitmap. Rows are given in disk order without
// padding; bytes() pads them to the stride.
type fixture struct {
	width      int32
	height     int32
	bpp        uint16
	colorsUsed uint32
	palette    []Pixel
	gap        int // bytes between the color table and the pixel array
	rows       [][]byte
}

func (f fixture) bytes() []byte {
	stride := BytesPerRow(int(f.width), int(f.bpp))
	offset := HeaderSize + len(f.palette)*4 + f.gap
	fileSize := offset + stride*len(f.rows)

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, BitmapFileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(fileSize),
		OffBits: uint32(offset),
	})
	binary.Write(&buf, binary.LittleEndian, BitmapInfoHeader{
		Size:       InfoHeaderSize,
		Width:      f.width,
		Height:     f.height,
		Planes:     1,
		BitCount:   f.bpp,
		ColorsUsed: f.colorsUsed,
	})

	for _, p := range f.palette {
		buf.Write(append(p.BytesBGR(), 0))
	}
	buf.Write(make([]byte, f.gap))

	for _, row := range f.rows {
		padded := make([]byte, stride)
		copy(padded, row)
		buf.Write(padded)
	}

	return buf.Bytes()
}

package bmp

// readPalette loads the color table that follows the 54-byte header. The
// table always starts at offset HeaderSize, whatever OffBits says.
func readPalette(data []byte, colorsUsed uint32, bitsPerPixel uint16) ([]Pixel, error) {
	count := uint64(colorsUsed)
	if count == 0 {
		count = 1 << bitsPerPixel
	}
	if HeaderSize+count*4 > uint64(len(data)) {
		return nil, ErrTruncatedPalette
	}

	palette := make([]Pixel, count)
	for i := range palette {
		entry := data[HeaderSize+i*4:]
		// On disk: blue, green, red, reserved
		palette[i] = Pixel{R: entry[2], G: entry[1], B: entry[0]}
	}
	return palette, nil
}

// lookup resolves a palette index. Indexes past the end of the table are black.
func lookup(palette []Pixel, index int) Pixel {
	if index >= len(palette) {
		return Pixel{}
	}
	return palette[index]
}

// Package utils holds the terminal helpers used to display decoded bitmaps.
package utils

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/anas-shakeel/bmpview/internal/bmp"
)

// DefaultColumns is used when the terminal width can't be determined.
const DefaultColumns = 80

// Block is what a single pixel is drawn as: two cells, roughly square.
const Block = "  "

// Returns a block of text with the given background color. The color is
// always emitted, also when stdout is not a terminal: without it the block is
// just blank space.
func ColoredBlock(block string, red int, green int, blue int) string {
	c := color.BgRGB(red, green, blue)
	c.EnableColor()
	return c.Sprint(block)
}

// PrintGrid writes the grid to w, one colored block per pixel.
func PrintGrid(w io.Writer, grid bmp.PixelGrid) error {
	var sb strings.Builder
	for _, row := range grid {
		sb.Reset()
		for _, p := range row {
			sb.WriteString(ColoredBlock(Block, int(p.R), int(p.G), int(p.B)))
		}
		sb.WriteByte('\n')

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// TerminalColumns returns the width of the terminal attached to f. COLUMNS
// takes precedence; anything that isn't a terminal gets DefaultColumns.
func TerminalColumns(f *os.File) int {
	if columns, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && columns > 0 {
		return columns
	}
	if !isatty.IsTerminal(f.Fd()) {
		return DefaultColumns
	}
	if columns := terminalWidth(int(f.Fd())); columns > 0 {
		return columns
	}
	return DefaultColumns
}

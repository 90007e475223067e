package cmd

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xbmp "golang.org/x/image/bmp"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()

	stdout, _, err := executeWithStderr(t, stdin, args...)
	return stdout, err
}

func executeWithStderr(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()

	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(reset)
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(bytes.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeBitmap(t *testing.T, name string, img image.Image) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, xbmp.Encode(&buf, img))

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func opaque(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 90, A: 255})
		}
	}
	return img
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()

	exitCodeError := &ExitCodeError{}
	require.ErrorAs(t, err, &exitCodeError)
	assert.Equal(t, code, exitCodeError.ExitCode())
}

func TestInfo(t *testing.T) {
	path := writeBitmap(t, "small.bmp", opaque(4, 3))

	out, err := execute(t, nil, "info", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Filename: \t"+path)
	assert.Contains(t, out, "Width: \t\t4 px")
	assert.Contains(t, out, "Height: \t3 px")
	assert.Contains(t, out, "BitCount: \t24bits")
	assert.Contains(t, out, "Stride: \t12 bytes")
	assert.NotContains(t, out, "PixelCount")
}

func TestInfoKeepsArgumentOrder(t *testing.T) {
	first := writeBitmap(t, "first.bmp", opaque(2, 2))
	second := writeBitmap(t, "second.bmp", image.NewGray(image.Rect(0, 0, 5, 1)))

	out, err := execute(t, nil, "info", "--jobs", "2", "--full", second, first)
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, second), strings.Index(out, first))
	assert.Contains(t, out, "BitCount: \t8bits")
	assert.Contains(t, out, "PixelCount: \t5 pixels")
	assert.Contains(t, out, "PixelCount: \t4 pixels")
}

func TestInfoStdin(t *testing.T) {
	data, err := os.ReadFile(writeBitmap(t, "in.bmp", opaque(3, 1)))
	require.NoError(t, err)

	out, err := execute(t, data, "info", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Width: \t\t3 px")
}

func TestInfoReportsEveryFile(t *testing.T) {
	good := writeBitmap(t, "good.bmp", opaque(2, 2))
	bad := filepath.Join(t.TempDir(), "bad.bmp")
	require.NoError(t, os.WriteFile(bad, []byte("not a bitmap at all"), 0o644))

	out, stderr, err := executeWithStderr(t, nil, "info", bad, good)
	requireExitCode(t, err, ExitCodeInvalidBitmap)
	assert.Contains(t, out, "Width: \t\t2 px")

	// Each failure is printed once, followed by a single summary line.
	assert.Equal(t, 1, strings.Count(stderr, "could not decode "+bad))
	assert.Equal(t, 1, strings.Count(stderr, "Error: "))
	assert.Contains(t, stderr, "Error: 1 of 2 files could not be read")
}

func TestView(t *testing.T) {
	path := writeBitmap(t, "view.bmp", opaque(4, 2))

	out, err := execute(t, nil, "view", path)
	require.NoError(t, err)
	assert.Len(t, lines(out), 2)
	// Test output is not a terminal; pixels are still colored.
	assert.Equal(t, 8, strings.Count(out, "48;2;"))

	out, err = execute(t, nil, "view", "--scale", "2", "--brightness", "0.5", "--channels", "rg", path)
	require.NoError(t, err)
	assert.Len(t, lines(out), 4)
}

func TestViewFit(t *testing.T) {
	t.Setenv("COLUMNS", "4")
	path := writeBitmap(t, "wide.bmp", opaque(8, 4))

	out, err := execute(t, nil, "view", "--fit", path)
	require.NoError(t, err)
	assert.Len(t, lines(out), 1)
}

func TestViewErrors(t *testing.T) {
	translucent := image.NewRGBA(image.Rect(0, 0, 2, 2))
	unsupported := writeBitmap(t, "alpha.bmp", translucent)

	garbage := filepath.Join(t.TempDir(), "garbage.bmp")
	require.NoError(t, os.WriteFile(garbage, bytes.Repeat([]byte{'x'}, 80), 0o644))

	valid := writeBitmap(t, "valid.bmp", opaque(2, 2))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unsupported bit depth", []string{"view", unsupported}, ExitCodeUnsupportedBitmap},
		{"not a bitmap", []string{"view", garbage}, ExitCodeInvalidBitmap},
		{"missing file", []string{"view", filepath.Join(t.TempDir(), "nope.bmp")}, ExitCodeInvalidInput},
		{"brightness too high", []string{"view", "--brightness", "2", valid}, ExitCodeInvalidArguments},
		{"negative scale", []string{"view", "--scale", "-1", valid}, ExitCodeInvalidArguments},
		{"bad channels", []string{"view", "--channels", "xyz", valid}, ExitCodeInvalidArguments},
		{"no input", []string{"view"}, ExitCodeInvalidArguments},
		{"bad log level", []string{"--log-level", "loud", "view", valid}, ExitCodeInvalidArguments},
		{"zero jobs", []string{"info", "--jobs", "0", valid}, ExitCodeInvalidArguments},
		{"stdin twice", []string{"info", "-", "-"}, ExitCodeInvalidArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, nil, tt.args...)
			requireExitCode(t, err, tt.want)
		})
	}
}

func TestViewStrict(t *testing.T) {
	data, err := os.ReadFile(writeBitmap(t, "full.bmp", opaque(3, 3)))
	require.NoError(t, err)

	// Drop the last pixel row.
	truncated := filepath.Join(t.TempDir(), "truncated.bmp")
	require.NoError(t, os.WriteFile(truncated, data[:len(data)-12], 0o644))

	out, err := execute(t, nil, "view", truncated)
	require.NoError(t, err)
	assert.Len(t, lines(out), 3)

	_, err = execute(t, nil, "view", "--strict", truncated)
	requireExitCode(t, err, ExitCodeInvalidBitmap)
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmpview/internal/bmp"
)

var (
	// Used for flags.
	strict bool
)

const stdFilename = "-"

func addDecodeOptions(command *cobra.Command) {
	command.Flags().BoolVarP(&strict, "strict", "", false, "Fail on truncated pixel data instead of reading the missing bytes as zero.")
}

func validFile(filename string) error {
	if filename == stdFilename {
		return nil
	}

	if _, err := os.Stat(filename); err != nil {
		return err
	}

	return nil
}

// readInput reads a whole file, or stdin for "-". Decoding works on the
// complete byte slice, so nothing is streamed.
func readInput(cmd *cobra.Command, filename string) ([]byte, error) {
	if filename == stdFilename {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(filename)
}

// decodeExitCode picks the exit code for an error returned by the decoder.
func decodeExitCode(err error) int {
	if errors.Is(err, bmp.ErrUnsupportedBitDepth) {
		return ExitCodeUnsupportedBitmap
	}
	return ExitCodeInvalidBitmap
}

type ExitCodeError struct {
	originalError error
	exitCode      int
}

func (e *ExitCodeError) Error() string {
	return e.originalError.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.originalError
}

func (e *ExitCodeError) ExitCode() int {
	return e.exitCode
}

func newExitCodeError(err error, code int) *ExitCodeError {
	return &ExitCodeError{
		originalError: err,
		exitCode:      code,
	}
}

func openError(filename string, err error) error {
	return newExitCodeError(fmt.Errorf("could not open input file %s: %w", filename, err), ExitCodeInvalidInput)
}

func decodeError(filename string, err error) error {
	return newExitCodeError(fmt.Errorf("could not decode %s: %w", filename, err), decodeExitCode(err))
}

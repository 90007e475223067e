package cmd

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/anas-shakeel/bmpview/internal/bmp"
)

var (
	// Used for flags.
	jobs int
	full bool
)

func init() {
	addDecodeOptions(infoCmd)
	infoCmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "How many files to read at the same time.")
	infoCmd.Flags().BoolVarP(&full, "full", "", false, "Decode the pixel array too, not only the header.")

	rootCmd.AddCommand(infoCmd)
}

type infoReport struct {
	filename string
	header   bmp.BitmapHeader
	pixels   int
	err      error
}

var infoCmd = &cobra.Command{
	Use:   "info [input...]",
	Short: "Get the information of one or more bitmaps",
	Long:  "Get the header information of one or more bitmaps, like size, dimensions and bit depth.\n[input] can either be a file path or - for stdin. Files are read concurrently, the output keeps the order of the arguments.",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}

		if jobs < 1 {
			return newExitCodeError(fmt.Errorf("jobs must be at least 1, got %d", jobs), ExitCodeInvalidArguments)
		}

		if lo.Count(args, stdFilename) > 1 {
			return newExitCodeError(errors.New("stdin can only be used as input once"), ExitCodeInvalidArguments)
		}

		for _, filename := range args {
			if err := validFile(filename); err != nil {
				return openError(filename, err)
			}
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		reports := make([]infoReport, len(args))

		g := new(errgroup.Group)
		g.SetLimit(jobs)
		for i, filename := range args {
			i, filename := i, filename
			g.Go(func() error {
				// Failures are reported per file, they don't cancel the others.
				reports[i] = inspect(cmd, filename)
				return nil
			})
		}
		g.Wait()

		var firstErr *ExitCodeError
		failed := 0
		for i, report := range reports {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("Filename: \t%v\n", report.filename)

			if report.err != nil {
				cmd.PrintErrf("%v\n", report.err)
				failed++
				if firstErr == nil {
					errors.As(report.err, &firstErr)
				}
				continue
			}

			for _, line := range report.header.Describe() {
				cmd.Println(line)
			}
			if full {
				cmd.Printf("PixelCount: \t%v pixels\n", report.pixels)
			}
		}

		if failed == 0 {
			return nil
		}
		// The per-file errors are already printed, so only summarize here.
		return newExitCodeError(fmt.Errorf("%d of %d files could not be read", failed, len(args)), firstErr.ExitCode())
	},
}

func inspect(cmd *cobra.Command, filename string) infoReport {
	report := infoReport{filename: filename}
	start := time.Now()

	data, err := readInput(cmd, filename)
	if err != nil {
		report.err = openError(filename, err)
		return report
	}

	if full {
		header, pixels, err := bmp.Decoder{Strict: strict}.Decode(data)
		if err != nil {
			report.err = decodeError(filename, err)
			return report
		}
		report.header = header
		report.pixels = pixels.Width() * pixels.Height()
	} else {
		header, err := bmp.Info(data)
		if err != nil {
			report.err = decodeError(filename, err)
			return report
		}
		report.header = header
	}

	logger.Debug("read bitmap", "file", filename, "width", report.header.Width, "height", report.header.AbsHeight(), "bpp", report.header.BitsPerPixel, "elapsed", time.Since(start))
	return report
}

package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmpview/internal/bmp"
	"github.com/anas-shakeel/bmpview/internal/filters"
	"github.com/anas-shakeel/bmpview/internal/utils"
)

var (
	// Used for flags.
	brightness float64
	scale      float64
	channels   string
	fit        bool
)

func init() {
	addDecodeOptions(viewCmd)
	viewCmd.Flags().Float64VarP(&brightness, "brightness", "b", 1, "Brightness factor between 0 and 1, applied to the luma only.")
	viewCmd.Flags().Float64VarP(&scale, "scale", "s", 1, "Scale factor (nearest-neighbor), e.g. 0.5 for half size.")
	viewCmd.Flags().StringVarP(&channels, "channels", "c", "rgb", "The color channels to keep, any combination of r, g and b.")
	viewCmd.Flags().BoolVarP(&fit, "fit", "", false, "Shrink the result to the width of the terminal.")

	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view [input]",
	Short: "Render a bitmap in the terminal",
	Long:  "Render a bitmap in the terminal using truecolor blocks.\n[input] can either be a file path or - for stdin. Scaling happens first, then brightness, then the channel mask.",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}

		if brightness < 0 || brightness > 1 || math.IsNaN(brightness) {
			return newExitCodeError(fmt.Errorf("brightness must be between 0 and 1, got %v", brightness), ExitCodeInvalidArguments)
		}

		if !(scale > 0) || math.IsInf(scale, 0) {
			return newExitCodeError(fmt.Errorf("scale must be a positive number, got %v", scale), ExitCodeInvalidArguments)
		}

		if _, err := filters.ParseChannels(channels); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}

		if err := validFile(args[0]); err != nil {
			return openError(args[0], err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		mask, _ := filters.ParseChannels(channels)

		data, err := readInput(cmd, args[0])
		if err != nil {
			return openError(args[0], err)
		}

		start := time.Now()
		header, pixels, err := bmp.Decoder{Strict: strict}.Decode(data)
		if err != nil {
			return decodeError(args[0], err)
		}
		logger.Debug("decoded bitmap", "file", args[0], "width", header.Width, "height", header.AbsHeight(), "bpp", header.BitsPerPixel, "elapsed", time.Since(start))

		start = time.Now()
		processed := filters.Process(pixels, brightness, scale, mask)
		logger.Debug("processed bitmap", "brightness", brightness, "scale", scale, "channels", mask.String(), "width", processed.Width(), "height", processed.Height(), "elapsed", time.Since(start))

		if fit {
			columns := utils.TerminalColumns(os.Stdout)
			processed = utils.FitWidth(processed, columns)
			logger.Trace("fitted to terminal", "columns", columns, "width", processed.Width())
		}

		if err := utils.PrintGrid(cmd.OutOrStdout(), processed); err != nil {
			return newExitCodeError(fmt.Errorf("could not print bitmap: %w", err), ExitCodeUnknownError)
		}

		return nil
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// VERSION is overridden at build time with -ldflags "-X ...".
var VERSION = "dev"

var (
	// Used for flags.
	logLevel string

	logger = hclog.NewNullLogger()

	rootCmd = &cobra.Command{
		Use:          "bmpview",
		Short:        "A CLI tool to inspect and view BMP files",
		Long:         `bmpview decodes uncompressed 1, 4, 8 and 24 bit BMP files and renders them in the terminal, with brightness, scale and color channel controls`,
		Version:      VERSION,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := hclog.LevelFromString(logLevel)
			if level == hclog.NoLevel {
				return newExitCodeError(fmt.Errorf("invalid log level %q", logLevel), ExitCodeInvalidArguments)
			}

			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "bmpview",
				Level:  level,
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
	}
)

// Execute executes the root command.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", "warn", "Log level: trace, debug, info, warn or error. Logs are written to stderr.")
}

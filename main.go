// bmpview inspects and renders uncompressed BMP files in the terminal.
package main

import (
	"errors"
	"os"

	"github.com/anas-shakeel/bmpview/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		exitCodeError := &cmd.ExitCodeError{}
		if errors.As(err, &exitCodeError) {
			os.Exit(exitCodeError.ExitCode())
		} else {
			os.Exit(cmd.ExitCodeInvalidArguments)
		}
	}
}

package cmd

const (
	ExitCodeUnknownError      = 1
	ExitCodeInvalidArguments  = 8
	ExitCodeInvalidInput      = 9
	ExitCodeInvalidBitmap     = 10
	ExitCodeUnsupportedBitmap = 11
)

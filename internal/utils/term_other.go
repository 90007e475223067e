//go:build !unix

package utils

func terminalWidth(fd int) int {
	return 0
}

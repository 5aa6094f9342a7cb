package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Color codes for terminal output
const (
	ColorReset = "\033[0m"

	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
)

// colorEnabled is resolved once at startup. GitHub Actions logs are not a
// tty, so review runs emit plain text there.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// Colorize wraps text with the given color code when stdout is a terminal.
func Colorize(text, color string) string {
	if !colorEnabled {
		return text
	}
	return color + text + ColorReset
}

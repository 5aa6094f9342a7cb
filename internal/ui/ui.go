// Package ui provides minimal console output helpers for prreviewer.
// Inspired by GitHub CLI design principles: minimal, clean, clear.
package ui

import (
	"fmt"
	"os"
)

// Status symbols
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "!"
)

// Success formats a success message with the success symbol.
func Success(message string) string {
	return fmt.Sprintf("%s %s", Colorize(SymbolSuccess, ColorGreen), message)
}

// Error formats an error message with the error symbol.
func Error(message string) string {
	return fmt.Sprintf("%s %s", Colorize(SymbolError, ColorRed), message)
}

// Warning formats a warning message with the warning symbol.
func Warning(message string) string {
	return fmt.Sprintf("%s %s", Colorize(SymbolWarning, ColorYellow), message)
}

// Infof prints an informational message to stdout.
func Infof(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// Warnf prints a warning to stderr. Used by every degrade-and-continue
// branch so skipped work is always visible in the action log.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, Warning(fmt.Sprintf(format, args...)))
}

// Errorf prints an error message to stderr without terminating.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, Error(fmt.Sprintf(format, args...)))
}

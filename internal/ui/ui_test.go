package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFormatting(t *testing.T) {
	// Colors are disabled outside a tty, so test runs see bare symbols.
	assert.Contains(t, Success("posted review"), SymbolSuccess)
	assert.Contains(t, Success("posted review"), "posted review")
	assert.Contains(t, Error("fetch failed"), SymbolError)
	assert.Contains(t, Warning("skipping hunk"), SymbolWarning)
}

func TestColorizeDisabledWithoutTTY(t *testing.T) {
	original := colorEnabled
	defer func() { colorEnabled = original }()

	colorEnabled = false
	assert.Equal(t, "plain", Colorize("plain", ColorRed))

	colorEnabled = true
	assert.Equal(t, ColorRed+"loud"+ColorReset, Colorize("loud", ColorRed))
}

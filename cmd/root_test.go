package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmdHasSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["review"])
	assert.True(t, names["reply"])
	assert.True(t, names["version"])
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2026-01-01")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "pr-reviewer version 1.2.3")
	assert.Contains(t, out.String(), "Commit: abc1234")
}

func TestRootRejectsUnknownArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected-arg"})

	assert.Error(t, cmd.Execute())
}

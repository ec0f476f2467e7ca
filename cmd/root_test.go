package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"questions", "catalog", "assess", "match", "plan", "strategies", "history", "serve"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "advisor-cli", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestAnswerFlags_Registered(t *testing.T) {
	for _, c := range []struct {
		name  string
		flags []string
	}{
		{"assess", []string{"answers", "answer", "interactive", "user", "save", "export-dir", "format"}},
		{"match", []string{"answers", "answer", "interactive", "format", "output", "parallel"}},
		{"plan", []string{"answers", "answer", "interactive", "portfolio", "format", "output"}},
		{"strategies", []string{"answers", "answer", "interactive", "format", "list"}},
	} {
		cmd, _, err := rootCmd.Find([]string{c.name})
		require.NoError(t, err)
		for _, f := range c.flags {
			assert.NotNil(t, cmd.Flags().Lookup(f), "%s should have --%s", c.name, f)
		}
	}
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestHistoryCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range historyCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"list", "show", "delete"} {
		assert.True(t, names[name], "history should have subcommand %q", name)
	}

	flag := historyListCmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "50", flag.DefValue)
}

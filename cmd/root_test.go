package cmd

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lista/internal/cli"
)

func TestRootCmd_Tree(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"list", "create"},
		{"list", "ls"},
		{"list", "delete"},
		{"list", "show"},
		{"item", "add"},
		{"item", "ls"},
		{"item", "rm"},
		{"item", "clear"},
		{"clear-all"},
		{"prune"},
	} {
		found, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

func TestRootCmd_GlobalFlagsReachContext(t *testing.T) {
	root := NewRootCmd()

	var got cli.Settings
	probe := &cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			got = cli.SettingsFromContext(cmd.Context())
			return nil
		},
	}
	root.AddCommand(probe)
	root.SetArgs([]string{"--config", "/tmp/lista.yaml", "--backend", "file", "--ephemeral", "probe"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, cli.Settings{ConfigPath: "/tmp/lista.yaml", Backend: "file", Ephemeral: true}, got)
}

func TestRootCmd_EphemeralCommandsRun(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LISTA_DATA_DIR", t.TempDir())

	root := NewRootCmd()
	root.SetArgs([]string{"--ephemeral", "list", "ls", "--quiet"})

	assert.NoError(t, root.ExecuteContext(context.Background()))
}

func TestRun_UsageErrorsExitWithUsageCode(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LISTA_DATA_DIR", t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{"missing required flag", []string{"--ephemeral", "item", "rm"}},
		{"unknown flag", []string{"--ephemeral", "list", "ls", "--bogus"}},
		{"bad flag value", []string{"--ephemeral", "item", "rm", "--index", "two"}},
		{"missing argument", []string{"--ephemeral", "item", "add"}},
		{"unknown command", []string{"--ephemeral", "frobnicate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(context.Background(), tt.args)
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
		})
	}
}

func TestRun_CommandErrorsKeepTheirCode(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LISTA_DATA_DIR", t.TempDir())

	err := Run(context.Background(), []string{"--ephemeral", "list", "show", "--id", "missing"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	assert.NoError(t, Run(context.Background(), []string{"--ephemeral", "list", "ls", "--quiet"}))
}

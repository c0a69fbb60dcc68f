// Package cmd holds the root of the lista command tree
package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/cli/data"
	"github.com/thenoetrevino/lista/internal/cli/item"
	"github.com/thenoetrevino/lista/internal/cli/list"
	"github.com/thenoetrevino/lista/internal/launcher"
)

// NewRootCmd builds the lista command tree
func NewRootCmd() *cobra.Command {
	var settings cli.Settings

	rootCmd := &cobra.Command{
		Use:   "lista",
		Short: "Lista - named lists in your terminal",
		Long: `Lista keeps named lists of free-text items, plus a grocery list that is
always there. Run without arguments to open the terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// cobra checks required flags after this hook; check them here so
			// the error carries the usage exit code
			if err := cmd.ValidateRequiredFlags(); err != nil {
				return cli.Exit(cli.ExitUsage, err)
			}
			if err := cmd.ValidateFlagGroups(); err != nil {
				return cli.Exit(cli.ExitUsage, err)
			}
			cmd.SetContext(cli.WithSettings(cmd.Context(), settings))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), settings)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.Exit(cli.ExitUsage, err)
	})

	rootCmd.PersistentFlags().StringVar(&settings.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/lista/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&settings.Backend, "backend", "", "Storage backend: sqlite, file, memory or redis")
	rootCmd.PersistentFlags().BoolVar(&settings.Ephemeral, "ephemeral", false, "Keep data in memory only")

	rootCmd.AddCommand(list.ListCmd())
	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(data.ClearAllCmd())
	rootCmd.AddCommand(data.PruneCmd())

	return rootCmd
}

// Run executes the command tree with args. Errors raised before a command
// starts (unknown commands, bad arguments, bad flags) exit with cli.ExitUsage.
func Run(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)

	started := false
	preRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := preRun(cmd, args); err != nil {
			return err
		}
		started = true
		return nil
	}

	err := root.ExecuteContext(ctx)
	if err == nil || started {
		return err
	}
	var codeErr *cli.CodeError
	if errors.As(err, &codeErr) {
		return err
	}
	return cli.Exit(cli.ExitUsage, err)
}

// Execute runs the command tree with the process arguments
func Execute(ctx context.Context) error {
	return Run(ctx, os.Args[1:])
}

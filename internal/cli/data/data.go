// Package data holds the cli commands that act on all stored data at once
//
// e.g., lista clear-all, lista prune
package data

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
)

// ClearAllCmd returns the clear-all command
func ClearAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-all",
		Short: "Delete every list and every item",
		Long: `Delete every list, the items of every list and the grocery list.

Removal is best effort: it stops at the first failure and does not roll back
what was already removed.`,
		RunE: runClearAll,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runClearAll(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	// Ask for confirmation unless force or quiet mode
	if !force && !quietMode && !jsonOutput {
		if !cli.Confirm(cmd, "Delete ALL lists and items? This cannot be undone") {
			return nil
		}
	}

	if err := cliInstance.App.ListService.ClearAll(ctx); err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.JSONResult(map[string]any{})
	}

	fmt.Println("✓ All data cleared")
	return nil
}

// PruneCmd returns the prune command
func PruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove item data left behind by deleted lists",
		RunE:  runPrune,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (removed ids only)")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	removed, err := cliInstance.App.ListService.Prune(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		return formatter.Success(removed)
	}

	if jsonOutput {
		return formatter.JSONResult(map[string]any{"removed": removed})
	}

	if len(removed) == 0 {
		fmt.Println("Nothing to prune")
		return nil
	}
	fmt.Printf("✓ Removed item data of %d deleted list(s)\n", len(removed))
	return nil
}

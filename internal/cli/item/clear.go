package item

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
)

// ClearCmd returns the item clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item of a list",
		Long:  "Remove every item of a list (requires confirmation unless --force or --quiet).",
		RunE:  runClear,
	}

	cmd.Flags().String("list", "", "List ID (defaults to the grocery list)")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	listID, _ := cmd.Flags().GetString("list")
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

	if listID != "" {
		if _, err := cliInstance.App.ListService.GetList(ctx, listID); err != nil {
			return formatter.Fail(err)
		}
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !quietMode && !jsonOutput {
		if !cli.Confirm(cmd, fmt.Sprintf("Remove every item from %s?", listLabel(listID))) {
			return nil
		}
	}

	if err := cliInstance.App.ListService.ClearItems(ctx, listID); err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.JSONResult(map[string]any{"list_id": listID})
	}

	fmt.Printf("✓ Cleared %s\n", listLabel(listID))
	return nil
}

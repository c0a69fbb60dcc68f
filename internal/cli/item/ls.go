package item

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
)

// LsCmd returns the item ls subcommand
func LsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the items of a list",
		RunE:    runLs,
	}

	cmd.Flags().String("list", "", "List ID (defaults to the grocery list)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (item text only)")

	return cmd
}

func runLs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	listID, _ := cmd.Flags().GetString("list")
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

	items, err := cliInstance.App.ListService.GetItems(ctx, listID)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		return formatter.Success(items)
	}

	if jsonOutput {
		return formatter.JSONResult(map[string]any{"list_id": listID, "items": items})
	}

	if len(items) == 0 {
		fmt.Printf("No items in %s\n", listLabel(listID))
		return nil
	}

	fmt.Printf("Found %d item(s) in %s:\n\n", len(items), listLabel(listID))
	for i, item := range items {
		fmt.Printf("  %d. %s\n", i+1, item)
	}
	return nil
}

package item

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
)

// RmCmd returns the item rm subcommand
func RmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove an item by its number",
		Long: `Remove an item by the number shown in 'lista item ls'.

Examples:
  lista item rm --index=2
  lista item rm --list=1700000000000 --index=1
`,
		RunE: runRm,
	}

	cmd.Flags().String("list", "", "List ID (defaults to the grocery list)")
	cmd.Flags().Int("index", 0, "Item number, starting at 1 (required)")
	if err := cmd.MarkFlagRequired("index"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runRm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	listID, _ := cmd.Flags().GetString("list")
	index, _ := cmd.Flags().GetInt("index")
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

	// Numbers are shown 1-based; the service is 0-based
	removed, items, err := cliInstance.App.ListService.RemoveItem(ctx, listID, index-1)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.JSONResult(map[string]any{"list_id": listID, "removed": removed, "items": items})
	}

	fmt.Printf("✓ Removed '%s' from %s\n", removed, listLabel(listID))
	return nil
}

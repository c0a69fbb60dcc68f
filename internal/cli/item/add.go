package item

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
)

// AddCmd returns the item add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Append an item to a list",
		Long: `Append an item to a list. The arguments are joined with spaces.

Examples:
  lista item add oat milk
  lista item add --list=1700000000000 "AA batteries"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().String("list", "", "List ID (defaults to the grocery list)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	items, err := cliInstance.App.ListService.AddItem(ctx, listID, strings.Join(args, " "))
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.JSONResult(map[string]any{"list_id": listID, "items": items})
	}

	fmt.Printf("✓ Added '%s' to %s (%d item(s))\n", items[len(items)-1], listLabel(listID), len(items))
	return nil
}

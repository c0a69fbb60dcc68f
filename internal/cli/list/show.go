package list

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/tui/components"
)

// ShowCmd returns the list show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a list with its items",
		Long: `Show a list with its items.

Examples:
  lista list show --id=1700000000000
  lista list show --id=1700000000000 --markdown
`,
		RunE: runShow,
	}

	cmd.Flags().String("id", "", "List ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("markdown", false, "Render the list as a markdown checklist")
	cmd.Flags().Int("width", 80, "Wrap width for --markdown")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	listID, _ := cmd.Flags().GetString("id")
	markdown, _ := cmd.Flags().GetBool("markdown")
	width, _ := cmd.Flags().GetInt("width")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

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

	l, err := cliInstance.App.ListService.GetList(ctx, listID)
	if err != nil {
		return formatter.Fail(err)
	}
	items, err := cliInstance.App.ListService.GetItems(ctx, listID)
	if err != nil {
		return formatter.Fail(err)
	}

	if jsonOutput {
		return formatter.JSONResult(map[string]any{"list": l, "items": items})
	}

	if markdown {
		fmt.Println(components.RenderMarkdown(components.ListMarkdown(*l, items), width))
		return nil
	}

	fmt.Printf("%s (ID: %s)\n", l.Title, l.ID)
	if len(items) == 0 {
		fmt.Println("  (no items)")
		return nil
	}
	for i, item := range items {
		fmt.Printf("  %d. %s\n", i+1, item)
	}
	return nil
}

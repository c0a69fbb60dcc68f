package list

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
)

// CreateCmd returns the list create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new list",
		Long: `Create a new named list.

Examples:
  # Human-readable output
  lista list create --title="Groceries"

  # JSON output for scripts
  lista list create --title="Groceries" --json

  # Quiet mode for bash capture
  LIST_ID=$(lista list create --title="Groceries" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "List title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
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

	l, err := cliInstance.App.ListService.CreateList(ctx, title)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		fmt.Println(l.ID)
		return nil
	}

	if jsonOutput {
		return formatter.JSONResult(map[string]any{"list": l})
	}

	fmt.Printf("✓ List '%s' created successfully (ID: %s)\n", l.Title, l.ID)
	return nil
}

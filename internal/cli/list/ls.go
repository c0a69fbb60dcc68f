package list

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/lista/internal/cli"
)

// LsCmd returns the list ls subcommand
func LsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List all lists",
		RunE:    runLs,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runLs(cmd *cobra.Command, args []string) error {
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

	lists, err := cliInstance.App.ListService.GetAllLists(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		for _, l := range lists {
			fmt.Println(l.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.JSONResult(map[string]any{"lists": lists})
	}

	if len(lists) == 0 {
		fmt.Println("No lists found")
		return nil
	}

	fmt.Printf("Found %d list(s):\n\n", len(lists))
	for _, l := range lists {
		fmt.Printf("  %s  %s  (created %s)\n", l.ID, l.Title, l.Created().Format("2006-01-02 15:04"))
	}
	return nil
}

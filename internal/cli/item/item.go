// Package item holds all cli commands related to list items
//
// e.g., lista item ...
package item

import (
	"github.com/spf13/cobra"
)

// ItemCmd returns the item parent command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage the items of a list",
		Long: `Manage the items of a list.

Without --list every subcommand acts on the grocery list, the scratch list
that exists without being created.`,
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(LsCmd())
	cmd.AddCommand(RmCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}

// listLabel names the target of a command in human output
func listLabel(listID string) string {
	if listID == "" {
		return "the grocery list"
	}
	return "list " + listID
}

package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Confirm prints prompt and reads a y/N answer from the command's stdin
func Confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)

	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		fmt.Println("Cancelled")
		return false
	}
}

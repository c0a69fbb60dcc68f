package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/lista/cmd"
	"github.com/thenoetrevino/lista/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())
	if err == nil {
		return
	}

	// Command failures were already reported by the command's formatter;
	// usage errors come from cobra before any command ran
	code := cli.ExitCode(err)
	var codeErr *cli.CodeError
	if !errors.As(err, &codeErr) || code == cli.ExitUsage {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code == cli.ExitUsage {
			fmt.Fprintln(os.Stderr, "Run 'lista --help' for usage.")
		}
	}
	os.Exit(code)
}

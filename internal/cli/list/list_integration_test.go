package list

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/testutil"
	"github.com/thenoetrevino/lista/internal/testutil/cli"
)

func TestListCmd_Subcommands(t *testing.T) {
	cmd := ListCmd()
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"create", "ls", "delete", "show"}, names)
}

func TestLsLists(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	t.Run("Empty collection", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, LsCmd(), []string{})
		require.NoError(t, err)
		assert.Contains(t, output, "No lists found")
	})

	first := cli.CreateTestList(t, app, "Groceries")
	second := cli.CreateTestList(t, app, "Hardware")

	t.Run("Human output keeps creation order", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, LsCmd(), []string{})
		require.NoError(t, err)
		assert.Contains(t, output, "Found 2 list(s)")
		assert.Less(t, strings.Index(output, "Groceries"), strings.Index(output, "Hardware"))
	})

	t.Run("Quiet output lists ids", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, LsCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{first, second}, strings.Fields(output))
	})

	t.Run("JSON output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, LsCmd(), []string{"--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		lists, ok := result["lists"].([]any)
		require.True(t, ok)
		assert.Len(t, lists, 2)
	})
}

func TestDeleteList(t *testing.T) {
	ctx := context.Background()

	t.Run("Force removes the list and its items", func(t *testing.T) {
		store, app := cli.SetupCLITest(t)
		id := cli.CreateTestList(t, app, "Groceries", "milk", "eggs")

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", id, "--force"})
		require.NoError(t, err)
		assert.Contains(t, output, "List 'Groceries' deleted successfully")

		lists, err := app.ListService.GetAllLists(ctx)
		require.NoError(t, err)
		assert.Empty(t, lists)

		keys, err := store.Keys(ctx, "listItems_")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("Confirmation accepted", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		id := cli.CreateTestList(t, app, "Groceries")

		output, err := cli.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", id}, "y\n")
		require.NoError(t, err)
		assert.Contains(t, output, "Delete list 'Groceries'")
		assert.Contains(t, output, "deleted successfully")
	})

	t.Run("Confirmation declined keeps the list", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		id := cli.CreateTestList(t, app, "Groceries")

		output, err := cli.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", id}, "n\n")
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")

		lists, err := app.ListService.GetAllLists(ctx)
		require.NoError(t, err)
		assert.Len(t, lists, 1)
	})

	t.Run("Unknown id exits with not found", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)

		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "42", "--force"})
		require.Error(t, err)
		assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
	})
}

func TestShowList(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	id := cli.CreateTestList(t, app, "Groceries", "milk", "eggs")
	empty := cli.CreateTestList(t, app, "Empty")

	t.Run("Numbered items", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", id})
		require.NoError(t, err)
		assert.Contains(t, output, "Groceries")
		assert.Contains(t, output, "1. milk")
		assert.Contains(t, output, "2. eggs")
	})

	t.Run("Empty list", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", empty})
		require.NoError(t, err)
		assert.Contains(t, output, "(no items)")
	})

	t.Run("Markdown", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", id, "--markdown"})
		require.NoError(t, err)
		assert.Contains(t, output, "milk")
		assert.Contains(t, output, "eggs")
	})

	t.Run("JSON", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", id, "--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, []any{"milk", "eggs"}, result["items"])
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "nope"})
		require.Error(t, err)
		assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
	})
}

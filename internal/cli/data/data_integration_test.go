package data

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/testutil"
	"github.com/thenoetrevino/lista/internal/testutil/cli"
)

func TestClearAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Force removes everything", func(t *testing.T) {
		store, app := cli.SetupCLITest(t)
		cli.CreateTestList(t, app, "Groceries", "milk")
		cli.CreateTestList(t, app, "Hardware", "nails")
		_, err := app.ListService.AddItem(ctx, "", "apples")
		require.NoError(t, err)

		output, err := cli.ExecuteCLICommand(t, app, ClearAllCmd(), []string{"--force"})
		require.NoError(t, err)
		assert.Contains(t, output, "All data cleared")

		keys, err := store.Keys(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("Declined confirmation keeps data", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.CreateTestList(t, app, "Groceries")

		output, err := cli.ExecuteCLICommandWithInput(t, app, ClearAllCmd(), []string{}, "\n")
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")

		lists, err := app.ListService.GetAllLists(ctx)
		require.NoError(t, err)
		assert.Len(t, lists, 1)
	})

	t.Run("JSON output", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)

		output, err := cli.ExecuteCLICommand(t, app, ClearAllCmd(), []string{"--json"})
		require.NoError(t, err)
		assert.Equal(t, true, testutil.ParseJSON(t, output)["success"])
	})
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	store, app := cli.SetupCLITest(t)
	kept := cli.CreateTestList(t, app, "Groceries", "milk")
	require.NoError(t, store.Set(ctx, models.ItemsKey("ghost"), `["boo"]`))

	output, err := cli.ExecuteCLICommand(t, app, PruneCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "ghost", strings.TrimSpace(output))

	_, err = store.Get(ctx, models.ItemsKey(kept))
	assert.NoError(t, err)

	t.Run("Nothing left to prune", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, PruneCmd(), []string{})
		require.NoError(t, err)
		assert.Contains(t, output, "Nothing to prune")
	})
}

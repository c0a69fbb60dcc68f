package cli

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/kvstore"
)

// SetupCLITest creates an in-memory store and returns both the store and App instance.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*kvstore.Memory, *app.App) {
	t.Helper()
	store := kvstore.NewMemory()

	// Monotonic fake clock so list ids are predictable
	tick := time.UnixMilli(1_700_000_000_000)
	appInstance := app.New(store, app.WithClock(func() time.Time {
		tick = tick.Add(time.Millisecond)
		return tick
	}))
	t.Cleanup(func() { _ = appInstance.Close() })

	return store, appInstance
}

// CreateTestList creates a list through the service and returns its id
func CreateTestList(t *testing.T, a *app.App, title string, items ...string) string {
	t.Helper()
	ctx := context.Background()

	l, err := a.ListService.CreateList(ctx, title)
	if err != nil {
		t.Fatalf("Failed to create list %q: %v", title, err)
	}
	for _, item := range items {
		if _, err := a.ListService.AddItem(ctx, l.ID, item); err != nil {
			t.Fatalf("Failed to add item %q: %v", item, err)
		}
	}
	return l.ID
}

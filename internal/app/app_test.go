package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lista/internal/kvstore"
)

func TestNew(t *testing.T) {
	app := New(kvstore.NewMemory())
	t.Cleanup(func() { _ = app.Close() })

	require.NotNil(t, app)
	assert.NotNil(t, app.Gateway)
	assert.NotNil(t, app.ListService)
	assert.NotNil(t, app.Store())
	assert.NotNil(t, app.Logger())
}

func TestWithClock(t *testing.T) {
	app := New(kvstore.NewMemory(), WithClock(func() time.Time { return time.UnixMilli(99) }))
	t.Cleanup(func() { _ = app.Close() })

	l, err := app.ListService.CreateList(context.Background(), "Groceries")
	require.NoError(t, err)
	assert.Equal(t, "99", l.ID)
}

func TestOpenSQLitePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lista.db")
	opts := kvstore.Options{Backend: kvstore.BackendSQLite, Path: path}

	first, err := Open(ctx, opts)
	require.NoError(t, err)
	created, err := first.ListService.CreateList(ctx, "Groceries")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(ctx, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.ListService.GetList(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), kvstore.Options{Backend: "floppy"})
	assert.ErrorContains(t, err, "floppy")
}

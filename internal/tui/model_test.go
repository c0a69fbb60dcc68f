package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/kvstore"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/storage"
	"github.com/thenoetrevino/lista/internal/tui/screens"
	"github.com/thenoetrevino/lista/internal/tui/state"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: s})
}

func setupModel(t *testing.T) (Model, *kvstore.Memory) {
	t.Helper()
	store := kvstore.NewMemory()
	gw := storage.NewGateway(store, storage.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	m := InitialModel(context.Background(), gw, config.Default())
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = run(t, m, m.Init())
	require.Equal(t, screens.PhaseReady, m.Lists().Phase())
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// run executes a storage command the way the Bubble Tea loop would
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

// press sends a key and runs the storage command it returns, if any
func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	next, cmd := m.Update(keyPress(k))
	m = next.(Model)
	if cmd != nil && m.UI().Mode() != state.InputMode {
		if msg := cmd(); msg != nil {
			m = update(t, m, msg)
		}
	}
	return m
}

// submit types text into the open prompt and presses enter
func submit(t *testing.T, m Model, text string) Model {
	t.Helper()
	require.Equal(t, state.InputMode, m.UI().Mode())
	m.textInput.SetValue(text)
	next, cmd := m.Update(keyPress("enter"))
	m = next.(Model)
	if cmd != nil {
		m = update(t, m, cmd())
	}
	return m
}

func createList(t *testing.T, m Model, title string) Model {
	t.Helper()
	m = press(t, m, "a")
	m = submit(t, m, title)
	require.Equal(t, state.NormalMode, m.UI().Mode())
	return m
}

// ============================================================================
// TESTS
// ============================================================================

func TestInitialView(t *testing.T) {
	m, _ := setupModel(t)

	view := m.View()
	assert.True(t, view.AltScreen)
	assert.Contains(t, view.Content, "My Lists")
	assert.Contains(t, view.Content, "No lists yet")
}

func TestViewBeforeWindowSize(t *testing.T) {
	store := kvstore.NewMemory()
	m := InitialModel(context.Background(), storage.NewGateway(store), nil)
	assert.Equal(t, "Loading...", m.View().Content)
}

func TestCreateListFlow(t *testing.T) {
	m, store := setupModel(t)

	m = createList(t, m, "Groceries")
	assert.Len(t, m.Lists().Lists(), 1)
	assert.Contains(t, m.View().Content, "Groceries")

	raw, err := store.Get(context.Background(), models.ListsKey)
	require.NoError(t, err)
	assert.Contains(t, raw, `"title":"Groceries"`)
}

func TestCreateListRejectsBlankTitle(t *testing.T) {
	m, _ := setupModel(t)

	m = press(t, m, "a")
	m = submit(t, m, "   ")

	assert.Equal(t, state.InputMode, m.UI().Mode(), "prompt stays open")
	require.True(t, m.Notifications().HasAny())
	assert.Equal(t, models.ErrEmptyTitle.Error(), m.Notifications().All()[0].Message)
	assert.Empty(t, m.Lists().Lists())

	m = press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.UI().Mode())
}

func TestOpenListAndAddItems(t *testing.T) {
	m, store := setupModel(t)
	m = createList(t, m, "Groceries")
	id := m.Lists().Lists()[0].ID

	m = press(t, m, "enter")
	require.Equal(t, ScreenDetail, m.Screen())
	assert.Equal(t, id, m.Detail().ListID())

	m = press(t, m, "a")
	m = submit(t, m, "milk")
	m = submit(t, m, "eggs")
	assert.Equal(t, state.InputMode, m.UI().Mode(), "prompt stays open for the next item")

	m = submit(t, m, "  ")
	assert.Equal(t, state.NormalMode, m.UI().Mode(), "blank entry closes the prompt")

	assert.Equal(t, []string{"milk", "eggs"}, m.Detail().Items())
	raw, err := store.Get(context.Background(), models.ItemsKey(id))
	require.NoError(t, err)
	assert.Equal(t, `["milk","eggs"]`, raw)

	view := m.View().Content
	assert.Contains(t, view, "1. milk")
	assert.Contains(t, view, "2. eggs")
}

func TestRemoveItem(t *testing.T) {
	m, _ := setupModel(t)
	m = press(t, m, "g")
	require.True(t, m.Detail().IsScratch())

	m = press(t, m, "a")
	m = submit(t, m, "milk")
	m = submit(t, m, "eggs")
	m = press(t, m, "esc")

	m = press(t, m, "down")
	m = press(t, m, "d")
	assert.Equal(t, []string{"milk"}, m.Detail().Items())
	assert.Equal(t, 0, m.UI().Cursor(), "cursor follows the shorter list")
}

func TestDeleteListNeedsConfirmation(t *testing.T) {
	m, store := setupModel(t)
	m = createList(t, m, "Groceries")

	m = press(t, m, "d")
	require.Equal(t, state.ConfirmMode, m.UI().Mode())
	require.NotNil(t, m.Dialog())
	assert.Contains(t, m.View().Content, "Delete list")

	m = press(t, m, "n")
	assert.Equal(t, state.NormalMode, m.UI().Mode())
	assert.Len(t, m.Lists().Lists(), 1)

	m = press(t, m, "d")
	m = press(t, m, "y")
	assert.Empty(t, m.Lists().Lists())

	raw, err := store.Get(context.Background(), models.ListsKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestClearListNeedsConfirmation(t *testing.T) {
	m, _ := setupModel(t)
	m = createList(t, m, "Groceries")
	m = press(t, m, "enter")
	m = press(t, m, "a")
	m = submit(t, m, "milk")
	m = press(t, m, "esc")

	m = press(t, m, "C")
	require.Equal(t, state.ConfirmMode, m.UI().Mode())
	m = press(t, m, "esc")
	assert.Len(t, m.Detail().Items(), 1)

	m = press(t, m, "C")
	m = press(t, m, "y")
	assert.Empty(t, m.Detail().Items())
}

func TestClearAllData(t *testing.T) {
	m, store := setupModel(t)
	m = createList(t, m, "Groceries")
	m = createList(t, m, "Hardware")

	m = press(t, m, "X")
	require.NotNil(t, m.Dialog())
	assert.Equal(t, state.DialogClearAll, m.Dialog().Kind)
	m = press(t, m, "y")

	assert.Empty(t, m.Lists().Lists())
	keys, err := store.Keys(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestBackReloadsLists(t *testing.T) {
	m, _ := setupModel(t)
	m = createList(t, m, "Groceries")
	m = press(t, m, "enter")
	require.Equal(t, ScreenDetail, m.Screen())

	m = press(t, m, "esc")
	assert.Equal(t, ScreenLists, m.Screen())
	assert.Equal(t, screens.PhaseReady, m.Lists().Phase())
	assert.Len(t, m.Lists().Lists(), 1)
}

func TestHelpMode(t *testing.T) {
	m, _ := setupModel(t)

	m = press(t, m, "?")
	require.Equal(t, state.HelpMode, m.UI().Mode())
	content := m.View().Content
	assert.Contains(t, content, "Keyboard shortcuts")
	assert.Contains(t, content, "clear all data")

	m = press(t, m, "x")
	assert.Equal(t, state.NormalMode, m.UI().Mode())
}

func TestQuit(t *testing.T) {
	m, _ := setupModel(t)

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestLoadingIgnoresMutations(t *testing.T) {
	store := kvstore.NewMemory()
	m := InitialModel(context.Background(), storage.NewGateway(store), nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	load := m.Init()

	next, cmd := m.Update(keyPress("a"))
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, state.NormalMode, m.UI().Mode())
	assert.True(t, strings.Contains(m.View().Content, "loading"))

	m = run(t, m, load)
	assert.Equal(t, screens.PhaseReady, m.Lists().Phase())
}

func TestCustomKeyMappings(t *testing.T) {
	cfg := config.Default()
	cfg.KeyMappings.Add = "n"
	cfg.KeyMappings.Cancel = "c"

	store := kvstore.NewMemory()
	m := InitialModel(context.Background(), storage.NewGateway(store), cfg)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = run(t, m, m.Init())

	m = press(t, m, "n")
	assert.Equal(t, state.InputMode, m.UI().Mode())
}

func TestQueuedSaveSurvivesCancelledContext(t *testing.T) {
	store := kvstore.NewMemory()
	gw := storage.NewGateway(store, storage.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := InitialModel(ctx, gw, config.Default())
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = run(t, m, m.Init())

	// Queue the save, then cancel as a shutdown signal would before it runs
	m = press(t, m, "a")
	m.textInput.SetValue("Groceries")
	next, cmd := m.Update(keyPress("enter"))
	m = next.(Model)
	require.NotNil(t, cmd)
	cancel()

	m = update(t, m, cmd())

	drainCtx, drainCancel := context.WithTimeout(context.Background(), time.Second)
	defer drainCancel()
	require.NoError(t, m.WaitForWrites(drainCtx))
	assert.Empty(t, m.Notifications().All())

	raw, err := store.Get(context.Background(), models.ListsKey)
	require.NoError(t, err)
	assert.Contains(t, raw, `"title":"Groceries"`)
}

// Package tui is the Bubble Tea program: a lists overview and a list detail
// screen backed by the controllers in tui/screens.
package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/storage"
	"github.com/thenoetrevino/lista/internal/tui/components"
	"github.com/thenoetrevino/lista/internal/tui/screens"
	"github.com/thenoetrevino/lista/internal/tui/state"
)

// Model is the root Bubble Tea model
type Model struct {
	config *config.Config
	keys   KeyMap

	// Screen controllers share one write queue so a list delete can never
	// overtake an item save for the same list
	queue  *screens.WriteQueue
	lists  *screens.ListsScreen
	detail *screens.DetailScreen
	screen Screen

	ui            *state.UIState
	input         *state.InputState
	textInput     textinput.Model
	dialog        *state.Dialog
	notifications *state.NotificationState
}

// InitialModel builds the model over gw using the configured keys and theme.
// Cancelling ctx does not cancel storage commands already queued.
func InitialModel(ctx context.Context, gw *storage.Gateway, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	queue := screens.NewWriteQueue()

	// Storage outlives the program context so saves queued before a signal
	// can still drain on shutdown
	storageCtx := context.WithoutCancel(ctx)

	ti := textinput.New()
	ti.CharLimit = 200

	return Model{
		config:        cfg,
		keys:          NewKeyMap(cfg.KeyMappings),
		queue:         queue,
		lists:         screens.NewListsScreen(storageCtx, gw, queue),
		detail:        screens.NewDetailScreen(storageCtx, gw, queue),
		screen:        ScreenLists,
		ui:            state.NewUIState(),
		input:         state.NewInputState(),
		textInput:     ti,
		notifications: state.NewNotificationState(),
	}
}

// Init loads the lists overview
func (m Model) Init() tea.Cmd {
	return m.lists.Mount()
}

// WaitForWrites blocks until queued saves finish or ctx is done.
// Saves still queued when the program exits are otherwise lost.
func (m Model) WaitForWrites(ctx context.Context) error {
	return m.queue.Wait(ctx)
}

// Lists returns the lists overview controller
func (m Model) Lists() *screens.ListsScreen { return m.lists }

// Detail returns the list detail controller
func (m Model) Detail() *screens.DetailScreen { return m.detail }

// UI returns the UI state
func (m Model) UI() *state.UIState { return m.ui }

// Dialog returns the open confirmation dialog, if any
func (m Model) Dialog() *state.Dialog { return m.dialog }

// Notifications returns the notification state
func (m Model) Notifications() *state.NotificationState { return m.notifications }

// loading reports whether the current screen is still waiting for its data
func (m *Model) loading() bool {
	if m.screen == ScreenDetail {
		return m.detail.Phase() == screens.PhaseLoading
	}
	return m.lists.Phase() == screens.PhaseLoading
}

// saving reports whether any write is in flight
func (m *Model) saving() bool {
	return m.lists.Saving() || m.detail.Saving()
}

// rowCount is the number of selectable rows on the current screen
func (m *Model) rowCount() int {
	if m.screen == ScreenDetail {
		return len(m.detail.Items())
	}
	return len(m.lists.Lists())
}

// selectedList returns the list under the cursor on the overview
func (m *Model) selectedList() (models.ListInfo, bool) {
	lists := m.lists.Lists()
	if m.ui.Cursor() >= len(lists) {
		return models.ListInfo{}, false
	}
	return lists[m.ui.Cursor()], true
}

// collectNotices moves one-time controller notices into notifications
func (m *Model) collectNotices() {
	m.notifications.Add(state.LevelError, m.lists.TakeNotice())
	m.notifications.Add(state.LevelError, m.detail.TakeNotice())
}

// closePrompts closes any open input or dialog and returns to NormalMode
func (m *Model) closePrompts() {
	m.input.Clear()
	m.textInput.Reset()
	m.textInput.Blur()
	m.dialog = nil
	m.ui.SetMode(state.NormalMode)
}

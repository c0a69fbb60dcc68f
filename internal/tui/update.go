package tui

import (
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/tui/screens"
	"github.com/thenoetrevino/lista/internal/tui/state"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetWindowSize(msg.Width, msg.Height)
		return nil

	case screens.ListsLoadedMsg, screens.ItemsLoadedMsg, screens.SaveResultMsg:
		if !m.lists.Apply(msg) {
			m.detail.Apply(msg)
		}
		m.collectNotices()
		m.ui.ClampCursor(m.rowCount())
		return nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Anything else (cursor blink) goes to the text input while it is open
	if m.ui.Mode() == state.InputMode {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return cmd
	}
	return nil
}

// ============================================================================
// KEY HANDLING
// ============================================================================

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// Notifications are dismissed by the next key press
	m.notifications.Clear()

	switch m.ui.Mode() {
	case state.InputMode:
		return m.handleInputKey(msg)
	case state.ConfirmMode:
		return m.handleConfirmKey(msg)
	case state.HelpMode:
		m.ui.SetMode(state.NormalMode)
		return nil
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.ui.SetMode(state.HelpMode)
		return nil
	}

	if m.screen == ScreenDetail && key.Matches(msg, m.keys.Back) {
		return m.Navigate(ScreenLists, Params{})
	}

	// The loading screen accepts no mutations
	if m.loading() {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.ui.MoveCursor(1, m.rowCount())
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.ui.MoveCursor(-1, m.rowCount())
		return nil
	}

	if m.screen == ScreenDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListsKey(msg)
}

func (m *Model) handleListsKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Open):
		l, ok := m.selectedList()
		if !ok {
			return nil
		}
		return m.Navigate(ScreenDetail, Params{ListID: l.ID, Title: l.Title})

	case key.Matches(msg, m.keys.Scratch):
		return m.Navigate(ScreenDetail, Params{})

	case key.Matches(msg, m.keys.Add):
		return m.openInput(state.InputNewList, "New list", "List title")

	case key.Matches(msg, m.keys.Delete):
		l, ok := m.selectedList()
		if !ok {
			return nil
		}
		if err := m.lists.RequestDelete(l.ID); err != nil {
			m.notifications.Add(state.LevelError, err.Error())
			return nil
		}
		m.openDialog(state.DialogDeleteList, "Delete list",
			"Delete \""+l.Title+"\" and all of its items?")
		return nil

	case key.Matches(msg, m.keys.ClearAllData):
		if err := m.lists.RequestClearAll(); err != nil {
			return nil
		}
		m.openDialog(state.DialogClearAll, "Clear all data",
			"Delete every list and item? This cannot be undone.")
		return nil
	}
	return nil
}

func (m *Model) handleDetailKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Add):
		return m.openInput(state.InputNewItem, "New item", "e.g. milk")

	case key.Matches(msg, m.keys.Delete):
		cmd, err := m.detail.Remove(m.ui.Cursor())
		if err != nil {
			return nil
		}
		m.ui.ClampCursor(m.rowCount())
		return cmd

	case key.Matches(msg, m.keys.Clear):
		if len(m.detail.Items()) == 0 {
			return nil
		}
		if err := m.detail.RequestClear(); err != nil {
			return nil
		}
		m.openDialog(state.DialogClearItems, "Clear list",
			"Remove every item from \""+m.detail.Title()+"\"?")
		return nil
	}
	return nil
}

// ============================================================================
// TEXT INPUT
// ============================================================================

func (m *Model) openInput(purpose state.InputPurpose, prompt, placeholder string) tea.Cmd {
	m.input.Open(purpose, prompt)
	m.textInput.Reset()
	m.textInput.Placeholder = placeholder
	m.ui.SetMode(state.InputMode)
	return m.textInput.Focus()
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case msg.String() == "esc":
		m.closePrompts()
		return nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

func (m *Model) submitInput() tea.Cmd {
	value := m.textInput.Value()

	switch m.input.Purpose {
	case state.InputNewList:
		_, cmd, err := m.lists.CreateList(value)
		if err != nil {
			// keep the prompt open so the title can be fixed
			m.notifications.Add(state.LevelWarning, err.Error())
			return nil
		}
		m.closePrompts()
		m.ui.MoveCursor(len(m.lists.Lists()), len(m.lists.Lists()))
		return cmd

	case state.InputNewItem:
		cmd, err := m.detail.Add(value)
		if errors.Is(err, models.ErrEmptyItem) {
			m.closePrompts()
			return nil
		}
		if err != nil {
			m.notifications.Add(state.LevelWarning, err.Error())
			return nil
		}
		// stay in the prompt for the next item
		m.textInput.Reset()
		return cmd
	}

	m.closePrompts()
	return nil
}

// ============================================================================
// CONFIRMATION DIALOGS
// ============================================================================

func (m *Model) openDialog(kind state.DialogKind, title, message string) {
	m.dialog = state.NewConfirmDialog(kind, title, message,
		m.config.KeyMappings.Confirm, m.config.KeyMappings.Cancel)
	m.ui.SetMode(state.ConfirmMode)
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.dialog == nil {
		m.ui.SetMode(state.NormalMode)
		return nil
	}
	kind := m.dialog.Kind

	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.closePrompts()
		cmd, err := m.confirm(kind)
		if err != nil {
			return nil
		}
		m.ui.ClampCursor(m.rowCount())
		return cmd

	case key.Matches(msg, m.keys.Cancel):
		m.cancel(kind)
		m.closePrompts()
	}
	return nil
}

func (m *Model) confirm(kind state.DialogKind) (tea.Cmd, error) {
	switch kind {
	case state.DialogDeleteList:
		return m.lists.ConfirmDelete()
	case state.DialogClearAll:
		return m.lists.ConfirmClearAll()
	case state.DialogClearItems:
		return m.detail.ConfirmClear()
	}
	return nil, screens.ErrNothingPending
}

func (m *Model) cancel(kind state.DialogKind) {
	switch kind {
	case state.DialogDeleteList:
		m.lists.CancelDelete()
	case state.DialogClearAll:
		m.lists.CancelClearAll()
	case state.DialogClearItems:
		m.detail.CancelClear()
	}
}

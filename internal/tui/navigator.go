package tui

import tea "charm.land/bubbletea/v2"

// Screen identifies a top-level screen
type Screen int

const (
	ScreenLists Screen = iota
	ScreenDetail
)

func (s Screen) String() string {
	if s == ScreenDetail {
		return "List"
	}
	return "Lists"
}

// Params are the navigation parameters of a screen. An empty ListID on
// ScreenDetail opens the grocery scratch list.
type Params struct {
	ListID string
	Title  string
}

// Navigator switches between screens
type Navigator interface {
	Navigate(screen Screen, params Params) tea.Cmd
}

var _ Navigator = (*Model)(nil)

// Navigate shows screen and returns the command that loads its data.
// Every visit reloads so the screen never shows stale items.
func (m *Model) Navigate(screen Screen, params Params) tea.Cmd {
	m.closePrompts()
	m.ui.ResetCursor()
	m.screen = screen

	if screen == ScreenDetail {
		return m.detail.Mount(params.ListID, params.Title)
	}
	return m.lists.Mount()
}

// Screen returns the screen being shown
func (m *Model) Screen() Screen {
	return m.screen
}

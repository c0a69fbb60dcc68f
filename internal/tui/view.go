package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lista/internal/tui/components"
	"github.com/thenoetrevino/lista/internal/tui/notifications"
	"github.com/thenoetrevino/lista/internal/tui/state"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.ui.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	var body string
	switch m.ui.Mode() {
	case state.HelpMode:
		body = m.viewHelp()
	case state.ConfirmMode:
		body = m.viewDialog()
	case state.InputMode:
		body = lipgloss.JoinVertical(lipgloss.Left, m.viewScreen(), "", m.viewInput())
	default:
		body = m.viewScreen()
	}

	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:   m.ui.Width(),
		Screen:  m.screenTitle(),
		Saving:  m.saving(),
		Loading: m.loading(),
	})
	if m.notifications.HasAny() {
		footer = lipgloss.JoinVertical(lipgloss.Left, notifications.RenderAll(m.notifications.All()), footer)
	}

	gap := m.ui.Height() - lipgloss.Height(body) - lipgloss.Height(footer)
	if gap < 0 {
		gap = 0
	}
	view.Content = body + strings.Repeat("\n", gap+1) + footer
	return view
}

func (m *Model) screenTitle() string {
	if m.screen == ScreenDetail {
		return m.detail.Title()
	}
	return "My Lists"
}

// viewScreen renders the title and rows of the current screen
func (m *Model) viewScreen() string {
	title := components.TitleStyle.Render(m.screenTitle())

	if m.loading() {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", components.RenderEmpty("Loading…"))
	}

	var rows []string
	if m.screen == ScreenDetail {
		rows = m.itemRows()
	} else {
		rows = m.listRows()
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title, ""}, rows...)...)
}

func (m *Model) listRows() []string {
	lists := m.lists.Lists()
	if len(lists) == 0 {
		return []string{components.RenderEmpty("No lists yet. Press " + m.config.KeyMappings.Add + " to create one.")}
	}

	start, end := m.visibleRange(len(lists))
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, components.RenderListRow(lists[i], i == m.ui.Cursor()))
	}
	return rows
}

func (m *Model) itemRows() []string {
	items := m.detail.Items()
	if len(items) == 0 {
		return []string{components.RenderEmpty("This list is empty. Press " + m.config.KeyMappings.Add + " to add an item.")}
	}

	start, end := m.visibleRange(len(items))
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, components.RenderItemRow(i, items[i], i == m.ui.Cursor(), m.ui.Width()))
	}
	return rows
}

func (m *Model) visibleRange(total int) (int, int) {
	start := m.ui.ScrollOffset()
	end := min(start+m.ui.VisibleRows(), total)
	if start > end {
		start = end
	}
	return start, end
}

func (m *Model) viewInput() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(m.input.Prompt),
		m.textInput.View(),
		components.SubtleStyle.Render("enter to save · esc to cancel"),
	)
	return components.CreateInputBoxStyle.Render(content)
}

func (m *Model) viewDialog() string {
	if m.dialog == nil {
		return m.viewScreen()
	}

	actions := make([]string, 0, len(m.dialog.Actions))
	for _, a := range m.dialog.Actions {
		actions = append(actions, "["+a.Key+"] "+a.Label)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(m.dialog.Title),
		"",
		m.dialog.Message,
		"",
		components.SubtleStyle.Render(strings.Join(actions, "   ")),
	)

	box := components.CreateInputBoxStyle
	if m.dialog.Destructive {
		box = components.DeleteConfirmBoxStyle
	}
	return lipgloss.Place(m.ui.Width(), m.ui.Height()-2, lipgloss.Center, lipgloss.Center, box.Render(content))
}

func (m *Model) viewHelp() string {
	bindings := m.keys.ListsHelp()
	if m.screen == ScreenDetail {
		bindings = m.keys.DetailHelp()
	}

	lines := []string{components.TitleStyle.Render("Keyboard shortcuts"), ""}
	for _, b := range bindings {
		lines = append(lines, helpLine(b))
	}
	lines = append(lines, "", components.SubtleStyle.Render("press any key to close"))

	box := components.HelpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.ui.Width(), m.ui.Height()-2, lipgloss.Center, lipgloss.Center, box)
}

func helpLine(b key.Binding) string {
	h := b.Help()
	return lipgloss.NewStyle().Width(12).Bold(true).Render(h.Key) + h.Desc
}

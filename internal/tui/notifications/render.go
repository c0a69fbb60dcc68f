package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lista/internal/tui/state"
)

// Render renders a bordered notification banner
func Render(severity Severity, message string) string {
	style := severity.style()

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	messageContent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, messageContent)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInline renders a compact one-line notification (for the footer)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderAll renders every notification on its own line
func RenderAll(ns []state.Notification) string {
	lines := make([]string, 0, len(ns))
	for _, n := range ns {
		lines = append(lines, RenderInline(FromLevel(n.Level), n.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

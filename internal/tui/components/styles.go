// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/lista/internal/config/colors"
	"github.com/thenoetrevino/lista/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines the screen header
	TitleStyle lipgloss.Style

	// RowStyle defines an unselected list or item row
	RowStyle lipgloss.Style

	// SelectedRowStyle defines the row under the cursor
	SelectedRowStyle lipgloss.Style

	// SubtleStyle defines muted text (dates, counts, placeholders)
	SubtleStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for new list / new item prompts (green border)
	CreateInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for delete and clear confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	RowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		PaddingLeft(2)

	SelectedRowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.SelectedBorder)).
		Background(lipgloss.Color(scheme.SelectedBg)).
		Bold(true).
		PaddingLeft(2)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Create)).
		Padding(1)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Border)).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.StatusBarText)).
		Background(lipgloss.Color(scheme.StatusBarBg)).
		Padding(0, 1)
}

func init() {
	InitStyles(*colors.Default())
}

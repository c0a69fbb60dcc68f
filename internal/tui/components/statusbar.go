package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width   int
	Screen  string
	Saving  bool
	Loading bool
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "lista · <screen>" plus the saving indicator
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	left := "lista · " + props.Screen
	switch {
	case props.Loading:
		left += " · loading…"
	case props.Saving:
		left += " · saving…"
	}
	right := "press ? for help"

	gapWidth := props.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gapWidth < 1 {
		gapWidth = 1
	}

	return StatusBarStyle.Render(left + strings.Repeat(" ", gapWidth) + right)
}

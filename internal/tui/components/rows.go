package components

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/lista/internal/models"
)

// RenderListRow renders one list of the overview
func RenderListRow(l models.ListInfo, selected bool) string {
	created := SubtleStyle.Render(l.Created().Format("Jan 2, 2006"))
	if selected {
		return SelectedRowStyle.Render("› "+l.Title) + "  " + created
	}
	return RowStyle.Render("  "+l.Title) + "  " + created
}

// RenderItemRow renders one item, wrapped to width with continuation lines
// indented under the text
func RenderItemRow(index int, text string, selected bool, width int) string {
	prefix := fmt.Sprintf("%d. ", index+1)
	contentWidth := width - len(prefix) - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	lines := strings.Split(wordwrap.String(text, contentWidth), "\n")
	indent := strings.Repeat(" ", len(prefix))
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}
	body := strings.Join(lines, "\n")

	if selected {
		return SelectedRowStyle.Render("› " + body)
	}
	return RowStyle.Render("  " + body)
}

// RenderEmpty renders the placeholder shown for a screen with no rows
func RenderEmpty(message string) string {
	return SubtleStyle.Italic(true).PaddingLeft(2).Render(message)
}

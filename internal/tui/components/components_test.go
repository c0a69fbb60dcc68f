package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/lista/internal/models"
)

func TestRenderItemRowWraps(t *testing.T) {
	text := "a very long grocery item that will certainly not fit on one narrow line"
	out := RenderItemRow(0, text, false, 30)

	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 1)
	assert.Contains(t, lines[0], "1. ")
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
}

func TestRenderListRow(t *testing.T) {
	l := models.ListInfo{ID: "1", Title: "Groceries", CreatedAt: 0}

	assert.Contains(t, RenderListRow(l, false), "Groceries")
	assert.Contains(t, RenderListRow(l, true), "›")
}

func TestListMarkdown(t *testing.T) {
	l := models.ListInfo{ID: "1", Title: "Groceries"}

	md := ListMarkdown(l, []string{"milk", "eggs"})
	assert.True(t, strings.HasPrefix(md, "# Groceries\n"))
	assert.Contains(t, md, "- [ ] milk\n- [ ] eggs\n")

	assert.Contains(t, ListMarkdown(l, nil), "No items yet.")
}

func TestRenderMarkdownKeepsText(t *testing.T) {
	out := RenderMarkdown("# Groceries\n\n- [ ] milk\n", 60)
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "milk")
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 60, Screen: "Lists", Saving: true})
	assert.Contains(t, out, "saving")
	assert.Contains(t, out, "press ? for help")

	out = RenderStatusBar(StatusBarProps{Width: 60, Screen: "Lists", Loading: true, Saving: true})
	assert.Contains(t, out, "loading")
}

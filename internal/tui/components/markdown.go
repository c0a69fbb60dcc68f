package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/lista/internal/models"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// ListMarkdown formats a list and its items as a markdown checklist
func ListMarkdown(l models.ListInfo, items []string) string {
	var b strings.Builder
	b.WriteString("# " + l.Title + "\n\n")
	b.WriteString("_Created " + l.Created().Format("Jan 2, 2006 15:04") + "_\n\n")
	if len(items) == 0 {
		b.WriteString("No items yet.\n")
		return b.String()
	}
	for _, item := range items {
		b.WriteString("- [ ] " + item + "\n")
	}
	return b.String()
}

// RenderMarkdown renders markdown for the terminal, falling back to the raw
// source when glamour fails
func RenderMarkdown(source string, width int) string {
	renderer, err := getRenderer(width)
	if err != nil {
		return source
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimSpace(rendered)
}

package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode  Mode = iota // Default navigation mode
	InputMode               // Typing a new list title or item
	ConfirmMode             // A confirmation dialog is open
	HelpMode                // Displaying help screen
)

// UIState manages the user interface state: cursor position, terminal
// dimensions and the current interaction mode.
type UIState struct {
	// cursor is the index of the selected row on the current screen
	cursor int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState in NormalMode with the cursor on the first row.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// Cursor returns the selected row index.
func (s *UIState) Cursor() int { return s.cursor }

// ResetCursor moves the cursor back to the first row.
func (s *UIState) ResetCursor() { s.cursor = 0 }

// MoveCursor moves the cursor by delta, staying within [0, rows).
func (s *UIState) MoveCursor(delta, rows int) {
	s.cursor += delta
	s.ClampCursor(rows)
}

// ClampCursor keeps the cursor on an existing row after rows were removed.
func (s *UIState) ClampCursor(rows int) {
	if s.cursor >= rows {
		s.cursor = rows - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

// SetWindowSize records the terminal dimensions.
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// VisibleRows returns how many list rows fit between the header and the
// status bar.
func (s *UIState) VisibleRows() int {
	const chrome = 6 // title, separator, status bar, notification line, margins
	rows := s.height - chrome
	if rows < 1 {
		return 1
	}
	return rows
}

// ScrollOffset returns the first row to render so the cursor stays visible.
func (s *UIState) ScrollOffset() int {
	visible := s.VisibleRows()
	if s.cursor < visible {
		return 0
	}
	return s.cursor - visible + 1
}

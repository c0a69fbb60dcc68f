package screens

import (
	"context"

	tea "charm.land/bubbletea/v2"

	listsvc "github.com/thenoetrevino/lista/internal/services/list"
)

// ScratchTitle is shown for the list that lives outside the collection.
const ScratchTitle = "Grocery List"

// DetailScreen is the controller for one list's items. Mounted with an empty
// list id it edits the scratch list instead.
type DetailScreen struct {
	ctx   context.Context
	gw    gateway
	queue *WriteQueue

	listID string
	title  string
	key    string

	phase   Phase
	gen     int
	items   []string
	pending int
	notice  string

	confirmClear bool
}

// NewDetailScreen creates a detail controller. A nil queue gets a private one.
func NewDetailScreen(ctx context.Context, gw gateway, queue *WriteQueue) *DetailScreen {
	if queue == nil {
		queue = NewWriteQueue()
	}
	return &DetailScreen{
		ctx:   ctx,
		gw:    gw,
		queue: queue,
		items: []string{},
	}
}

// Mount switches the screen to listID and returns the command that loads its
// items. Results of earlier mounts are discarded when they arrive.
func (s *DetailScreen) Mount(listID, title string) tea.Cmd {
	if listID == "" && title == "" {
		title = ScratchTitle
	}
	s.listID = listID
	s.title = title
	s.key = listsvc.ItemsKeyFor(listID)
	s.phase = PhaseLoading
	s.gen++
	s.items = []string{}
	s.confirmClear = false

	gen, key := s.gen, s.key
	return s.queue.Enqueue(func() tea.Msg {
		items, err := s.gw.ReadItems(s.ctx, key)
		return ItemsLoadedMsg{owner: s, gen: gen, Key: key, Items: items, Err: err}
	})
}

// Apply folds a command result into the controller. It reports whether msg
// belonged to this controller.
func (s *DetailScreen) Apply(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case ItemsLoadedMsg:
		if msg.owner != s {
			return false
		}
		if msg.gen != s.gen || msg.Key != s.key {
			return true
		}
		s.items = msg.Items
		if s.items == nil {
			s.items = []string{}
		}
		if msg.Err != nil {
			s.notice = "Could not load the saved items."
		}
		s.phase = PhaseReady
		return true

	case SaveResultMsg:
		if msg.owner != s {
			return false
		}
		if s.pending > 0 {
			s.pending--
		}
		if !msg.OK {
			s.notice = failureNotice(msg.Op)
		}
		return true
	}
	return false
}

// ============================================================================
// ACCESSORS
// ============================================================================

func (s *DetailScreen) Phase() Phase         { return s.phase }
func (s *DetailScreen) ListID() string       { return s.listID }
func (s *DetailScreen) Title() string        { return s.title }
func (s *DetailScreen) IsScratch() bool      { return s.listID == "" }
func (s *DetailScreen) Saving() bool         { return s.pending > 0 }
func (s *DetailScreen) ClearRequested() bool { return s.confirmClear }

// Items returns a copy of the items as the screen shows them.
func (s *DetailScreen) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// TakeNotice returns the pending notice and clears it.
func (s *DetailScreen) TakeNotice() string {
	n := s.notice
	s.notice = ""
	return n
}

// ============================================================================
// MUTATIONS
// ============================================================================

// Add appends text and returns the command that saves the whole sequence.
// Blank text is rejected without touching storage.
func (s *DetailScreen) Add(text string) (tea.Cmd, error) {
	if s.phase != PhaseReady {
		return nil, ErrNotReady
	}
	items, err := listsvc.AppendItem(s.items, text)
	if err != nil {
		return nil, err
	}
	s.items = items
	return s.saveItems(OpAddItem), nil
}

// Remove drops the item at index and returns the command that saves the sequence.
func (s *DetailScreen) Remove(index int) (tea.Cmd, error) {
	if s.phase != PhaseReady {
		return nil, ErrNotReady
	}
	items, err := listsvc.RemoveItemAt(s.items, index)
	if err != nil {
		return nil, err
	}
	s.items = items
	return s.saveItems(OpRemoveItem), nil
}

// RequestClear asks for confirmation before removing every item.
func (s *DetailScreen) RequestClear() error {
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	s.confirmClear = true
	return nil
}

// ConfirmClear empties the list and returns the command that clears it in storage.
func (s *DetailScreen) ConfirmClear() (tea.Cmd, error) {
	if !s.confirmClear {
		return nil, ErrNothingPending
	}
	s.confirmClear = false
	s.items = []string{}

	key := s.key
	return s.save(OpClearItems, func(ctx context.Context) bool {
		return s.gw.ClearItems(ctx, key)
	}), nil
}

// CancelClear forgets a pending clear request.
func (s *DetailScreen) CancelClear() {
	s.confirmClear = false
}

func (s *DetailScreen) saveItems(op Op) tea.Cmd {
	key, snapshot := s.key, s.items
	return s.save(op, func(ctx context.Context) bool {
		return s.gw.SaveItems(ctx, key, snapshot)
	})
}

func (s *DetailScreen) save(op Op, write func(context.Context) bool) tea.Cmd {
	s.pending++
	return s.queue.Enqueue(func() tea.Msg {
		return SaveResultMsg{owner: s, Op: op, OK: write(s.ctx)}
	})
}

package screens

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/models"
	listsvc "github.com/thenoetrevino/lista/internal/services/list"
)

// ListsScreen is the controller for the lists overview.
type ListsScreen struct {
	ctx   context.Context
	gw    gateway
	queue *WriteQueue
	now   func() time.Time

	phase   Phase
	gen     int
	lists   []models.ListInfo
	pending int
	notice  string

	deleteID     string
	confirmClear bool
}

// NewListsScreen creates a lists controller. A nil queue gets a private one.
func NewListsScreen(ctx context.Context, gw gateway, queue *WriteQueue) *ListsScreen {
	if queue == nil {
		queue = NewWriteQueue()
	}
	return &ListsScreen{
		ctx:   ctx,
		gw:    gw,
		queue: queue,
		now:   time.Now,
		lists: []models.ListInfo{},
	}
}

// SetClock overrides the time source for new list ids.
func (s *ListsScreen) SetClock(now func() time.Time) {
	s.now = now
}

// Mount enters Loading and returns the command that reads the collection.
func (s *ListsScreen) Mount() tea.Cmd {
	s.phase = PhaseLoading
	s.gen++
	s.deleteID = ""
	s.confirmClear = false

	gen := s.gen
	return s.queue.Enqueue(func() tea.Msg {
		lists, err := s.gw.ReadLists(s.ctx)
		return ListsLoadedMsg{owner: s, gen: gen, Lists: lists, Err: err}
	})
}

// Apply folds a command result into the controller. It reports whether msg
// belonged to this controller.
func (s *ListsScreen) Apply(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case ListsLoadedMsg:
		if msg.owner != s {
			return false
		}
		if msg.gen != s.gen {
			return true
		}
		s.lists = msg.Lists
		if s.lists == nil {
			s.lists = []models.ListInfo{}
		}
		if msg.Err != nil {
			s.notice = "Could not load your saved lists."
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

func (s *ListsScreen) Phase() Phase { return s.phase }

// Saving reports whether any write is still in flight.
func (s *ListsScreen) Saving() bool { return s.pending > 0 }

// Lists returns a copy of the collection as the screen shows it.
func (s *ListsScreen) Lists() []models.ListInfo {
	out := make([]models.ListInfo, len(s.lists))
	copy(out, s.lists)
	return out
}

// TakeNotice returns the pending notice and clears it.
func (s *ListsScreen) TakeNotice() string {
	n := s.notice
	s.notice = ""
	return n
}

// PendingDelete returns the list awaiting delete confirmation.
func (s *ListsScreen) PendingDelete() (models.ListInfo, bool) {
	if s.deleteID == "" {
		return models.ListInfo{}, false
	}
	idx := models.FindList(s.lists, s.deleteID)
	if idx < 0 {
		return models.ListInfo{}, false
	}
	return s.lists[idx], true
}

// ClearAllRequested reports whether clear-all awaits confirmation.
func (s *ListsScreen) ClearAllRequested() bool { return s.confirmClear }

// ============================================================================
// MUTATIONS
// ============================================================================

// CreateList appends a new list and returns the command that saves the collection.
func (s *ListsScreen) CreateList(title string) (models.ListInfo, tea.Cmd, error) {
	if s.phase != PhaseReady {
		return models.ListInfo{}, nil, ErrNotReady
	}

	l, err := listsvc.NewListInfo(title, s.now(), s.lists)
	if err != nil {
		return models.ListInfo{}, nil, err
	}

	s.lists = listsvc.AppendList(s.lists, l)
	snapshot := s.lists
	return l, s.save(OpCreateList, func(ctx context.Context) bool {
		return s.gw.SaveLists(ctx, snapshot)
	}), nil
}

// RequestDelete marks a list for deletion; nothing changes until ConfirmDelete.
func (s *ListsScreen) RequestDelete(id string) error {
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	if models.FindList(s.lists, id) < 0 {
		return models.ErrListNotFound
	}
	s.confirmClear = false
	s.deleteID = id
	return nil
}

// ConfirmDelete drops the requested list locally and returns the command
// that removes it and its items from storage.
func (s *ListsScreen) ConfirmDelete() (tea.Cmd, error) {
	if s.deleteID == "" {
		return nil, ErrNothingPending
	}
	id := s.deleteID
	s.deleteID = ""
	s.lists, _ = listsvc.WithoutList(s.lists, id)

	return s.save(OpDeleteList, func(ctx context.Context) bool {
		return s.gw.DeleteList(ctx, id)
	}), nil
}

// CancelDelete forgets a pending delete request.
func (s *ListsScreen) CancelDelete() {
	s.deleteID = ""
}

// RequestClearAll asks for confirmation before wiping all stored data.
func (s *ListsScreen) RequestClearAll() error {
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	s.deleteID = ""
	s.confirmClear = true
	return nil
}

// ConfirmClearAll empties the screen and returns the command that clears storage.
func (s *ListsScreen) ConfirmClearAll() (tea.Cmd, error) {
	if !s.confirmClear {
		return nil, ErrNothingPending
	}
	s.confirmClear = false
	s.lists = []models.ListInfo{}

	return s.save(OpClearAll, s.gw.ClearAllData), nil
}

// CancelClearAll forgets a pending clear-all request.
func (s *ListsScreen) CancelClearAll() {
	s.confirmClear = false
}

func (s *ListsScreen) save(op Op, write func(context.Context) bool) tea.Cmd {
	s.pending++
	return s.queue.Enqueue(func() tea.Msg {
		return SaveResultMsg{owner: s, Op: op, OK: write(s.ctx)}
	})
}

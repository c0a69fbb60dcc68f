// Package list holds the list rules shared by the CLI and the screens:
// validation, id assignment and the load-modify-save cycle for one-shot commands.
package list

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/lista/internal/models"
)

// Service defines all list-related operations
type Service interface {
	// Read operations
	GetAllLists(ctx context.Context) ([]models.ListInfo, error)
	GetList(ctx context.Context, id string) (*models.ListInfo, error)
	GetItems(ctx context.Context, listID string) ([]string, error)

	// Write operations
	CreateList(ctx context.Context, title string) (*models.ListInfo, error)
	DeleteList(ctx context.Context, id string) error
	AddItem(ctx context.Context, listID, text string) ([]string, error)
	RemoveItem(ctx context.Context, listID string, index int) (string, []string, error)
	ClearItems(ctx context.Context, listID string) error

	// Maintenance
	ClearAll(ctx context.Context) error
	Prune(ctx context.Context) ([]string, error)
}

// gateway defines the storage operations needed by the list service
// This interface is private to the service layer
type gateway interface {
	LoadLists(ctx context.Context) []models.ListInfo
	ReadLists(ctx context.Context) ([]models.ListInfo, error)
	SaveLists(ctx context.Context, lists []models.ListInfo) bool
	DeleteList(ctx context.Context, listID string) bool

	LoadItems(ctx context.Context, key string) []string
	SaveItems(ctx context.Context, key string, items []string) bool
	ClearItems(ctx context.Context, key string) bool

	ClearAllData(ctx context.Context) bool
	PruneOrphans(ctx context.Context) ([]string, bool)
}

// Option configures the service
type Option func(*service)

// WithClock overrides the time source used for list ids
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// service implements Service over the storage gateway
type service struct {
	gw  gateway
	now func() time.Time
}

// NewService creates a new list service
func NewService(gw gateway, opts ...Option) Service {
	s := &service{gw: gw, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ItemsKeyFor maps a list id to its storage key; the empty id is the scratch list.
func ItemsKeyFor(listID string) string {
	if listID == "" {
		return models.ScratchItemsKey
	}
	return models.ItemsKey(listID)
}

// GetAllLists returns the collection; unreadable data reads as empty
func (s *service) GetAllLists(ctx context.Context) ([]models.ListInfo, error) {
	return s.gw.LoadLists(ctx), nil
}

// GetList returns a single list by id
func (s *service) GetList(ctx context.Context, id string) (*models.ListInfo, error) {
	lists := s.gw.LoadLists(ctx)
	idx := models.FindList(lists, id)
	if idx < 0 {
		return nil, models.ErrListNotFound
	}
	l := lists[idx]
	return &l, nil
}

// GetItems returns the items of a list. Unknown ids read as empty.
func (s *service) GetItems(ctx context.Context, listID string) ([]string, error) {
	return s.gw.LoadItems(ctx, ItemsKeyFor(listID)), nil
}

// CreateList appends a new list and persists the full collection
func (s *service) CreateList(ctx context.Context, title string) (*models.ListInfo, error) {
	if _, err := NormalizeTitle(title); err != nil {
		return nil, err
	}

	// A strict read: rewriting an unreadable collection would drop it
	lists, err := s.gw.ReadLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	l, err := NewListInfo(title, s.now(), lists)
	if err != nil {
		return nil, err
	}

	if !s.gw.SaveLists(ctx, AppendList(lists, l)) {
		return nil, ErrSaveFailed
	}
	return &l, nil
}

// DeleteList removes a list and its items
func (s *service) DeleteList(ctx context.Context, id string) error {
	if _, err := s.GetList(ctx, id); err != nil {
		return err
	}
	if !s.gw.DeleteList(ctx, id) {
		return ErrDeleteFailed
	}
	return nil
}

// AddItem appends an item and returns the updated sequence
func (s *service) AddItem(ctx context.Context, listID, text string) ([]string, error) {
	if _, err := NormalizeItem(text); err != nil {
		return nil, err
	}
	if err := s.requireList(ctx, listID); err != nil {
		return nil, err
	}

	key := ItemsKeyFor(listID)
	items, err := AppendItem(s.gw.LoadItems(ctx, key), text)
	if err != nil {
		return nil, err
	}
	if !s.gw.SaveItems(ctx, key, items) {
		return nil, ErrSaveFailed
	}
	return items, nil
}

// RemoveItem removes the item at a zero-based index and returns it with the updated sequence
func (s *service) RemoveItem(ctx context.Context, listID string, index int) (string, []string, error) {
	if err := s.requireList(ctx, listID); err != nil {
		return "", nil, err
	}

	key := ItemsKeyFor(listID)
	current := s.gw.LoadItems(ctx, key)
	items, err := RemoveItemAt(current, index)
	if err != nil {
		return "", current, err
	}
	if !s.gw.SaveItems(ctx, key, items) {
		return "", current, ErrSaveFailed
	}
	return current[index], items, nil
}

// ClearItems removes every item of a list
func (s *service) ClearItems(ctx context.Context, listID string) error {
	if err := s.requireList(ctx, listID); err != nil {
		return err
	}
	if !s.gw.ClearItems(ctx, ItemsKeyFor(listID)) {
		return ErrClearFailed
	}
	return nil
}

// ClearAll removes all lists and items
func (s *service) ClearAll(ctx context.Context) error {
	if !s.gw.ClearAllData(ctx) {
		return ErrClearFailed
	}
	return nil
}

// Prune removes item sequences of lists that no longer exist
func (s *service) Prune(ctx context.Context) ([]string, error) {
	removed, ok := s.gw.PruneOrphans(ctx)
	if !ok {
		return removed, ErrPruneFailed
	}
	return removed, nil
}

// requireList rejects writes to item sequences of lists that do not exist,
// which would leave orphaned item data behind
func (s *service) requireList(ctx context.Context, listID string) error {
	if listID == "" {
		return nil
	}
	_, err := s.GetList(ctx, listID)
	return err
}

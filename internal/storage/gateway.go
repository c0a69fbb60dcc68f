// Package storage translates lists and their items to and from the key/value store.
//
// Reads never fail from the caller's point of view: an absent key, a store
// error and an unparsable value all come back as an empty value. Writes report
// success as a bool so callers can decide whether to tell the user.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lista/internal/kvstore"
	"github.com/thenoetrevino/lista/internal/models"
)

// Gateway is the only component that knows the persisted key layout.
type Gateway struct {
	store  kvstore.Store
	logger *slog.Logger
}

// Option configures a Gateway
type Option func(*Gateway)

// WithLogger sets the logger used for contained failures
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGateway creates a gateway over store.
func NewGateway(store kvstore.Store, opts ...Option) *Gateway {
	g := &Gateway{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ============================================================================
// LIST COLLECTION
// ============================================================================

// SaveLists overwrites the list collection.
func (g *Gateway) SaveLists(ctx context.Context, lists []models.ListInfo) bool {
	if lists == nil {
		lists = []models.ListInfo{}
	}
	if err := g.writeJSON(ctx, models.ListsKey, lists); err != nil {
		g.logger.Error("error saving lists", "key", models.ListsKey, "error", err)
		return false
	}
	return true
}

// LoadLists returns the list collection, or an empty one if it cannot be read.
func (g *Gateway) LoadLists(ctx context.Context) []models.ListInfo {
	lists, err := g.ReadLists(ctx)
	if err != nil {
		g.logger.Warn("error loading lists", "key", models.ListsKey, "error", err)
	}
	return lists
}

// ReadLists is LoadLists that also reports why a read degraded to empty.
// An absent collection is not an error.
func (g *Gateway) ReadLists(ctx context.Context) ([]models.ListInfo, error) {
	lists := []models.ListInfo{}
	found, err := g.readJSON(ctx, models.ListsKey, &lists)
	if err != nil || !found || lists == nil {
		return []models.ListInfo{}, err
	}
	return lists, nil
}

// DeleteList removes the list's item sequence and its collection entry.
// Deleting an id that is not in the collection only clears any stray items.
func (g *Gateway) DeleteList(ctx context.Context, listID string) bool {
	if err := g.store.Remove(ctx, models.ItemsKey(listID)); err != nil {
		g.logger.Error("error deleting list items", "list_id", listID, "error", err)
		return false
	}

	lists, err := g.ReadLists(ctx)
	if err != nil {
		// never overwrite a collection we could not parse
		g.logger.Error("error deleting list", "list_id", listID, "error", err)
		return false
	}

	idx := models.FindList(lists, listID)
	if idx < 0 {
		return true
	}

	remaining := make([]models.ListInfo, 0, len(lists)-1)
	remaining = append(remaining, lists[:idx]...)
	remaining = append(remaining, lists[idx+1:]...)
	return g.SaveLists(ctx, remaining)
}

// ============================================================================
// ITEM SEQUENCES
// ============================================================================

// SaveListItems overwrites the items of a list.
func (g *Gateway) SaveListItems(ctx context.Context, listID string, items []string) bool {
	return g.SaveItems(ctx, models.ItemsKey(listID), items)
}

// LoadListItems returns the items of a list, empty if there are none.
func (g *Gateway) LoadListItems(ctx context.Context, listID string) []string {
	return g.LoadItems(ctx, models.ItemsKey(listID))
}

// ReadListItems is LoadListItems that also reports read failures.
func (g *Gateway) ReadListItems(ctx context.Context, listID string) ([]string, error) {
	return g.ReadItems(ctx, models.ItemsKey(listID))
}

// ClearListItems removes every item of a list.
func (g *Gateway) ClearListItems(ctx context.Context, listID string) bool {
	return g.ClearItems(ctx, models.ItemsKey(listID))
}

// SaveItems overwrites the item sequence stored under key.
func (g *Gateway) SaveItems(ctx context.Context, key string, items []string) bool {
	if items == nil {
		items = []string{}
	}
	if err := g.writeJSON(ctx, key, items); err != nil {
		g.logger.Error("error saving items", "key", key, "error", err)
		return false
	}
	return true
}

// LoadItems returns the item sequence stored under key, empty on any failure.
func (g *Gateway) LoadItems(ctx context.Context, key string) []string {
	items, err := g.ReadItems(ctx, key)
	if err != nil {
		g.logger.Warn("error loading items", "key", key, "error", err)
	}
	return items
}

// ReadItems is LoadItems that also reports read failures.
func (g *Gateway) ReadItems(ctx context.Context, key string) ([]string, error) {
	items := []string{}
	found, err := g.readJSON(ctx, key, &items)
	if err != nil || !found || items == nil {
		return []string{}, err
	}
	return items, nil
}

// ClearItems removes the item sequence stored under key.
func (g *Gateway) ClearItems(ctx context.Context, key string) bool {
	if err := g.store.Remove(ctx, key); err != nil {
		g.logger.Error("error clearing items", "key", key, "error", err)
		return false
	}
	return true
}

// ============================================================================
// MAINTENANCE
// ============================================================================

// ClearAllData removes the items of every known list, the scratch list and
// finally the collection. It stops at the first failure and leaves whatever
// was already removed removed.
func (g *Gateway) ClearAllData(ctx context.Context) bool {
	lists, err := g.ReadLists(ctx)
	if err != nil {
		// the collection is unreadable; it gets removed below anyway
		g.logger.Warn("clearing data with unreadable list collection", "error", err)
	}

	for _, l := range lists {
		if err := g.store.Remove(ctx, models.ItemsKey(l.ID)); err != nil {
			g.logger.Error("error clearing all data", "list_id", l.ID, "error", err)
			return false
		}
	}

	if err := g.store.Remove(ctx, models.ScratchItemsKey); err != nil {
		g.logger.Error("error clearing all data", "key", models.ScratchItemsKey, "error", err)
		return false
	}

	if err := g.store.Remove(ctx, models.ListsKey); err != nil {
		g.logger.Error("error clearing all data", "key", models.ListsKey, "error", err)
		return false
	}
	return true
}

// PruneOrphans removes item sequences whose list is no longer in the
// collection and returns the ids it removed.
func (g *Gateway) PruneOrphans(ctx context.Context) ([]string, bool) {
	lists, err := g.ReadLists(ctx)
	if err != nil {
		// without a readable collection every sequence would look orphaned
		g.logger.Error("error pruning items", "error", err)
		return nil, false
	}

	known := make(map[string]struct{}, len(lists))
	for _, l := range lists {
		known[l.ID] = struct{}{}
	}

	keys, err := g.store.Keys(ctx, models.ListItemsPrefix)
	if err != nil {
		g.logger.Error("error pruning items", "error", err)
		return nil, false
	}

	removed := []string{}
	for _, k := range keys {
		id := k[len(models.ListItemsPrefix):]
		if _, ok := known[id]; ok {
			continue
		}
		if err := g.store.Remove(ctx, k); err != nil {
			g.logger.Error("error pruning items", "key", k, "error", err)
			return removed, false
		}
		removed = append(removed, id)
	}
	return removed, true
}

// ============================================================================
// ENCODING
// ============================================================================

func (g *Gateway) writeJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return g.store.Set(ctx, key, string(b))
}

// readJSON decodes the value under key into v. found is false when the key is absent.
func (g *Gateway) readJSON(ctx context.Context, key string, v any) (found bool, err error) {
	raw, err := g.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("json unmarshal %q: %w", key, err)
	}
	return true, nil
}

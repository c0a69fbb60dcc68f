// Package screens holds the state controllers behind the lists overview and
// the list detail screens. A controller applies every mutation to its own
// state first and hands back a tea.Cmd that persists it; the command's
// result comes back through Apply.
package screens

import (
	"context"

	"github.com/thenoetrevino/lista/internal/models"
)

// Phase is the lifecycle of a screen
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Op names the write a SaveResultMsg reports on
type Op string

const (
	OpCreateList Op = "create list"
	OpDeleteList Op = "delete list"
	OpClearAll   Op = "clear all data"
	OpAddItem    Op = "add item"
	OpRemoveItem Op = "remove item"
	OpClearItems Op = "clear items"
)

// ListsLoadedMsg carries the list collection read by ListsScreen.Mount
type ListsLoadedMsg struct {
	owner *ListsScreen
	gen   int
	Lists []models.ListInfo
	Err   error
}

// ItemsLoadedMsg carries the item sequence read by DetailScreen.Mount
type ItemsLoadedMsg struct {
	owner *DetailScreen
	gen   int
	Key   string
	Items []string
	Err   error
}

// SaveResultMsg reports the outcome of one persisted mutation
type SaveResultMsg struct {
	owner any
	Op    Op
	OK    bool
}

// gateway is the slice of storage.Gateway the controllers need
type gateway interface {
	ReadLists(ctx context.Context) ([]models.ListInfo, error)
	SaveLists(ctx context.Context, lists []models.ListInfo) bool
	DeleteList(ctx context.Context, listID string) bool
	ClearAllData(ctx context.Context) bool

	ReadItems(ctx context.Context, key string) ([]string, error)
	SaveItems(ctx context.Context, key string, items []string) bool
	ClearItems(ctx context.Context, key string) bool
}

func failureNotice(op Op) string {
	switch op {
	case OpDeleteList:
		return "Could not delete the list. Some data may remain."
	case OpClearAll:
		return "Could not clear all data. Some data may remain."
	case OpClearItems:
		return "Could not clear the list."
	default:
		return "Could not save your changes."
	}
}

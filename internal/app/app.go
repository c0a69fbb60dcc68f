package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lista/internal/kvstore"
	listservice "github.com/thenoetrevino/lista/internal/services/list"
	"github.com/thenoetrevino/lista/internal/storage"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Persistence layer
	store   kvstore.Store
	Gateway *storage.Gateway

	// Service layer (business logic)
	ListService listservice.Service

	logger *slog.Logger
}

// New creates a new App over an open store. The App takes ownership of the
// store and closes it in Close.
func New(store kvstore.Store, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	gw := storage.NewGateway(store, storage.WithLogger(cfg.logger))

	var svcOpts []listservice.Option
	if cfg.clock != nil {
		svcOpts = append(svcOpts, listservice.WithClock(cfg.clock))
	}

	return &App{
		store:       store,
		Gateway:     gw,
		ListService: listservice.NewService(gw, svcOpts...),
		logger:      cfg.logger,
	}
}

// Open opens the store described by opts and builds the App on it.
func Open(ctx context.Context, storeOpts kvstore.Options, opts ...Option) (*App, error) {
	store, err := kvstore.Open(ctx, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", backendName(storeOpts.Backend), err)
	}
	return New(store, opts...), nil
}

// Store returns the underlying key-value store.
func (a *App) Store() kvstore.Store {
	return a.store
}

// Logger returns the logger the App was built with.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the store.
func (a *App) Close() error {
	if err := a.store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}

func backendName(b string) string {
	if b == "" {
		return kvstore.BackendSQLite
	}
	return b
}

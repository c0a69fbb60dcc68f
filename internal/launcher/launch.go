package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/logging"
	"github.com/thenoetrevino/lista/internal/tui"
)

const drainTimeout = 2 * time.Second

// Launch starts the TUI application
func Launch(parent context.Context, settings cli.Settings) error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := cli.LoadConfig(settings)
	if err != nil {
		return err
	}

	application, err := app.Open(ctx, cfg.Storage.StoreOptions(), app.WithLogger(logging.Logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing store", "error", err)
		}
	}()

	slog.Info("starting tui", "backend", cfg.Storage.Backend)

	model := tui.InitialModel(ctx, application.Gateway, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	final, runErr := p.Run()

	// Give saves issued just before quitting a moment to reach the store
	drainCtx, drainCancel := context.WithTimeout(context.Background(), drainTimeout)
	defer drainCancel()
	if m, ok := final.(tui.Model); ok {
		if err := m.WaitForWrites(drainCtx); err != nil {
			slog.Warn("pending saves did not finish before exit", "error", err)
		}
	}

	if runErr != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", runErr)
	}
	return nil
}

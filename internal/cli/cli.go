package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/kvstore"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the App was injected and belongs to someone else
	owned bool
}

// NewCLI loads the configuration named by the settings in ctx and opens the store
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := LoadConfig(SettingsFromContext(ctx))
	if err != nil {
		return nil, err
	}

	application, err := app.Open(ctx, cfg.Storage.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// LoadConfig reads the config file and applies the global flag overrides
func LoadConfig(s Settings) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if s.ConfigPath != "" {
		cfg, err = config.LoadFrom(s.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if s.Backend != "" {
		cfg.Storage.Backend = s.Backend
	}
	if s.Ephemeral {
		cfg.Storage.Backend = kvstore.BackendMemory
	}
	return cfg, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

package cli

import (
	"context"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/testutil"
)

type settingsKey struct{}

// Settings are the global flags shared by every command
type Settings struct {
	ConfigPath string
	Backend    string
	Ephemeral  bool
}

// WithSettings stores the global flags in ctx
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// SettingsFromContext returns the global flags stored in ctx, or zero settings
func SettingsFromContext(ctx context.Context) Settings {
	if ctx == nil {
		return Settings{}
	}
	s, _ := ctx.Value(settingsKey{}).(Settings)
	return s
}

// GetCLIFromContext returns a CLI for the command being run. Tests inject an
// App through testutil.TestAppKey; otherwise a new CLI is opened.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if injected, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && injected != nil {
		return &CLI{App: injected}, nil
	}
	return NewCLI(ctx)
}

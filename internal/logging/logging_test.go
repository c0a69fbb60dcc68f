package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToDataDir(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	t.Setenv("LISTA_DATA_DIR", dir)

	require.NoError(t, Init())
	slog.Info("list saved", "list_id", "42")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "lista.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "list saved")
	assert.Contains(t, string(data), "list_id=42")
}

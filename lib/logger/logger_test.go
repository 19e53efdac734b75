package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dict.log")
	require.NoError(t, Setup(&Settings{Level: "debug", Format: "json", Filename: filename, MaxSize: 1}))
	t.Cleanup(func() {
		_ = Setup(&Settings{Level: "info"})
	})

	Debugf("loaded %d keys", 3)
	Info("ready")
	L().Info("structured")
	require.NoError(t, Sync())

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), "loaded 3 keys")
	assert.Contains(t, string(content), "ready")
	assert.Contains(t, string(content), "structured")
}

func TestSetupLevel(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dict.log")
	require.NoError(t, Setup(&Settings{Level: "WARN", Filename: filename}))
	t.Cleanup(func() {
		_ = Setup(&Settings{Level: "info"})
	})

	Info("hidden")
	Warn("shown")
	require.NoError(t, Sync())

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), "shown")
}

func TestSetupInvalidLevel(t *testing.T) {
	assert.Error(t, Setup(&Settings{Level: "loud"}))
}

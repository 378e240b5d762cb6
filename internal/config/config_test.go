package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "ngram", cfg.Engine.Embedder)
	assert.Equal(t, 0.35, cfg.Engine.MinScore)
	assert.Equal(t, 180*24*time.Hour, cfg.Engine.HalfLife)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Warehouse.Enabled())
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ENGINE_TOP_K=9\nHTTP_ALLOWED_ORIGINS=https://a.se,https://b.se\n"), 0o600))
	t.Setenv("ENGINE_MIN_SCORE", "0.5")
	t.Cleanup(func() {
		os.Unsetenv("ENGINE_TOP_K")
		os.Unsetenv("HTTP_ALLOWED_ORIGINS")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Engine.TopK)
	assert.Equal(t, 0.5, cfg.Engine.MinScore)
	assert.Equal(t, []string{"https://a.se", "https://b.se"}, cfg.HTTP.AllowedOrigins)
}

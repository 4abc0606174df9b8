package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harue/projectboard/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_PATH", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "projects.db", cfg.DatabasePath)
	assert.Equal(t, "localhost:8080", cfg.Addr())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/board.db")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, "/tmp/board.db", cfg.DatabasePath)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := config.Load()
	assert.Error(t, err)
}

package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfig()
		assert.Equal(t, "invoices.db", cfg.Database.Path)
		assert.False(t, cfg.Database.InMemory)
		assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
		assert.Equal(t, "xlsx", cfg.Export.Format)
		require.NoError(t, cfg.Validate())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DB_PATH", "/tmp/other.db")
		t.Setenv("DB_INMEM", "true")
		t.Setenv("EXTRACT_TIMEOUT", "90s")
		t.Setenv("EXPORT_FORMAT", "csv")

		cfg := LoadConfig()
		assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
		assert.True(t, cfg.Database.InMemory)
		assert.Equal(t, 90*time.Second, cfg.Extract.Timeout)
		assert.Equal(t, "csv", cfg.Export.Format)
		require.NoError(t, cfg.Validate())
	})

	t.Run("malformed values keep defaults", func(t *testing.T) {
		t.Setenv("DB_INMEM", "sort of")
		t.Setenv("EXTRACT_MAX_PAGES", "many")

		cfg := LoadConfig()
		assert.False(t, cfg.Database.InMemory)
		assert.Equal(t, 0, cfg.Extract.MaxPages)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("file database needs a path", func(t *testing.T) {
		cfg := LoadConfig()
		cfg.Database.Path = ""
		assert.Error(t, cfg.Validate())

		cfg.Database.InMemory = true
		assert.NoError(t, cfg.Validate())
	})

	t.Run("export format is a closed set", func(t *testing.T) {
		cfg := LoadConfig()
		cfg.Export.Format = "parquet"
		assert.Error(t, cfg.Validate())
	})
}

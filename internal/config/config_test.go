package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "PT", cfg.DefaultCountry)
	assert.Equal(t, 10, cfg.PreviewRows)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, '\t', cfg.Delimiter())
	assert.Equal(t, "history.db", filepath.Base(cfg.HistoryPath))
}

func TestLoadFileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeexp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"default_country: DE\npreview_rows: 3\nlog_level: debug\ntxt_delimiter: \";\"\nhistory_path: \"\"\n"), 0o644))

	t.Setenv("LIFEEXP_PREVIEW_ROWS", "25")
	t.Setenv("LIFEEXP_LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DE", cfg.DefaultCountry)
	assert.Equal(t, 25, cfg.PreviewRows)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ';', cfg.Delimiter())
	assert.Empty(t, cfg.HistoryPath)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("LIFEEXP_LOG_LEVEL", "verbose")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogLevel")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDelimiterEmpty(t *testing.T) {
	assert.Equal(t, rune(0), Config{}.Delimiter())
}

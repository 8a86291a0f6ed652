package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URL", "API_ADDR", "CORS_ORIGIN", "DB_MAX_CONNS", "MAX_BODY_SIZE",
		"LOG_LEVEL", "LOG_FILE", "WEB_ADDR", "API_BASE_URL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/books")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIAddr, cfg.Addr)
	assert.Equal(t, DefaultCORSOrigin, cfg.CORSOrigin)
	assert.Equal(t, DefaultMaxConns, cfg.MaxConns)
	assert.Equal(t, int64(DefaultMaxBodySize), cfg.MaxBodySize)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/books")
	t.Setenv("API_ADDR", ":9000")
	t.Setenv("DB_MAX_CONNS", "12")
	t.Setenv("MAX_BODY_SIZE", "2048")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 12, cfg.MaxConns)
	assert.Equal(t, int64(2048), cfg.MaxBodySize)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	for _, v := range []string{"zero", "0", "-3"} {
		t.Run(v, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DATABASE_URL", "postgres://localhost/books")
			t.Setenv("DB_MAX_CONNS", v)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "DB_MAX_CONNS")
		})
	}
}

func TestLoadWeb(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadWeb()
	require.NoError(t, err)
	assert.Equal(t, DefaultWebAddr, cfg.Addr)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)

	t.Setenv("API_BASE_URL", "https://books.example/")
	cfg, err = LoadWeb()
	require.NoError(t, err)
	assert.Equal(t, "https://books.example", cfg.APIBaseURL)

	t.Setenv("API_BASE_URL", "books.example")
	_, err = LoadWeb()
	assert.Error(t, err)
}

func TestLoadDotEnvMissingFileIsFine(t *testing.T) {
	applied, err := LoadDotEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestLoadDotEnvApplies(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=postgres://from-dotenv/books\n"), 0o600))
	// godotenv never overrides variables that are already set, and clearEnv
	// sets them to "". Unset explicitly; t.Setenv above restores on cleanup.
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	applied, err := LoadDotEnv(path)
	require.NoError(t, err)
	assert.True(t, applied)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://from-dotenv/books", cfg.DatabaseURL)
}

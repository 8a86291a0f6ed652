package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIAddr     = "127.0.0.1:8090"
	DefaultWebAddr     = "127.0.0.1:8080"
	DefaultCORSOrigin  = "http://localhost:8080"
	DefaultAPIBaseURL  = "http://127.0.0.1:8090"
	DefaultMaxConns    = 5
	DefaultMaxBodySize = 1 << 20 // 1 MiB
	DefaultLogLevel    = "info"
)

// ErrMissingDatabaseURL is fatal at API startup.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required to set up the database")

// API is everything cmd/api needs.
type API struct {
	DatabaseURL string
	Addr        string
	CORSOrigin  string
	MaxConns    int
	MaxBodySize int64
	Log         Log
}

// Web is everything cmd/web needs.
type Web struct {
	Addr       string
	APIBaseURL string
	Log        Log
}

type Log struct {
	Level string
	File  string
}

// LoadDotEnv loads .env into the process environment if the file exists.
// It reports whether a file was applied; a missing file is not an error.
func LoadDotEnv(paths ...string) (bool, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return false, nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return false, fmt.Errorf("load %s: %w", strings.Join(existing, ","), err)
	}
	return true, nil
}

// Load reads the API configuration from the environment.
func Load() (API, error) {
	cfg := API{
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Addr:        getEnv("API_ADDR", DefaultAPIAddr),
		CORSOrigin:  getEnv("CORS_ORIGIN", DefaultCORSOrigin),
		Log:         loadLog(),
	}
	if cfg.DatabaseURL == "" {
		return API{}, ErrMissingDatabaseURL
	}

	n, err := envInt("DB_MAX_CONNS", DefaultMaxConns)
	if err != nil {
		return API{}, err
	}
	cfg.MaxConns = int(n)

	if cfg.MaxBodySize, err = envInt("MAX_BODY_SIZE", DefaultMaxBodySize); err != nil {
		return API{}, err
	}
	return cfg, nil
}

// LoadWeb reads the browser client configuration. It never needs a database.
func LoadWeb() (Web, error) {
	cfg := Web{
		Addr:       getEnv("WEB_ADDR", DefaultWebAddr),
		APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
		Log:        loadLog(),
	}
	if !strings.HasPrefix(cfg.APIBaseURL, "http://") && !strings.HasPrefix(cfg.APIBaseURL, "https://") {
		return Web{}, fmt.Errorf("API_BASE_URL: want an http(s) URL, got %q", cfg.APIBaseURL)
	}
	return cfg, nil
}

func loadLog() Log {
	return Log{
		Level: strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		File:  os.Getenv("LOG_FILE"),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt parses a positive integer; unset means def.
func envInt(key string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be > 0", key)
	}
	return n, nil
}

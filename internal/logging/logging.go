package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/5w1tchy/books-catalog/internal/config"
)

const (
	timeFormat        = "2006-01-02 15:04:05"
	defaultMaxSizeMB  = 50
	defaultMaxBackups = 5
	defaultMaxAgeDays = 30
)

// Apply sets the global level and writers: human-readable lines on stderr,
// plus a rotating file when cfg.File is set.
func Apply(cfg config.Log) {
	applyLevel(cfg.Level)
	log.Logger = New(os.Stderr, cfg.File)
}

// New builds a logger writing console lines to out and, when file is not
// empty, to a rotating file as well.
func New(out io.Writer, file string) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat}
	if file == "" {
		return zerolog.New(console).With().Timestamp().Logger()
	}

	if err := ensureLogDir(file); err != nil {
		l := zerolog.New(console).With().Timestamp().Logger()
		l.Warn().Err(err).Str("path", file).Msg("Failed to prepare log directory; logging to stderr only")
		return l
	}
	fileConsole := zerolog.ConsoleWriter{
		Out: &lumberjack.Logger{
			Filename:   file,
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAge:     defaultMaxAgeDays,
			Compress:   true,
		},
		TimeFormat: timeFormat,
		NoColor:    true,
	}
	return zerolog.New(zerolog.MultiLevelWriter(console, fileConsole)).With().Timestamp().Logger()
}

func applyLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	mw "github.com/5w1tchy/books-catalog/internal/api/middlewares"
	"github.com/5w1tchy/books-catalog/internal/api/router"
	"github.com/5w1tchy/books-catalog/internal/config"
	"github.com/5w1tchy/books-catalog/internal/logging"
	"github.com/5w1tchy/books-catalog/internal/repository/sqlconnect"
	booksvc "github.com/5w1tchy/books-catalog/internal/service/books"
	storebooks "github.com/5w1tchy/books-catalog/internal/store/books"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 on clean shutdown, 1 on missing
// configuration, pool failure or bind failure.
func run() int {
	applied, envErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		logging.Apply(config.Log{Level: config.DefaultLogLevel})
		log.Error().Err(err).Msg("invalid configuration")
		return 1
	}
	logging.Apply(cfg.Log)

	switch {
	case envErr != nil:
		log.Warn().Err(envErr).Msg("Not applying .env")
	case !applied:
		log.Info().Msg("No .env file found; using process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlconnect.ConnectDB(ctx, cfg.DatabaseURL, cfg.MaxConns)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		return 1
	}
	defer db.Close()
	log.Info().Str("dsn", sqlconnect.RedactDSN(cfg.DatabaseURL)).Int("max_conns", cfg.MaxConns).Msg("Connected to database")

	svc := booksvc.NewService(storebooks.New(db))

	handler := mw.Chain(
		router.Router(svc, db),
		mw.RequestID,
		mw.AccessLog,
		mw.Recovery,
		mw.Cors(cfg.CORSOrigin),
		mw.ResponseTime,
		mw.SecurityHeaders,
		mw.Compression,
		mw.BodySizeLimit(cfg.MaxBodySize),
	)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		log.Error().Err(err).Str("addr", cfg.Addr).Msg("bind failed")
		return 1
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Str("cors_origin", cfg.CORSOrigin).Msg("Server is running")
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown incomplete")
	}
	log.Info().Msg("Server stopped")
	return 0
}

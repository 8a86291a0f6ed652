package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	mw "github.com/5w1tchy/books-catalog/internal/api/middlewares"
	"github.com/5w1tchy/books-catalog/internal/config"
	"github.com/5w1tchy/books-catalog/internal/logging"
	"github.com/5w1tchy/books-catalog/internal/web"
	"github.com/5w1tchy/books-catalog/internal/webclient"
)

func main() {
	os.Exit(run())
}

func run() int {
	_, envErr := config.LoadDotEnv()

	cfg, err := config.LoadWeb()
	if err != nil {
		logging.Apply(config.Log{Level: config.DefaultLogLevel})
		log.Error().Err(err).Msg("invalid configuration")
		return 1
	}
	logging.Apply(cfg.Log)
	if envErr != nil {
		log.Warn().Err(envErr).Msg("Not applying .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler: mw.Chain(
			web.Handler(webclient.New(cfg.APIBaseURL, nil)),
			mw.RequestID,
			mw.AccessLog,
			mw.Recovery,
			mw.Compression,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("api", cfg.APIBaseURL).Msg("Web client is running")
		errCh <- server.ListenAndServe()
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown incomplete")
	}
	return 0
}

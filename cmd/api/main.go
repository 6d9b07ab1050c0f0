package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/aoc2021/internal/api"
	"github.com/povarna/aoc2021/internal/setup"
	"github.com/povarna/aoc2021/internal/setup/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("AoC 2021 API failed")
	}

	log.Info().Msg("AoC 2021 API stopped")
}

// run serves the API until ctx is cancelled. Every resource it opens is
// released before it returns.
func run(ctx context.Context) error {
	env := setup.LoadConfig()
	cfg, err := setup.LoadServiceConfig(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Logger = logger.New(cfg.Logging.Level, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	appLogger := log.Logger

	deps, err := setup.Wire(ctx, env, cfg, &appLogger)
	if err != nil {
		return fmt.Errorf("failed to wire dependencies: %w", err)
	}
	defer deps.Close()

	// API
	handler := api.NewHandler(deps.Executor, deps.Logger)
	container := api.NewContainer(handler)

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("address", addr).Msg("Starting AoC 2021 API")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

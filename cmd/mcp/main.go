package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/aoc2021/internal/api"
	"github.com/povarna/aoc2021/internal/mcpadapter"
	"github.com/povarna/aoc2021/internal/setup"
	"github.com/povarna/aoc2021/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// stdout carries the MCP protocol, logs go to stderr
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load env
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, &mcp.StdioTransport{})
	stop()
	if err != nil {
		log.Error().Err(err).Msg("MCP server failed")
		os.Exit(1)
	}
}

// run serves MCP over transport until the client disconnects or ctx is
// cancelled.
func run(ctx context.Context, transport mcp.Transport) error {
	env := setup.LoadConfig()
	cfg, err := setup.LoadServiceConfig(env)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	appLogger := logger.New(cfg.Logging.Level, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Wire dependencies
	deps, err := setup.Wire(ctx, env, cfg, &appLogger)
	if err != nil {
		return fmt.Errorf("unable to load dependencies: %w", err)
	}
	defer deps.Close()

	server := mcpadapter.NewServer(deps.Executor, api.Version)

	if err := server.Run(ctx, transport); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			appLogger.Debug().Err(err).Msg("MCP server stopped")
			return nil
		}
		return fmt.Errorf("failed to run mcp server: %w", err)
	}
	return nil
}

package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	aoc2021day01 "github.com/povarna/aoc2021/internal/aoc/2021/day01"
	aoc2021day02 "github.com/povarna/aoc2021/internal/aoc/2021/day02"
	"github.com/povarna/aoc2021/internal/cache"
	"github.com/povarna/aoc2021/internal/config"
	"github.com/povarna/aoc2021/internal/puzzle"
	"github.com/povarna/aoc2021/internal/solver"
	"github.com/rs/zerolog"
)

// Config holds the environment overrides applied on top of the YAML config.
type Config struct {
	ConfigPath    string
	LogLevel      string
	APIPort       int
	RedisAddr     string
	RedisPassword string
}

type Dependencies struct {
	Executor *solver.Executor
	Config   *config.Config
	Logger   *zerolog.Logger
	closers  []func() error
}

// Close releases external connections opened by Wire.
func (d *Dependencies) Close() error {
	var firstErr error
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func LoadConfig() *Config {
	return &Config{
		ConfigPath:    getEnv("AOC_CONFIG_PATH", config.DefaultPath),
		LogLevel:      getEnv("LOG_LEVEL", ""),
		APIPort:       getEnvInt("AOC_API_PORT", 0),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}
}

// LoadServiceConfig reads the YAML config and applies the environment
// overrides.
func LoadServiceConfig(env *Config) (*config.Config, error) {
	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load service config: %w", err)
	}

	if env.LogLevel != "" {
		cfg.Logging.Level = env.LogLevel
	}
	if env.APIPort != 0 {
		cfg.Server.Port = env.APIPort
	}
	if env.RedisAddr != "" {
		cfg.Cache.Enabled = true
		cfg.Cache.Addr = env.RedisAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service config: %w", err)
	}
	return cfg, nil
}

// NewRegistry registers every implemented puzzle.
func NewRegistry() (*puzzle.Registry, error) {
	registry := puzzle.NewRegistry()
	for _, register := range []func(*puzzle.Registry) error{
		aoc2021day01.Register,
		aoc2021day02.Register,
	} {
		if err := register(registry); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func Wire(ctx context.Context, env *Config, cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	registry, err := NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to register puzzles: %w", err)
	}

	var answers solver.AnswerCache = cache.NopCache{}
	if cfg.Cache.Enabled {
		client, err := cache.ConnectRedis(ctx, cfg.Cache.Addr, env.RedisPassword, cfg.Cache.MaxRetries, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect answer cache: %w", err)
		}
		deps.closers = append(deps.closers, client.Close)
		answers = cache.NewRedisCache(client, cfg.Cache.TTL, logger)
	} else {
		logger.Info().Msg("Answer cache disabled")
	}

	deps.Executor = solver.NewExecutor(registry, answers, cache.Key, logger)

	logger.Info().Int("puzzles", len(registry.Keys())).Msg("Dependencies wired")
	return deps, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/aoc2021/internal/models"
	"github.com/povarna/aoc2021/internal/puzzle"
	"github.com/rs/zerolog"
)

var ErrEmptyInput = errors.New("empty puzzle input")

// Registry resolves and runs puzzle solvers
type Registry interface {
	Solve(key puzzle.Key, input string) (int, error)
	Keys() []puzzle.Key
}

// AnswerCache stores answers of previously solved inputs
type AnswerCache interface {
	Get(ctx context.Context, key string) (int, bool, error)
	Set(ctx context.Context, key string, answer int) error
}

// KeyFunc derives the cache key of a request
type KeyFunc func(key puzzle.Key, input string) string

//go:generate mockgen -source=executor.go -destination=mocks/mocks.go -package=mocks

type Executor struct {
	registry Registry
	cache    AnswerCache
	cacheKey KeyFunc
	logger   *zerolog.Logger
}

func NewExecutor(registry Registry, cache AnswerCache, cacheKey KeyFunc, logger *zerolog.Logger) *Executor {
	return &Executor{
		registry: registry,
		cache:    cache,
		cacheKey: cacheKey,
		logger:   logger,
	}
}

func (e *Executor) Puzzles() []puzzle.Key {
	return e.registry.Keys()
}

func (e *Executor) Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error) {
	key := puzzle.NewKey(req.Day, req.Part, req.Variant)
	if err := key.Validate(); err != nil {
		return models.SolveResult{}, err
	}
	if strings.TrimSpace(req.Input) == "" {
		return models.SolveResult{}, ErrEmptyInput
	}

	result := models.SolveResult{
		ID:      uuid.NewString(),
		Day:     key.Day,
		Part:    key.Part,
		Variant: key.Variant,
	}
	e.logger.Info().Str("request_id", result.ID).Str("puzzle", key.String()).Msg("starting solve")

	cacheKey := e.cacheKey(key, req.Input)
	answer, found, err := e.cache.Get(ctx, cacheKey)
	if err != nil {
		e.logger.Warn().Err(err).Str("puzzle", key.String()).Msg("cache lookup failed")
	}
	if err == nil && found {
		result.Answer = answer
		result.Cached = true
		e.logger.Info().Str("request_id", result.ID).Int("answer", answer).Msg("answer served from cache")
		return result, nil
	}

	start := time.Now()
	answer, err = e.registry.Solve(key, req.Input)
	if err != nil {
		return models.SolveResult{}, fmt.Errorf("solve %s: %w", key, err)
	}
	result.Answer = answer
	result.Duration = time.Since(start)

	if err := e.cache.Set(ctx, cacheKey, answer); err != nil {
		e.logger.Warn().Err(err).Str("puzzle", key.String()).Msg("failed to cache answer")
	}

	e.logger.
		Info().
		Str("request_id", result.ID).
		Int("answer", answer).
		Dur("duration", result.Duration).
		Msg("solve complete")
	return result, nil
}

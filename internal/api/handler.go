package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/aoc2021/internal/api/middleware"
	"github.com/povarna/aoc2021/internal/models"
	"github.com/povarna/aoc2021/internal/puzzle"
	"github.com/povarna/aoc2021/internal/solver"
	"github.com/rs/zerolog"
)

const Version = "1.0.0"

type Handler struct {
	executor *solver.Executor
	logger   *zerolog.Logger
}

func NewHandler(executor *solver.Executor, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: executor,
		logger:   logger,
	}
}

// POST /api/v1/solve/{day}/{part}?variant=
// Body: SolveBody
// Returns: SolveResult
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	day, err := strconv.Atoi(req.PathParameter("day"))
	if err != nil {
		middleware.HandleError(resp, fmt.Errorf("invalid day %q", req.PathParameter("day")), http.StatusBadRequest)
		return
	}
	part, err := strconv.Atoi(req.PathParameter("part"))
	if err != nil {
		middleware.HandleError(resp, fmt.Errorf("invalid part %q", req.PathParameter("part")), http.StatusBadRequest)
		return
	}

	var body SolveBody
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	solveRequest := models.SolveRequest{
		Day:     day,
		Part:    part,
		Variant: req.QueryParameter("variant"),
		Input:   body.Input,
	}

	h.logger.Info().
		Int("day", solveRequest.Day).
		Int("part", solveRequest.Part).
		Str("variant", solveRequest.Variant).
		Int("input_bytes", len(solveRequest.Input)).
		Msg("Start solve")

	result, err := h.executor.Execute(req.Request.Context(), solveRequest)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Solve failed")
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	_ = resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/puzzles
func (h *Handler) ListPuzzles(req *restful.Request, resp *restful.Response) {
	_ = resp.WriteHeaderAndEntity(http.StatusOK, models.PuzzleList{Puzzles: h.executor.Puzzles()})
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: Version,
	}

	_ = resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, puzzle.ErrUnknownPuzzle):
		return http.StatusNotFound
	case errors.Is(err, puzzle.ErrInvalidKey), errors.Is(err, solver.ErrEmptyInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

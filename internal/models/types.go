package models

import (
	"time"

	"github.com/povarna/aoc2021/internal/puzzle"
)

// Input message
type SolveRequest struct {
	Day     int    `json:"day" jsonschema:"puzzle day (1-25)"`
	Part    int    `json:"part" jsonschema:"puzzle part (1 or 2)"`
	Variant string `json:"variant,omitempty" jsonschema:"implementation variant, defaults to 'default'"`
	Input   string `json:"input" jsonschema:"raw puzzle input, one entry per line"`
}

// Final output
type SolveResult struct {
	ID       string        `json:"id"`
	Day      int           `json:"day"`
	Part     int           `json:"part"`
	Variant  string        `json:"variant"`
	Answer   int           `json:"answer"`
	Cached   bool          `json:"cached"`
	Duration time.Duration `json:"duration_ns"`
}

type PuzzleList struct {
	Puzzles []puzzle.Key `json:"puzzles"`
}

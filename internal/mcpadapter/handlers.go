package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/aoc2021/internal/models"
	"github.com/povarna/aoc2021/internal/solver"
)

// SolveInput is the MCP tool input schema for solving one puzzle part.
type SolveInput struct {
	Day     int    `json:"day" jsonschema:"puzzle day (1-25)"`
	Part    int    `json:"part" jsonschema:"puzzle part (1 or 2)"`
	Variant string `json:"variant,omitempty" jsonschema:"implementation variant, defaults to 'default'"`
	Input   string `json:"input" jsonschema:"raw puzzle input, one entry per line"`
}

// ListPuzzlesInput takes no arguments.
type ListPuzzlesInput struct{}

// NewSolveHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewSolveHandler(exec *solver.Executor) func(context.Context, *mcp.CallToolRequest, SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, models.SolveResult, error) {
		result, err := exec.Execute(ctx, models.SolveRequest{
			Day:     input.Day,
			Part:    input.Part,
			Variant: input.Variant,
			Input:   input.Input,
		})
		if err != nil {
			return nil, models.SolveResult{}, err
		}
		return nil, result, nil
	}
}

func NewListPuzzlesHandler(exec *solver.Executor) func(context.Context, *mcp.CallToolRequest, ListPuzzlesInput) (*mcp.CallToolResult, models.PuzzleList, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListPuzzlesInput) (*mcp.CallToolResult, models.PuzzleList, error) {
		return nil, models.PuzzleList{Puzzles: exec.Puzzles()}, nil
	}
}

func NewServer(exec *solver.Executor, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "aoc2021",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_puzzle",
		Description: "Solve one part of an Advent of Code 2021 puzzle for the given input",
	}, NewSolveHandler(exec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_puzzles",
		Description: "List the registered puzzle days, parts and implementation variants",
	}, NewListPuzzlesHandler(exec))
	return server
}

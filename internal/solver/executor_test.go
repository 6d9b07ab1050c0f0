package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/aoc2021/internal/models"
	"github.com/povarna/aoc2021/internal/puzzle"
	"github.com/povarna/aoc2021/internal/solver/mocks"
	"github.com/rs/zerolog"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

const depths = "199\n200\n208\n210\n200\n207\n240\n269\n260\n263"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func staticKey(key puzzle.Key, input string) string {
	return key.String()
}

func TestExecutor_Execute_Miss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistry(ctrl)
	mockCache := mocks.NewMockAnswerCache(ctrl)

	key := puzzle.NewKey(1, 1, "")
	mockCache.EXPECT().Get(gomock.Any(), "day01/part1/default").Return(0, false, nil)
	mockRegistry.EXPECT().Solve(key, depths).Return(7, nil)
	mockCache.EXPECT().Set(gomock.Any(), "day01/part1/default", 7).Return(nil)

	executor := NewExecutor(mockRegistry, mockCache, staticKey, newTestLogger())

	result, err := executor.Execute(context.Background(), models.SolveRequest{Day: 1, Part: 1, Input: depths})
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if result.Answer != 7 {
		t.Errorf("expected answer 7, got %d", result.Answer)
	}
	if result.Cached {
		t.Error("expected uncached result")
	}
	if result.Variant != puzzle.DefaultVariant {
		t.Errorf("expected default variant, got %s", result.Variant)
	}
	if result.ID == "" {
		t.Error("expected result ID to be set")
	}
}

func TestExecutor_Execute_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistry(ctrl)
	mockCache := mocks.NewMockAnswerCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), "day01/part2/sums").Return(5, true, nil)
	// Registry must not be called on a cache hit
	mockRegistry.EXPECT().Solve(gomock.Any(), gomock.Any()).Times(0)

	executor := NewExecutor(mockRegistry, mockCache, staticKey, newTestLogger())

	result, err := executor.Execute(context.Background(), models.SolveRequest{Day: 1, Part: 2, Variant: "sums", Input: depths})
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if result.Answer != 5 || !result.Cached {
		t.Errorf("expected cached answer 5, got %+v", result)
	}
}

func TestExecutor_Execute_CacheErrorsDoNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistry(ctrl)
	mockCache := mocks.NewMockAnswerCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0, false, errors.New("connection refused"))
	mockRegistry.EXPECT().Solve(puzzle.NewKey(2, 2, ""), "forward 5").Return(0, nil)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), 0).Return(errors.New("connection refused"))

	executor := NewExecutor(mockRegistry, mockCache, staticKey, newTestLogger())

	result, err := executor.Execute(context.Background(), models.SolveRequest{Day: 2, Part: 2, Input: "forward 5"})
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if result.Cached {
		t.Error("expected uncached result")
	}
}

func TestExecutor_Execute_UnknownPuzzle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistry(ctrl)
	mockCache := mocks.NewMockAnswerCache(ctrl)

	key := puzzle.NewKey(3, 1, "")
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0, false, nil)
	mockRegistry.EXPECT().Solve(key, "00100").Return(0, puzzle.ErrUnknownPuzzle)

	executor := NewExecutor(mockRegistry, mockCache, staticKey, newTestLogger())

	_, err := executor.Execute(context.Background(), models.SolveRequest{Day: 3, Part: 1, Input: "00100"})
	if !errors.Is(err, puzzle.ErrUnknownPuzzle) {
		t.Errorf("expected ErrUnknownPuzzle, got %v", err)
	}
}

func TestExecutor_Execute_RejectsBadRequests(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SolveRequest
		wantErr error
	}{
		{"empty input", models.SolveRequest{Day: 1, Part: 1, Input: "  \n "}, ErrEmptyInput},
		{"invalid day", models.SolveRequest{Day: 0, Part: 1, Input: depths}, puzzle.ErrInvalidKey},
		{"invalid part", models.SolveRequest{Day: 1, Part: 3, Input: depths}, puzzle.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No collaborator may be reached for a rejected request
			executor := NewExecutor(mocks.NewMockRegistry(ctrl), mocks.NewMockAnswerCache(ctrl), staticKey, newTestLogger())

			_, err := executor.Execute(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExecutor_Puzzles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistry(ctrl)
	keys := []puzzle.Key{puzzle.NewKey(1, 1, ""), puzzle.NewKey(1, 2, "")}
	mockRegistry.EXPECT().Keys().Return(keys)

	executor := NewExecutor(mockRegistry, mocks.NewMockAnswerCache(ctrl), staticKey, newTestLogger())

	if got := executor.Puzzles(); len(got) != 2 {
		t.Errorf("expected 2 puzzles, got %d", len(got))
	}
}

package service

import (
	"context"

	"github.com/wricardo/warehouse/game/engine"
)

// SolverService defines all puzzle-level operations
type SolverService interface {
	// Simulation
	Solve(ctx context.Context, puzzleName string, variant engine.Variant) (*SolveResult, error)
	SolveAll(ctx context.Context, puzzleName string) ([]*SolveResult, error)

	// Catalogue
	ListPuzzles(ctx context.Context) ([]*PuzzleInfo, error)
	Validate(ctx context.Context, puzzleName string) (*ValidationResult, error)
}

// PuzzleManager handles puzzle loading
type PuzzleManager interface {
	LoadPuzzle(name string) (*engine.Puzzle, error)
	ListPuzzles() ([]*PuzzleInfo, error)
}

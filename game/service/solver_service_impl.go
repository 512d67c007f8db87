package service

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/wricardo/warehouse/game/engine"
)

var ErrPuzzleUnavailable = errors.New("puzzle unavailable")

// solverServiceImpl implements the SolverService interface
type solverServiceImpl struct {
	puzzles PuzzleManager
}

// NewSolverService creates a new solver service instance
func NewSolverService(puzzles PuzzleManager) SolverService {
	return &solverServiceImpl{
		puzzles: puzzles,
	}
}

// loadPuzzle wraps manager errors with the list of known puzzle ids
func (s *solverServiceImpl) loadPuzzle(name string) (*engine.Puzzle, error) {
	puzzle, err := s.puzzles.LoadPuzzle(name)
	if err == nil {
		return puzzle, nil
	}

	if available, listErr := s.puzzles.ListPuzzles(); listErr == nil && len(available) > 0 {
		ids := make([]string, 0, len(available))
		for _, info := range available {
			ids = append(ids, info.PuzzleID)
		}
		return nil, fmt.Errorf("%w: %s (available: %v): %w", ErrPuzzleUnavailable, name, ids, err)
	}
	return nil, fmt.Errorf("%w: %s: %w", ErrPuzzleUnavailable, name, err)
}

// Solve runs the puzzle's full move list under one variant
func (s *solverServiceImpl) Solve(ctx context.Context, puzzleName string, variant engine.Variant) (*SolveResult, error) {
	puzzle, err := s.loadPuzzle(puzzleName)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, puzzle, variant)
}

// SolveAll runs the puzzle under every variant its layout supports, single
// width first
func (s *solverServiceImpl) SolveAll(ctx context.Context, puzzleName string) ([]*SolveResult, error) {
	puzzle, err := s.loadPuzzle(puzzleName)
	if err != nil {
		return nil, err
	}

	variants := variantsFor(puzzle)
	results := make([]*SolveResult, 0, len(variants))
	for _, variant := range variants {
		result, err := s.run(ctx, puzzle, variant)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *solverServiceImpl) run(ctx context.Context, puzzle *engine.Puzzle, variant engine.Variant) (*SolveResult, error) {
	logger := log.WithFields(log.Fields{
		"puzzle":  puzzle.Name,
		"variant": variant,
		"moves":   len(puzzle.Moves),
	})

	eng, err := engine.NewEngine(puzzle, variant)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s warehouse for %s: %w", variant, puzzle.Name, err)
	}

	logger.Debug("running move list")
	for eng.Remaining() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := eng.Step(); err != nil {
			logger.WithError(err).Warn("simulation aborted")
			return nil, fmt.Errorf("%s (%s): %w", puzzle.Name, variant, err)
		}
	}

	state := eng.GetState()
	result := &SolveResult{
		Puzzle:      puzzle.Name,
		Variant:     variant,
		Score:       eng.Score(),
		Moves:       state.TotalMoves,
		Blocked:     state.BlockedMoves,
		BoxesPushed: state.BoxesPushed,
		Robot:       state.Robot,
		Grid:        state.Grid.Render(state.Robot),
	}

	if expected, ok := puzzle.Expected[variant]; ok {
		result.Expected = &expected
		result.Matches = expected == result.Score
		if !result.Matches {
			logger.WithFields(log.Fields{
				"expected": expected,
				"score":    result.Score,
			}).Warn("score differs from catalogue answer")
		}
	}

	logger.WithFields(log.Fields{
		"score":   result.Score,
		"blocked": result.Blocked,
		"pushed":  result.BoxesPushed,
	}).Info("simulation finished")

	return result, nil
}

// ListPuzzles returns every puzzle the manager knows about
func (s *solverServiceImpl) ListPuzzles(ctx context.Context) ([]*PuzzleInfo, error) {
	return s.puzzles.ListPuzzles()
}

// Validate loads a puzzle and checks that it runs cleanly under both
// variants. Problems with the puzzle itself are reported in the result; only
// lookup failures are returned as errors.
func (s *solverServiceImpl) Validate(ctx context.Context, puzzleName string) (*ValidationResult, error) {
	result := &ValidationResult{
		Puzzle: puzzleName,
		Valid:  true,
		Errors: []string{},
		Scores: make(map[engine.Variant]int),
	}

	puzzle, err := s.puzzles.LoadPuzzle(puzzleName)
	if err != nil {
		if errors.Is(err, engine.ErrMalformedInput) {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
			return result, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrPuzzleUnavailable, puzzleName, err)
	}

	if edge, leaks := findEdgeLeak(puzzle); leaks {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Robot can reach the grid edge at %v", edge))
	}

	for _, variant := range variantsFor(puzzle) {
		solved, err := s.run(ctx, puzzle, variant)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", variant, err))
			continue
		}

		result.Scores[variant] = solved.Score
		if solved.Expected != nil && !solved.Matches {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s: expected score %d, got %d", variant, *solved.Expected, solved.Score))
		}
	}

	if result.Valid {
		if state, err := engine.InitGameState(puzzle, sourceVariant(puzzle)); err == nil {
			result.Info = append(result.Info, fmt.Sprintf("✓ Grid: %dx%d", state.Grid.Rows(), state.Grid.Cols()))
			result.Info = append(result.Info, fmt.Sprintf("✓ Boxes: %d", engine.CountBoxes(state.Grid)))
			result.Info = append(result.Info, fmt.Sprintf("✓ Robot: %v", state.Robot))
		}
		result.Info = append(result.Info, fmt.Sprintf("✓ Moves: %d", len(puzzle.Moves)))
		for _, variant := range engine.Variants {
			if score, ok := result.Scores[variant]; ok {
				result.Info = append(result.Info, fmt.Sprintf("✓ %s score: %d", variant, score))
			}
		}
	}

	return result, nil
}

// findEdgeLeak flood-fills from the robot over non-wall cells of the puzzle
// as written and reports the first border cell it reaches.
func findEdgeLeak(puzzle *engine.Puzzle) (engine.Position, bool) {
	state, err := engine.InitGameState(puzzle, sourceVariant(puzzle))
	if err != nil {
		return engine.Position{}, false
	}

	grid := state.Grid
	visited := mapset.New[engine.Position]()
	queue := []engine.Position{state.Robot}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Has(current) {
			continue
		}
		visited.Put(current)

		if current.Row == 0 || current.Col == 0 || current.Row == grid.Rows()-1 || current.Col == grid.Cols()-1 {
			return current, true
		}

		for _, dir := range engine.Directions {
			next := current.Step(dir)
			if cell, err := grid.CellAt(next); err == nil && cell != engine.Wall && !visited.Has(next) {
				queue = append(queue, next)
			}
		}
	}

	return engine.Position{}, false
}

// sourceVariant is the variant a layout is written in
func sourceVariant(puzzle *engine.Puzzle) engine.Variant {
	if engine.IsWideLayout(puzzle.Layout) {
		return engine.DoubleWidth
	}
	return engine.SingleWidth
}

// variantsFor lists the variants a puzzle can run under. Pre-widened layouts
// only run double width.
func variantsFor(puzzle *engine.Puzzle) []engine.Variant {
	if sourceVariant(puzzle) == engine.DoubleWidth {
		return []engine.Variant{engine.DoubleWidth}
	}
	return engine.Variants
}

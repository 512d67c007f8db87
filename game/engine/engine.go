package engine

import "fmt"

// Engine provides the main interface for simulation operations
type Engine interface {
	// State management
	GetState() *GameState
	Reset() *GameState
	GetVariant() Variant
	GetRobotPosition() Position
	Score() int

	// Movement operations
	Move(dir Direction) (bool, error)
	CanMove(dir Direction) bool
	GetPossibleMoves() []Direction
	BulkMove(moves []Direction) ([]bool, error)

	// Puzzle move list
	GetPuzzle() *Puzzle
	Step() (bool, error)
	Run() error
	Remaining() int
}

// GameEngine implements the Engine interface
type GameEngine struct {
	puzzle  *Puzzle
	variant Variant
	state   *GameState
	next    int
}

// NewEngine creates a new engine for the puzzle under the given variant
func NewEngine(puzzle *Puzzle, variant Variant) (*GameEngine, error) {
	state, err := InitGameState(puzzle, variant)
	if err != nil {
		return nil, err
	}

	return &GameEngine{
		puzzle:  puzzle,
		variant: variant,
		state:   state,
	}, nil
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// Reset rebuilds the initial state and rewinds the move list
func (e *GameEngine) Reset() *GameState {
	// The puzzle was validated in NewEngine, so rebuilding cannot fail
	state, err := InitGameState(e.puzzle, e.variant)
	if err == nil {
		e.state = state
		e.next = 0
	}
	return e.state
}

// GetVariant returns the box width this engine simulates
func (e *GameEngine) GetVariant() Variant {
	return e.variant
}

// GetRobotPosition returns the current robot position
func (e *GameEngine) GetRobotPosition() Position {
	return e.state.Robot
}

// Score returns the box coordinate sum of the current grid
func (e *GameEngine) Score() int {
	return Score(e.state.Grid)
}

// Move applies a single move outside of the puzzle's move list
func (e *GameEngine) Move(dir Direction) (bool, error) {
	return e.state.MoveRobot(dir)
}

// CanMove checks if the robot can move in the specified direction
func (e *GameEngine) CanMove(dir Direction) bool {
	return e.state.CanMove(dir)
}

// GetPossibleMoves returns all directions the robot can currently move
func (e *GameEngine) GetPossibleMoves() []Direction {
	var possible []Direction
	for _, dir := range Directions {
		if e.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// BulkMove executes multiple moves in sequence, returning success status for
// each. It stops at the first fatal error.
func (e *GameEngine) BulkMove(moves []Direction) ([]bool, error) {
	results := make([]bool, 0, len(moves))

	for i, dir := range moves {
		ok, err := e.Move(dir)
		if err != nil {
			return results, fmt.Errorf("move %d (%s): %w", i+1, dir, err)
		}
		results = append(results, ok)
	}

	return results, nil
}

// GetPuzzle returns the puzzle this engine was built from
func (e *GameEngine) GetPuzzle() *Puzzle {
	return e.puzzle
}

// Step consumes the next pending puzzle move. Once the list is exhausted it
// returns false without error.
func (e *GameEngine) Step() (bool, error) {
	if e.next >= len(e.puzzle.Moves) {
		return false, nil
	}

	dir := e.puzzle.Moves[e.next]
	e.next++
	ok, err := e.Move(dir)
	if err != nil {
		return false, fmt.Errorf("move %d (%s): %w", e.next, dir, err)
	}
	return ok, nil
}

// Run consumes every pending puzzle move in order
func (e *GameEngine) Run() error {
	for e.Remaining() > 0 {
		if _, err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Remaining returns the number of puzzle moves not yet applied
func (e *GameEngine) Remaining() int {
	return len(e.puzzle.Moves) - e.next
}

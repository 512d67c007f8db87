package service

import (
	"github.com/wricardo/warehouse/game/engine"
)

// SolveResult contains the outcome of running a puzzle's full move list
type SolveResult struct {
	Puzzle  string         `json:"puzzle"`
	Variant engine.Variant `json:"variant"`
	Score   int            `json:"score"`

	// Move statistics
	Moves       int `json:"moves"`
	Blocked     int `json:"blocked"`
	BoxesPushed int `json:"boxes_pushed"`

	Robot engine.Position `json:"robot"`
	Grid  []string        `json:"grid,omitempty"`

	// Expected is nil when the catalogue has no answer for this variant
	Expected *int `json:"expected,omitempty"`
	Matches  bool `json:"matches"`
}

// PuzzleInfo provides information about a puzzle in the catalogue
type PuzzleInfo struct {
	Filename    string                 `json:"filename"`
	PuzzleID    string                 `json:"puzzle_id"` // The identifier to pass to Solve
	Name        string                 `json:"name"`      // Display name
	Description string                 `json:"description,omitempty"`
	Rows        int                    `json:"rows"`
	Cols        int                    `json:"cols"`
	Boxes       int                    `json:"boxes"`
	Moves       int                    `json:"moves"`
	Expected    map[engine.Variant]int `json:"expected,omitempty"`
}

// ValidationResult reports the structural checks run against one puzzle
type ValidationResult struct {
	Puzzle string   `json:"puzzle"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
	Info   []string `json:"info,omitempty"`

	// Scores per variant, filled for every variant that ran to completion
	Scores map[engine.Variant]int `json:"scores,omitempty"`
}

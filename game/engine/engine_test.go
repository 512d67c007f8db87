package engine

import (
	"testing"
)

func createSmallPuzzle(t *testing.T) *Puzzle {
	t.Helper()
	moves, err := ParseMoves("<^^>>>vv<v>>v<<")
	if err != nil {
		t.Fatalf("Failed to parse moves: %v", err)
	}
	return &Puzzle{
		Name: "small",
		Layout: []string{
			"########",
			"#..O.O.#",
			"##@.O..#",
			"#...O..#",
			"#.#.O..#",
			"#...O..#",
			"#......#",
			"########",
		},
		Moves: moves,
	}
}

func createWidePuzzle(t *testing.T) *Puzzle {
	t.Helper()
	moves, err := ParseMoves("<vv<<^^<<^^")
	if err != nil {
		t.Fatalf("Failed to parse moves: %v", err)
	}
	return &Puzzle{
		Name: "wide",
		Layout: []string{
			"#######",
			"#...#.#",
			"#.....#",
			"#..OO@#",
			"#..O..#",
			"#.....#",
			"#######",
		},
		Moves: moves,
	}
}

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine(createSmallPuzzle(t), SingleWidth)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	if engine.GetVariant() != SingleWidth {
		t.Errorf("Expected single variant, got %s", engine.GetVariant())
	}
	if engine.GetRobotPosition() != (Position{Row: 2, Col: 2}) {
		t.Errorf("Expected robot at (2,2), got %v", engine.GetRobotPosition())
	}
	if engine.Remaining() != 15 {
		t.Errorf("Expected 15 pending moves, got %d", engine.Remaining())
	}
	if engine.GetPuzzle().Name != "small" {
		t.Errorf("Expected puzzle 'small', got %q", engine.GetPuzzle().Name)
	}
}

func TestNewEngine_InvalidPuzzle(t *testing.T) {
	puzzle := &Puzzle{Name: "broken", Layout: []string{"###", "#.#", "###"}}
	if _, err := NewEngine(puzzle, SingleWidth); err == nil {
		t.Error("Expected error for puzzle without robot")
	}
}

func TestEngine_RunSamples(t *testing.T) {
	tests := []struct {
		name      string
		puzzle    func(*testing.T) *Puzzle
		variant   Variant
		score     int
		pushed    int
		finalGrid []string
	}{
		{
			name:    "small single",
			puzzle:  createSmallPuzzle,
			variant: SingleWidth,
			score:   2028,
			pushed:  10,
			finalGrid: []string{
				"########",
				"#....OO#",
				"##.....#",
				"#.....O#",
				"#.#O@..#",
				"#...O..#",
				"#...O..#",
				"########",
			},
		},
		{
			name:    "small double",
			puzzle:  createSmallPuzzle,
			variant: DoubleWidth,
			score:   1751,
			pushed:  4,
			finalGrid: []string{
				"################",
				"##......[][]..##",
				"####....[]....##",
				"##......[]....##",
				"##..##...[]...##",
				"##....@.......##",
				"##......[]....##",
				"################",
			},
		},
		{
			name:    "wide single",
			puzzle:  createWidePuzzle,
			variant: SingleWidth,
			score:   908,
			pushed:  3,
			finalGrid: []string{
				"#######",
				"#@..#.#",
				"#.O...#",
				"#..O..#",
				"#..O..#",
				"#.....#",
				"#######",
			},
		},
		{
			name:    "wide double",
			puzzle:  createWidePuzzle,
			variant: DoubleWidth,
			score:   618,
			pushed:  6,
			finalGrid: []string{
				"##############",
				"##...[].##..##",
				"##...@.[]...##",
				"##....[]....##",
				"##..........##",
				"##..........##",
				"##############",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			engine, err := NewEngine(test.puzzle(t), test.variant)
			if err != nil {
				t.Fatalf("Failed to create engine: %v", err)
			}

			if err := engine.Run(); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if score := engine.Score(); score != test.score {
				t.Errorf("Expected score %d, got %d", test.score, score)
			}
			if engine.Remaining() != 0 {
				t.Errorf("Expected move list to be consumed, %d left", engine.Remaining())
			}
			state := engine.GetState()
			if state.BoxesPushed != test.pushed {
				t.Errorf("Expected %d boxes pushed, got %d", test.pushed, state.BoxesPushed)
			}
			assertLayout(t, state, test.finalGrid...)
		})
	}
}

func TestEngine_StepConsumesMovesOnce(t *testing.T) {
	engine, err := NewEngine(createSmallPuzzle(t), SingleWidth)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// First move is "<" into a wall
	moved, err := engine.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if moved {
		t.Error("Expected first move to be blocked")
	}
	if engine.Remaining() != 14 {
		t.Errorf("Expected 14 moves left, got %d", engine.Remaining())
	}

	if err := engine.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	moved, err = engine.Step()
	if err != nil || moved {
		t.Errorf("Expected exhausted move list to be a no-op, got moved=%v err=%v", moved, err)
	}
	if engine.GetState().TotalMoves != 15 {
		t.Errorf("Expected 15 moves applied, got %d", engine.GetState().TotalMoves)
	}
}

func TestEngine_Reset(t *testing.T) {
	engine, err := NewEngine(createSmallPuzzle(t), SingleWidth)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	initialScore := engine.Score()

	if err := engine.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	state := engine.Reset()
	if state.TotalMoves != 0 {
		t.Errorf("Expected counters to be reset, got %d moves", state.TotalMoves)
	}
	if engine.Remaining() != 15 {
		t.Errorf("Expected move list rewound, got %d remaining", engine.Remaining())
	}
	if engine.Score() != initialScore {
		t.Errorf("Expected initial score %d after reset, got %d", initialScore, engine.Score())
	}
}

func TestEngine_BulkMoveAndPossibleMoves(t *testing.T) {
	engine, err := NewEngine(&Puzzle{
		Name: "bulk",
		Layout: []string{
			"#####",
			"#@O.#",
			"#...#",
			"#####",
		},
	}, SingleWidth)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	possible := engine.GetPossibleMoves()
	if len(possible) != 2 || possible[0] != Down || possible[1] != Right {
		t.Errorf("Expected possible moves [down right], got %v", possible)
	}

	results, err := engine.BulkMove([]Direction{Right, Right, Down})
	if err != nil {
		t.Fatalf("BulkMove failed: %v", err)
	}
	if want := []bool{true, false, true}; !equalBools(results, want) {
		t.Errorf("Expected results %v, got %v", want, results)
	}
	if engine.GetRobotPosition() != (Position{Row: 2, Col: 2}) {
		t.Errorf("Expected robot at (2,2), got %v", engine.GetRobotPosition())
	}
}

func TestEngine_ScoreIndependentOfPath(t *testing.T) {
	layout := []string{
		"######",
		"#....#",
		"#.O..#",
		"#.@..#",
		"######",
	}

	// Two different move sequences that leave the box at (1,3)
	paths := [][]Direction{
		{Up, Left, Up, Right},
		{Left, Up, Right, Down, Right, Up},
	}

	scores := make([]int, 0, len(paths))
	for _, moves := range paths {
		engine, err := NewEngine(&Puzzle{Name: "paths", Layout: layout}, SingleWidth)
		if err != nil {
			t.Fatalf("Failed to create engine: %v", err)
		}
		if _, err := engine.BulkMove(moves); err != nil {
			t.Fatalf("BulkMove failed: %v", err)
		}
		if cell, _ := engine.GetState().Grid.CellAt(Position{Row: 1, Col: 3}); cell != Box {
			t.Fatalf("Expected box at (1,3) after %v, grid:\n%v", moves, engine.GetState().Grid.Render(engine.GetRobotPosition()))
		}
		scores = append(scores, engine.Score())
	}

	if scores[0] != 103 || scores[1] != 103 {
		t.Errorf("Expected both paths to score 103, got %v", scores)
	}
}

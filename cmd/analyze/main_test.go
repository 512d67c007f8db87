package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wricardo/warehouse/game/engine"
	"github.com/wricardo/warehouse/game/puzzle"
)

func TestAnalyzePuzzle(t *testing.T) {
	p, err := puzzle.Parse("test", "######\n#O..O#\n#.@..#\n#..O.#\n######\n\n<<^>vv\n")
	if err != nil {
		t.Fatalf("Failed to parse puzzle: %v", err)
	}

	stats := analyzePuzzle(p)

	if stats.Rows != 5 || stats.Cols != 6 {
		t.Errorf("Expected 5x6 grid, got %dx%d", stats.Rows, stats.Cols)
	}
	if stats.Robot != (engine.Position{Row: 2, Col: 2}) {
		t.Errorf("Expected robot at (2,2), got %v", stats.Robot)
	}
	if stats.Boxes != 3 {
		t.Errorf("Expected 3 boxes, got %d", stats.Boxes)
	}
	if stats.Walls != 18 {
		t.Errorf("Expected 18 walls, got %d", stats.Walls)
	}
	if stats.TotalMoves != 6 || stats.Moves[engine.Left] != 2 || stats.Moves[engine.Down] != 2 {
		t.Errorf("Unexpected move counts: %d %v", stats.TotalMoves, stats.Moves)
	}

	// (1,1) and (1,4) are corners; (3,3) only touches the bottom wall
	want := []engine.Position{{Row: 1, Col: 1}, {Row: 1, Col: 4}}
	if len(stats.CornerBoxes) != len(want) {
		t.Fatalf("Expected %d corner boxes, got %v", len(want), stats.CornerBoxes)
	}
	for i := range want {
		if stats.CornerBoxes[i] != want[i] {
			t.Errorf("Corner box %d: expected %v, got %v", i, want[i], stats.CornerBoxes[i])
		}
	}
}

func TestAnalyzePuzzle_Wide(t *testing.T) {
	p, err := puzzle.Parse("wide", "##########\n##@.[]..##\n##########\n")
	if err != nil {
		t.Fatalf("Failed to parse puzzle: %v", err)
	}

	stats := analyzePuzzle(p)
	if stats.Cols != 10 || stats.Boxes != 1 || stats.TotalMoves != 0 {
		t.Errorf("Unexpected stats for wide puzzle: %+v", stats)
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, PuzzleStats{
		Rows:        3,
		Cols:        5,
		Boxes:       1,
		Walls:       12,
		Robot:       engine.Position{Row: 1, Col: 1},
		Moves:       map[engine.Direction]int{engine.Right: 2},
		TotalMoves:  2,
		CornerBoxes: []engine.Position{{Row: 1, Col: 3}},
	})

	out := buf.String()
	for _, want := range []string{
		"Grid Size: 3 x 5",
		"Robot Start: (1,1)",
		"Moves: 2 (up 0, down 0, left 0, right 2)",
		"1 boxes are stuck in corners",
		"Stuck: (1,3)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

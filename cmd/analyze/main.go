// Command analyze prints quick, human-readable statistics about the puzzle
// files in a directory (puzzles by default). It summarizes dimensions, box and
// wall counts, the robot start and the move mix, and highlights boxes that
// can never be pushed because they sit in a corner.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wricardo/warehouse/game/engine"
	"github.com/wricardo/warehouse/game/puzzle"
)

// PuzzleStats summarizes one puzzle as written
type PuzzleStats struct {
	Rows, Cols  int
	Boxes       int
	Walls       int
	Robot       engine.Position
	Moves       map[engine.Direction]int
	TotalMoves  int
	CornerBoxes []engine.Position
}

func main() {
	dir := "puzzles"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"+puzzle.PuzzleExt))
	if err != nil {
		fmt.Printf("Error finding puzzle files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No puzzle files in %s\n", dir)
		return
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		p, err := puzzle.LoadFile(file)
		if err != nil {
			fmt.Printf("Error loading puzzle: %v\n", err)
			continue
		}
		printStats(os.Stdout, analyzePuzzle(p))
	}
}

// analyzePuzzle collects statistics from the puzzle's initial state. Puzzles
// are validated on load, so the layout always builds.
func analyzePuzzle(p *engine.Puzzle) PuzzleStats {
	variant := engine.SingleWidth
	if engine.IsWideLayout(p.Layout) {
		variant = engine.DoubleWidth
	}
	state, err := engine.InitGameState(p, variant)
	if err != nil {
		return PuzzleStats{Moves: engine.CountMoves(p.Moves), TotalMoves: len(p.Moves)}
	}

	grid := state.Grid
	stats := PuzzleStats{
		Rows:       grid.Rows(),
		Cols:       grid.Cols(),
		Boxes:      engine.CountBoxes(grid),
		Walls:      engine.CountCellType(grid, engine.Wall),
		Robot:      state.Robot,
		Moves:      engine.CountMoves(p.Moves),
		TotalMoves: len(p.Moves),
	}

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			pos := engine.Position{Row: row, Col: col}
			if cell, _ := grid.CellAt(pos); cell == engine.Box && isCorner(grid, pos) {
				stats.CornerBoxes = append(stats.CornerBoxes, pos)
			}
		}
	}

	return stats
}

// isCorner reports whether a vertical and a horizontal neighbour are both
// walls, which leaves a single-width box with no push that can move it
func isCorner(grid engine.Grid, pos engine.Position) bool {
	wall := func(dir engine.Direction) bool {
		cell, err := grid.CellAt(pos.Step(dir))
		return err == nil && cell == engine.Wall
	}
	return (wall(engine.Up) || wall(engine.Down)) && (wall(engine.Left) || wall(engine.Right))
}

func printStats(w io.Writer, stats PuzzleStats) {
	fmt.Fprintf(w, "Grid Size: %d x %d\n", stats.Rows, stats.Cols)
	fmt.Fprintf(w, "Robot Start: %v\n", stats.Robot)
	fmt.Fprintf(w, "Boxes: %d\n", stats.Boxes)
	fmt.Fprintf(w, "Walls: %d\n", stats.Walls)
	fmt.Fprintf(w, "Moves: %d (up %d, down %d, left %d, right %d)\n",
		stats.TotalMoves,
		stats.Moves[engine.Up], stats.Moves[engine.Down],
		stats.Moves[engine.Left], stats.Moves[engine.Right])

	if len(stats.CornerBoxes) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d boxes are stuck in corners and can never move\n", len(stats.CornerBoxes))
		for i, pos := range stats.CornerBoxes {
			if i < 5 { // Show first 5 stuck boxes
				fmt.Fprintf(w, "   Stuck: %v\n", pos)
			}
		}
		if len(stats.CornerBoxes) > 5 {
			fmt.Fprintf(w, "   ... and %d more\n", len(stats.CornerBoxes)-5)
		}
	} else {
		fmt.Fprintf(w, "✅ No box is stuck in a corner\n")
	}
}

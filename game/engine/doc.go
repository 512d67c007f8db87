// Package engine provides the core simulation for the warehouse robot puzzle.
//
// The engine package implements:
//   - The grid model: cell types, positions and the four cardinal directions
//   - Push feasibility resolution for single-width and double-width boxes
//   - Committing a feasible push to the grid and advancing the robot
//   - Scoring the final grid by box coordinates
//   - Building a game state from a textual layout, including widening
//
// Core Types:
//
// The Engine interface defines the simulation contract, implemented by
// GameEngine. GameState holds the grid and the robot position; Puzzle holds a
// parsed layout and its move list. Variant selects single-width or
// double-width boxes and is passed explicitly to every constructor.
//
// Usage:
//
//	puzzle := &engine.Puzzle{Name: "sample", Layout: rows, Moves: moves}
//
//	gameEngine, err := engine.NewEngine(puzzle, engine.DoubleWidth)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := gameEngine.Run(); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(gameEngine.Score())
//
// Rules:
//
// A move first resolves, without touching the grid, every box that would have
// to shift. If any box in the chain would run into a wall the move is a no-op.
// Otherwise boxes are committed farthest-first and the robot advances exactly
// one cell. Walking off the grid or meeting an unknown cell is a fatal error.
package engine

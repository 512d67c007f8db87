// Package service provides the business logic layer for the warehouse
// simulator.
//
// The service package implements:
//   - Puzzle lookup through a PuzzleManager
//   - Running a puzzle's move list under one or both box widths
//   - Comparing scores against the catalogue's expected answers
//   - Structural validation of puzzle files
//
// Core Interfaces:
//
// SolverService is the main service interface used by the CLI.
// PuzzleManager loads and lists puzzles; game/puzzle provides the
// file-backed implementation.
//
// Usage:
//
//	puzzles, err := puzzle.NewManager("puzzles")
//	if err != nil {
//		log.Fatal(err)
//	}
//	solver := service.NewSolverService(puzzles)
//
//	// Both variants, single first
//	results, err := solver.SolveAll(ctx, "large")
//
// Every run builds its own engine, so results never share a grid.
package service

// Package puzzle reads warehouse puzzle files and keeps a catalogue of them.
//
// Puzzle Format:
//
// A puzzle file holds the warehouse grid, one row per line, followed by the
// robot's move list:
//
//	##########
//	#..O..O.O#
//	#......O.#
//	#.OO..O.O#
//	#..O@..O.#
//	...
//
//	<vv>^<v^>v>^vv^v>v<>v^v<v<^vv<<<^><<><>
//
// Grid glyphs are # . O @ (or [ ] for pre-widened grids). Move glyphs are
// ^ v < > and may span any number of lines. Blank lines and carriage returns
// are ignored.
//
// Catalogue:
//
// A puzzle directory may carry a catalog.yaml naming each puzzle, its file
// and the known answer per variant:
//
//	puzzles:
//	  - name: large
//	    description: Larger sample
//	    file: large.txt
//	    expected:
//	      single: 10092
//	      double: 9021
//
// Files not listed in the catalogue are still available under their base
// name.
//
// Usage:
//
//	manager, err := puzzle.NewManager("puzzles")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	p, err := manager.LoadPuzzle("large")
package puzzle

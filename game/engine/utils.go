package engine

// Score sums 100*row + col over every box. Double-width boxes count once,
// at their left half.
func Score(grid Grid) int {
	sum := 0
	for row, cells := range grid {
		for col, cell := range cells {
			if cell == Box || cell == BoxLeft {
				sum += 100*row + col
			}
		}
	}
	return sum
}

// CountCellType counts the total number of cells of a specific type in the grid
func CountCellType(grid Grid, cellType CellType) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell == cellType {
				count++
			}
		}
	}
	return count
}

// CountBoxes counts boxes of either width
func CountBoxes(grid Grid) int {
	return CountCellType(grid, Box) + CountCellType(grid, BoxLeft)
}

// CheckBoxPairs verifies every BoxLeft is immediately followed by a BoxRight
// on the same row and every BoxRight is immediately preceded by a BoxLeft.
func CheckBoxPairs(grid Grid) error {
	for row, cells := range grid {
		for col, cell := range cells {
			pos := Position{Row: row, Col: col}
			switch cell {
			case BoxLeft:
				if col+1 >= len(cells) || cells[col+1] != BoxRight {
					return invariantf("box left half at %v has no right half", pos)
				}
			case BoxRight:
				if col == 0 || cells[col-1] != BoxLeft {
					return invariantf("box right half at %v has no left half", pos)
				}
			}
		}
	}
	return nil
}

// CountMoves tallies a move list per direction
func CountMoves(moves []Direction) map[Direction]int {
	counts := make(map[Direction]int, len(Directions))
	for _, dir := range moves {
		counts[dir]++
	}
	return counts
}

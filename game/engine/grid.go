package engine

import "fmt"

// Grid is a rectangular warehouse indexed [row][col]
type Grid [][]CellType

// Rows returns the grid height
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the grid width
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether pos lies inside the grid
func (g Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Rows() && pos.Col >= 0 && pos.Col < g.Cols()
}

// CellAt returns the cell type at pos. In valid inputs walls line the border,
// so callers only hit ErrOutOfBounds on malformed grids.
func (g Grid) CellAt(pos Position) (CellType, error) {
	if !g.InBounds(pos) {
		return "", fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, pos, g.Rows(), g.Cols())
	}
	return g[pos.Row][pos.Col], nil
}

func (g Grid) set(pos Position, cell CellType) {
	g[pos.Row][pos.Col] = cell
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]CellType(nil), row...)
	}
	return out
}

// Render returns the grid as layout rows with the robot drawn at robot
func (g Grid) Render(robot Position) []string {
	rows := make([]string, len(g))
	for r, row := range g {
		line := make([]byte, len(row))
		for c, cell := range row {
			line[c] = cell.Glyph()
		}
		if robot.Row == r && robot.Col >= 0 && robot.Col < len(line) {
			line[robot.Col] = GlyphRobot
		}
		rows[r] = string(line)
	}
	return rows
}

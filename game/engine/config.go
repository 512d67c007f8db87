package engine

import (
	"fmt"
	"strings"
)

// ValidateLayout checks a layout for the given variant: it must be a non-empty
// rectangle of known glyphs with exactly one robot. Single-width layouts may
// only hold O boxes; double-width layouts only complete [] pairs.
func ValidateLayout(layout []string, variant Variant) error {
	if variant != SingleWidth && variant != DoubleWidth {
		return fmt.Errorf("layout validation: unknown variant %q", variant)
	}
	if len(layout) == 0 {
		return malformedf("layout validation: layout is empty")
	}

	width := len(layout[0])
	if width == 0 {
		return malformedf("layout validation: row 1 is empty")
	}

	robots := 0
	for i, row := range layout {
		if len(row) != width {
			return malformedf("layout validation: row %d must have %d columns, got %d", i+1, width, len(row))
		}

		for j := 0; j < len(row); j++ {
			ch := row[j]
			switch ch {
			case GlyphRobot:
				robots++
			case GlyphEmpty, GlyphWall:
			case GlyphBox:
				if variant == DoubleWidth {
					return malformedf("layout validation: single-width box at row %d, col %d in a double-width layout", i+1, j+1)
				}
			case GlyphBoxLeft:
				if variant == SingleWidth {
					return malformedf("layout validation: double-width box at row %d, col %d in a single-width layout", i+1, j+1)
				}
				if j+1 >= len(row) || row[j+1] != GlyphBoxRight {
					return malformedf("layout validation: '[' at row %d, col %d is not followed by ']'", i+1, j+1)
				}
			case GlyphBoxRight:
				if variant == SingleWidth {
					return malformedf("layout validation: double-width box at row %d, col %d in a single-width layout", i+1, j+1)
				}
				if j == 0 || row[j-1] != GlyphBoxLeft {
					return malformedf("layout validation: ']' at row %d, col %d is not preceded by '['", i+1, j+1)
				}
			default:
				return malformedf("layout validation: invalid character '%c' at row %d, col %d", ch, i+1, j+1)
			}
		}
	}

	if robots != 1 {
		return malformedf("layout validation: layout must contain exactly one robot (@), got %d", robots)
	}
	return nil
}

// IsWideLayout reports whether the layout already uses [] boxes
func IsWideLayout(layout []string) bool {
	for _, row := range layout {
		if strings.ContainsAny(row, "[]") {
			return true
		}
	}
	return false
}

// WidenLayout doubles every column: # becomes ##, . becomes .., O becomes []
// and @ becomes @. so the robot lands on twice its original column.
func WidenLayout(layout []string) []string {
	wide := make([]string, len(layout))
	for i, row := range layout {
		var b strings.Builder
		b.Grow(len(row) * 2)
		for j := 0; j < len(row); j++ {
			switch row[j] {
			case GlyphBox:
				b.WriteString("[]")
			case GlyphRobot:
				b.WriteString("@.")
			default:
				b.WriteByte(row[j])
				b.WriteByte(row[j])
			}
		}
		wide[i] = b.String()
	}
	return wide
}

// InitGameState builds the initial state for a puzzle under the given variant.
// Narrow layouts are widened for DoubleWidth; a layout that is already wide is
// used as is for DoubleWidth and rejected for SingleWidth.
func InitGameState(puzzle *Puzzle, variant Variant) (*GameState, error) {
	if puzzle == nil {
		return nil, fmt.Errorf("puzzle cannot be nil")
	}

	layout := puzzle.Layout
	wide := IsWideLayout(layout)

	switch variant {
	case SingleWidth:
		if wide {
			return nil, malformedf("puzzle %q is already double-width and cannot run single-width", puzzle.Name)
		}
	case DoubleWidth:
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}

	sourceVariant := SingleWidth
	if wide {
		sourceVariant = DoubleWidth
	}
	if err := ValidateLayout(layout, sourceVariant); err != nil {
		return nil, err
	}
	if variant == DoubleWidth && !wide {
		layout = WidenLayout(layout)
	}

	grid := make(Grid, len(layout))
	var robot Position
	for r, row := range layout {
		grid[r] = make([]CellType, len(row))
		for c := 0; c < len(row); c++ {
			if row[c] == GlyphRobot {
				robot = Position{Row: r, Col: c}
				grid[r][c] = Empty
				continue
			}
			cell, _ := cellFromGlyph(row[c])
			grid[r][c] = cell
		}
	}

	return &GameState{
		Grid:    grid,
		Robot:   robot,
		Variant: variant,
	}, nil
}

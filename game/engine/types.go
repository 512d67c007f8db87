package engine

import (
	"fmt"
	"strings"
)

// CellType represents different types of warehouse cells
type CellType string

const (
	Empty    CellType = "empty"
	Wall     CellType = "wall"
	Box      CellType = "box"
	BoxLeft  CellType = "box_left"
	BoxRight CellType = "box_right"
)

// Layout glyphs
const (
	GlyphEmpty    = '.'
	GlyphWall     = '#'
	GlyphBox      = 'O'
	GlyphBoxLeft  = '['
	GlyphBoxRight = ']'
	GlyphRobot    = '@'
)

// Glyph returns the layout character for the cell type, or '?' if unknown
func (c CellType) Glyph() byte {
	switch c {
	case Empty:
		return GlyphEmpty
	case Wall:
		return GlyphWall
	case Box:
		return GlyphBox
	case BoxLeft:
		return GlyphBoxLeft
	case BoxRight:
		return GlyphBoxRight
	}
	return '?'
}

// cellFromGlyph maps a layout character to a cell type. The robot glyph is
// not a cell type and is handled by the layout builder.
func cellFromGlyph(ch byte) (CellType, bool) {
	switch ch {
	case GlyphEmpty:
		return Empty, true
	case GlyphWall:
		return Wall, true
	case GlyphBox:
		return Box, true
	case GlyphBoxLeft:
		return BoxLeft, true
	case GlyphBoxRight:
		return BoxRight, true
	}
	return "", false
}

// Position represents row,col coordinates. Row grows downward, Col grows rightward.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Step returns the position one cell away in the given direction.
// No bounds checking is done here.
func (p Position) Step(dir Direction) Position {
	dr, dc := dir.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four cardinal moves
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists the cardinal directions in glyph order ^ v < >
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the unit row and column offsets for the direction
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// IsVertical reports whether the direction is Up or Down
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// IsHorizontal reports whether the direction is Left or Right
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// Glyph returns the move character used in puzzle files
func (d Direction) Glyph() byte {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	case Right:
		return '>'
	}
	return '?'
}

// ParseDirection accepts either a move glyph ("^") or a direction name ("up")
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "^", "up":
		return Up, nil
	case "v", "down":
		return Down, nil
	case "<", "left":
		return Left, nil
	case ">", "right":
		return Right, nil
	}
	return "", fmt.Errorf("%w: unknown direction %q", ErrMalformedInput, s)
}

// ParseMoves converts a string of move glyphs into directions. Whitespace,
// including newlines, is ignored.
func ParseMoves(s string) ([]Direction, error) {
	moves := make([]Direction, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
			continue
		}
		dir, err := ParseDirection(string(s[i]))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, dir)
	}
	return moves, nil
}

// Variant selects the box width of a simulation
type Variant string

const (
	SingleWidth Variant = "single"
	DoubleWidth Variant = "double"
)

// Variants lists every supported variant in the order they are solved
var Variants = []Variant{SingleWidth, DoubleWidth}

// ParseVariant accepts "single"/"double" and the puzzle-part aliases "1"/"2"
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "1", "part1":
		return SingleWidth, nil
	case "double", "wide", "2", "part2":
		return DoubleWidth, nil
	}
	return "", fmt.Errorf("unknown variant %q (want single or double)", s)
}

// Puzzle represents a parsed puzzle input
type Puzzle struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Layout      []string        `json:"layout"`
	Moves       []Direction     `json:"moves"`
	Expected    map[Variant]int `json:"expected,omitempty"`
}

// GameState represents the complete simulation state
type GameState struct {
	Grid    Grid     `json:"grid"`
	Robot   Position `json:"robot"`
	Variant Variant  `json:"variant"`

	TotalMoves   int `json:"total_moves"`
	BlockedMoves int `json:"blocked_moves"`
	BoxesPushed  int `json:"boxes_pushed"`
}

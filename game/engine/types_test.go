package engine

import (
	"errors"
	"testing"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir        Direction
		dr, dc     int
		vertical   bool
		horizontal bool
	}{
		{Up, -1, 0, true, false},
		{Down, 1, 0, true, false},
		{Left, 0, -1, false, true},
		{Right, 0, 1, false, true},
	}

	for _, test := range tests {
		t.Run(string(test.dir), func(t *testing.T) {
			dr, dc := test.dir.Delta()
			if dr != test.dr || dc != test.dc {
				t.Errorf("Delta: expected (%d,%d), got (%d,%d)", test.dr, test.dc, dr, dc)
			}
			if test.dir.IsVertical() != test.vertical {
				t.Errorf("IsVertical: expected %v", test.vertical)
			}
			if test.dir.IsHorizontal() != test.horizontal {
				t.Errorf("IsHorizontal: expected %v", test.horizontal)
			}
		})
	}
}

func TestPositionStep(t *testing.T) {
	pos := Position{Row: 3, Col: 5}
	if got := pos.Step(Up); got != (Position{Row: 2, Col: 5}) {
		t.Errorf("Step(Up): got %v", got)
	}
	if got := pos.Step(Left).Step(Left); got != (Position{Row: 3, Col: 3}) {
		t.Errorf("Step(Left) twice: got %v", got)
	}
	// No bounds checking at this level
	if got := (Position{}).Step(Up); got != (Position{Row: -1, Col: 0}) {
		t.Errorf("Step off the grid: got %v", got)
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"^":     Up,
		"v":     Down,
		"<":     Left,
		">":     Right,
		"up":    Up,
		"DOWN":  Down,
		" left": Left,
	}
	for input, want := range tests {
		got, err := ParseDirection(input)
		if err != nil {
			t.Errorf("ParseDirection(%q): unexpected error %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDirection(%q): expected %s, got %s", input, want, got)
		}
		if dir, _ := ParseDirection(string(got.Glyph())); dir != got {
			t.Errorf("Glyph of %s does not parse back", got)
		}
	}

	if _, err := ParseDirection("x"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput for unknown direction, got %v", err)
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("<^\n>v\r\n ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []Direction{Left, Up, Right, Down}
	if len(moves) != len(want) {
		t.Fatalf("Expected %d moves, got %d", len(want), len(moves))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("Move %d: expected %s, got %s", i, want[i], moves[i])
		}
	}

	if _, err := ParseMoves("<<x"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput, got %v", err)
	}
}

func TestParseVariant(t *testing.T) {
	for _, input := range []string{"single", "1", "Part1"} {
		if v, err := ParseVariant(input); err != nil || v != SingleWidth {
			t.Errorf("ParseVariant(%q): got %s, %v", input, v, err)
		}
	}
	for _, input := range []string{"double", "wide", "2"} {
		if v, err := ParseVariant(input); err != nil || v != DoubleWidth {
			t.Errorf("ParseVariant(%q): got %s, %v", input, v, err)
		}
	}
	if _, err := ParseVariant("triple"); err == nil {
		t.Error("Expected error for unknown variant")
	}
}

func TestCellTypeGlyph(t *testing.T) {
	for _, ch := range []byte{GlyphEmpty, GlyphWall, GlyphBox, GlyphBoxLeft, GlyphBoxRight} {
		cell, ok := cellFromGlyph(ch)
		if !ok {
			t.Fatalf("Glyph %q not recognised", ch)
		}
		if cell.Glyph() != ch {
			t.Errorf("Glyph round trip for %q gave %q", ch, cell.Glyph())
		}
	}
	if _, ok := cellFromGlyph(GlyphRobot); ok {
		t.Error("Robot must not map to a cell type")
	}
	if CellType("lava").Glyph() != '?' {
		t.Error("Expected '?' for unknown cell type")
	}
}

func TestGridCellAt(t *testing.T) {
	state := createTestState(t, SingleWidth,
		"###",
		"#@#",
		"###",
	)

	if cell, err := state.Grid.CellAt(Position{Row: 1, Col: 1}); err != nil || cell != Empty {
		t.Errorf("Expected empty robot cell, got %s, %v", cell, err)
	}

	for _, pos := range []Position{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 0}} {
		if _, err := state.Grid.CellAt(pos); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("CellAt(%v): expected ErrOutOfBounds, got %v", pos, err)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		layout  []string
		want    int
	}{
		{
			name:    "single boxes",
			variant: SingleWidth,
			layout:  []string{"#######", "#...O..", "#.....@"},
			want:    104,
		},
		{
			name:    "wide box counts left half once",
			variant: DoubleWidth,
			layout:  []string{"##########", "##@.[]..##", "##########"},
			want:    104,
		},
		{
			name:    "no boxes",
			variant: SingleWidth,
			layout:  []string{"###", "#@#", "###"},
			want:    0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			state := createTestState(t, test.variant, test.layout...)
			if got := Score(state.Grid); got != test.want {
				t.Errorf("Expected score %d, got %d", test.want, got)
			}
		})
	}
}

func TestCheckBoxPairs(t *testing.T) {
	grid := Grid{
		{Wall, BoxLeft, BoxRight, Wall},
	}
	if err := CheckBoxPairs(grid); err != nil {
		t.Errorf("Expected valid pairs, got %v", err)
	}

	grid[0][2] = Empty
	if err := CheckBoxPairs(grid); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Expected ErrInvariantViolation for lone left half, got %v", err)
	}

	grid = Grid{{BoxRight, Empty}}
	if err := CheckBoxPairs(grid); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Expected ErrInvariantViolation for lone right half, got %v", err)
	}
}

func TestCountHelpers(t *testing.T) {
	state := createTestState(t, SingleWidth,
		"######",
		"#@OO.#",
		"#O...#",
		"######",
	)
	if got := CountBoxes(state.Grid); got != 3 {
		t.Errorf("Expected 3 boxes, got %d", got)
	}
	if got := CountCellType(state.Grid, Wall); got != 16 {
		t.Errorf("Expected 16 walls, got %d", got)
	}

	counts := CountMoves([]Direction{Up, Up, Left, Right, Up})
	if counts[Up] != 3 || counts[Left] != 1 || counts[Right] != 1 || counts[Down] != 0 {
		t.Errorf("Unexpected move counts: %v", counts)
	}
}

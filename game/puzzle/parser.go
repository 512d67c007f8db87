package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/wricardo/warehouse/game/engine"
)

// puzzleFile is the grammar of a puzzle input: grid rows, then move glyphs.
// Each row is a single token since newlines end a Row match.
type puzzleFile struct {
	Rows  []string `parser:"@Row+"`
	Moves []string `parser:"@Moves*"`
}

var puzzleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Row", Pattern: `[#.O@\[\]]+`},
	{Name: "Moves", Pattern: `[\^v<>]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[puzzleFile](
	participle.Lexer(puzzleLexer),
	participle.Elide("Whitespace"),
)

// Parse reads a puzzle from its text form. The layout is validated in the
// variant it is written in, so both plain and pre-widened grids are accepted.
func Parse(name, data string) (*engine.Puzzle, error) {
	file, err := parser.ParseString(name, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrMalformedInput, err)
	}

	variant := engine.SingleWidth
	if engine.IsWideLayout(file.Rows) {
		variant = engine.DoubleWidth
	}
	if err := engine.ValidateLayout(file.Rows, variant); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	moves, err := engine.ParseMoves(strings.Join(file.Moves, ""))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &engine.Puzzle{
		Name:   name,
		Layout: file.Rows,
		Moves:  moves,
	}, nil
}

// LoadFile parses the puzzle stored at path. The puzzle is named after the
// file without its extension.
func LoadFile(path string) (*engine.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, string(data))
}

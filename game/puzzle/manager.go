package puzzle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/wricardo/warehouse/game/engine"
	"github.com/wricardo/warehouse/game/service"
)

var (
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrInvalidPuzzle  = errors.New("invalid puzzle")
)

// CatalogFile is the optional index read from the puzzle directory
const CatalogFile = "catalog.yaml"

// PuzzleExt is the extension of puzzle input files
const PuzzleExt = ".txt"

// Catalog mirrors catalog.yaml
type Catalog struct {
	Puzzles []CatalogEntry `yaml:"puzzles"`
}

// CatalogEntry describes one puzzle file and its known answers
type CatalogEntry struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	File        string         `yaml:"file"`
	Expected    map[string]int `yaml:"expected,omitempty"`
}

// Manager handles puzzle loading and caching
type Manager struct {
	puzzleDir string
	catalog   map[string]CatalogEntry
	puzzles   map[string]*engine.Puzzle
	mu        sync.RWMutex
}

// NewManager creates a new puzzle manager over a directory
func NewManager(puzzleDir string) (*Manager, error) {
	if _, err := os.Stat(puzzleDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("puzzle directory does not exist: %s", puzzleDir)
	}

	m := &Manager{
		puzzleDir: puzzleDir,
		puzzles:   make(map[string]*engine.Puzzle),
	}

	catalog, err := loadCatalog(puzzleDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	m.catalog = catalog

	return m, nil
}

// loadCatalog reads catalog.yaml if present. A missing catalogue is not an
// error; every .txt file is still listed.
func loadCatalog(dir string) (map[string]CatalogEntry, error) {
	entries := make(map[string]CatalogEntry)

	data, err := os.ReadFile(filepath.Join(dir, CatalogFile))
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, err
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPuzzle, CatalogFile, err)
	}

	for i, entry := range catalog.Puzzles {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: %s entry %d has no name", ErrInvalidPuzzle, CatalogFile, i+1)
		}
		if entry.File == "" {
			entry.File = entry.Name + PuzzleExt
		}
		for key := range entry.Expected {
			if _, err := engine.ParseVariant(key); err != nil {
				return nil, fmt.Errorf("%w: %s entry %q: %v", ErrInvalidPuzzle, CatalogFile, entry.Name, err)
			}
		}
		entries[entry.Name] = entry
	}

	return entries, nil
}

// LoadPuzzle loads a puzzle by catalogue name, by file name in the puzzle
// directory, or by a path to an existing file.
func (m *Manager) LoadPuzzle(name string) (*engine.Puzzle, error) {
	m.mu.RLock()
	// Check cache first
	if puzzle, exists := m.puzzles[name]; exists {
		m.mu.RUnlock()
		return puzzle, nil
	}
	m.mu.RUnlock()

	puzzle, err := m.readPuzzle(name)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another caller may have loaded it in the meantime
	if cached, exists := m.puzzles[name]; exists {
		return cached, nil
	}
	m.puzzles[name] = puzzle
	return puzzle, nil
}

// readPuzzle resolves a name to a file and parses it without touching the
// cache
func (m *Manager) readPuzzle(name string) (*engine.Puzzle, error) {
	m.mu.RLock()
	entry, inCatalog := m.catalog[name]
	m.mu.RUnlock()

	var path string
	switch {
	case inCatalog:
		path = filepath.Join(m.puzzleDir, entry.File)
	case fileExists(name):
		path = name
	default:
		filename := name
		if !strings.HasSuffix(filename, PuzzleExt) {
			filename = name + PuzzleExt
		}
		path = filepath.Join(m.puzzleDir, filename)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPuzzleNotFound, name)
		}
		return nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	puzzleName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if inCatalog {
		puzzleName = entry.Name
	}

	puzzle, err := Parse(puzzleName, string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPuzzle, err)
	}

	if inCatalog {
		puzzle.Description = entry.Description
		puzzle.Expected = expectedAnswers(entry.Expected)
	}

	log.WithFields(log.Fields{
		"puzzle": puzzle.Name,
		"path":   path,
		"rows":   len(puzzle.Layout),
		"moves":  len(puzzle.Moves),
	}).Debug("puzzle loaded")

	return puzzle, nil
}

// ListPuzzles returns information about all catalogue entries and any
// uncatalogued puzzle files, sorted by id
func (m *Manager) ListPuzzles() ([]*service.PuzzleInfo, error) {
	entries, err := os.ReadDir(m.puzzleDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle directory: %w", err)
	}

	m.mu.RLock()
	catalog := m.catalog
	m.mu.RUnlock()

	ids := make([]string, 0, len(entries)+len(catalog))
	catalogued := make(map[string]bool)
	for name, entry := range catalog {
		ids = append(ids, name)
		catalogued[entry.File] = true
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), PuzzleExt) || catalogued[entry.Name()] {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), PuzzleExt))
	}
	sort.Strings(ids)

	var puzzles []*service.PuzzleInfo
	for _, id := range ids {
		puzzle, err := m.LoadPuzzle(id)
		if err != nil {
			// Skip invalid puzzles
			log.WithError(err).WithField("puzzle", id).Debug("skipping puzzle")
			continue
		}

		filename := id + PuzzleExt
		if entry, ok := catalog[id]; ok {
			filename = entry.File
		}

		info := &service.PuzzleInfo{
			Filename:    filename,
			PuzzleID:    id,
			Name:        puzzle.Name,
			Description: puzzle.Description,
			Rows:        len(puzzle.Layout),
			Moves:       len(puzzle.Moves),
			Expected:    puzzle.Expected,
		}
		if info.Rows > 0 {
			info.Cols = len(puzzle.Layout[0])
		}
		for _, row := range puzzle.Layout {
			info.Boxes += strings.Count(row, string(engine.GlyphBox)) + strings.Count(row, string(engine.GlyphBoxLeft))
		}
		puzzles = append(puzzles, info)
	}

	return puzzles, nil
}

// RefreshCache drops parsed puzzles and rereads the catalogue from disk
func (m *Manager) RefreshCache() error {
	catalog, err := loadCatalog(m.puzzleDir)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalog = catalog
	m.puzzles = make(map[string]*engine.Puzzle)
	return nil
}

// expectedAnswers converts catalogue keys to variants. Keys were checked when
// the catalogue was loaded.
func expectedAnswers(raw map[string]int) map[engine.Variant]int {
	if len(raw) == 0 {
		return nil
	}
	expected := make(map[engine.Variant]int, len(raw))
	for key, value := range raw {
		if variant, err := engine.ParseVariant(key); err == nil {
			expected[variant] = value
		}
	}
	return expected
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

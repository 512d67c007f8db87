package engine

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// PushPlan is the outcome of resolving one move without touching the grid.
// A blocked plan carries no boxes and must not be applied.
type PushPlan struct {
	Blocked bool
	// Target is the cell the robot moves into
	Target Position
	// Boxes holds the canonical (left or only) cell of every box that has to
	// shift, each listed once, in the order their pushes were confirmed.
	Boxes []Position
}

// resolver walks a push chain for a single move
type resolver struct {
	grid  Grid
	dir   Direction
	seen  mapset.Set[Position]
	boxes []Position
}

// ResolvePush determines whether the robot at robot can step in dir and, if
// boxes are in the way, exactly which ones shift. The grid is only read.
func ResolvePush(grid Grid, robot Position, dir Direction) (PushPlan, error) {
	if dr, dc := dir.Delta(); dr == 0 && dc == 0 {
		return PushPlan{}, fmt.Errorf("%w: unknown direction %q", ErrMalformedInput, dir)
	}

	target := robot.Step(dir)
	r := &resolver{
		grid: grid,
		dir:  dir,
		seen: mapset.New[Position](),
	}

	ok, err := r.canEnter(target)
	if err != nil {
		return PushPlan{}, err
	}
	if !ok {
		return PushPlan{Blocked: true}, nil
	}
	return PushPlan{Target: target, Boxes: r.boxes}, nil
}

// canEnter reports whether whatever occupies pos can make room for a mover
// arriving from the opposite side of r.dir.
func (r *resolver) canEnter(pos Position) (bool, error) {
	cell, err := r.grid.CellAt(pos)
	if err != nil {
		return false, err
	}

	switch cell {
	case Empty:
		return true, nil
	case Wall:
		return false, nil
	case Box:
		return r.pushSingle(pos)
	case BoxLeft:
		return r.pushWide(pos)
	case BoxRight:
		return r.pushWide(pos.Step(Left))
	default:
		return false, fmt.Errorf("%w: %q at %v", ErrUnknownCell, cell, pos)
	}
}

func (r *resolver) pushSingle(pos Position) (bool, error) {
	ok, err := r.canEnter(pos.Step(r.dir))
	if err != nil || !ok {
		return false, err
	}
	r.record(pos)
	return true, nil
}

// pushWide resolves the double-width box whose left half is at left
func (r *resolver) pushWide(left Position) (bool, error) {
	// Reached earlier through the other half or a neighbouring box. The push
	// only ever moves away from the robot, so an earlier visit is complete.
	if r.seen.Has(left) {
		return true, nil
	}

	right := left.Step(Right)
	if err := r.checkPair(left, right); err != nil {
		return false, err
	}

	var ahead []Position
	switch r.dir {
	case Left:
		ahead = []Position{left.Step(Left)}
	case Right:
		ahead = []Position{right.Step(Right)}
	default:
		ahead = []Position{left.Step(r.dir), right.Step(r.dir)}
	}

	for _, pos := range ahead {
		ok, err := r.canEnter(pos)
		if err != nil || !ok {
			return false, err
		}
	}

	r.record(left)
	return true, nil
}

func (r *resolver) checkPair(left, right Position) error {
	l, err := r.grid.CellAt(left)
	if err != nil {
		return err
	}
	rc, err := r.grid.CellAt(right)
	if err != nil {
		return err
	}
	if l != BoxLeft || rc != BoxRight {
		return fmt.Errorf("%w: broken box at %v (%s, %s)", ErrInvariantViolation, left, l, rc)
	}
	return nil
}

func (r *resolver) record(pos Position) {
	if r.seen.Has(pos) {
		return
	}
	r.seen.Put(pos)
	r.boxes = append(r.boxes, pos)
}

package engine

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// MoveRobot attempts to move the robot one cell in dir, pushing any boxes in
// the way. It returns false for a blocked move, in which case neither the
// grid nor the robot changed.
func (gs *GameState) MoveRobot(dir Direction) (bool, error) {
	plan, err := ResolvePush(gs.Grid, gs.Robot, dir)
	if err != nil {
		return false, err
	}

	gs.TotalMoves++
	if plan.Blocked {
		gs.BlockedMoves++
		return false, nil
	}

	if err := ApplyPush(gs.Grid, plan, dir); err != nil {
		return false, err
	}

	// The robot always advances exactly one cell, however long the chain was
	gs.Robot = plan.Target
	gs.BoxesPushed += len(plan.Boxes)
	return true, nil
}

// CanMove reports whether a move in dir would succeed from the current state
func (gs *GameState) CanMove(dir Direction) bool {
	plan, err := ResolvePush(gs.Grid, gs.Robot, dir)
	return err == nil && !plan.Blocked
}

// ApplyPush commits a feasible plan, shifting every listed box one cell in
// dir. All writes are staged and checked first, so an invalid plan leaves the
// grid untouched. A blocked plan is a no-op.
func ApplyPush(grid Grid, plan PushPlan, dir Direction) error {
	if plan.Blocked || len(plan.Boxes) == 0 {
		return nil
	}

	order := commitOrder(plan.Boxes, dir)
	if err := checkOverlap(grid, order); err != nil {
		return err
	}

	staged := make(map[Position]CellType)
	at := func(pos Position) CellType {
		if cell, ok := staged[pos]; ok {
			return cell
		}
		return grid[pos.Row][pos.Col]
	}

	for _, pos := range order {
		cells := boxCells(grid, pos)
		kinds := make([]CellType, len(cells))
		for i, cell := range cells {
			kinds[i] = at(cell)
			staged[cell] = Empty
		}
		for i, cell := range cells {
			next := cell.Step(dir)
			if !grid.InBounds(next) {
				return fmt.Errorf("%w: box at %v pushed to %v", ErrOutOfBounds, pos, next)
			}
			if occupant := at(next); occupant != Empty {
				return fmt.Errorf("%w: box at %v moves onto %s at %v before it is cleared",
					ErrInvariantViolation, pos, occupant, next)
			}
			staged[next] = kinds[i]
		}
	}

	for pos, cell := range staged {
		grid.set(pos, cell)
	}
	return nil
}

// commitOrder sorts boxes farthest-first along dir. For vertical moves this
// is a sort by row: smallest row first going Up, largest row first going
// Down. Boxes sharing a row never compete for a cell; checkOverlap and the
// staging in ApplyPush reject any plan where they would.
func commitOrder(boxes []Position, dir Direction) []Position {
	dr, dc := dir.Delta()
	order := append([]Position(nil), boxes...)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Row*dr+order[i].Col*dc > order[j].Row*dr+order[j].Col*dc
	})
	return order
}

// checkOverlap verifies every scheduled box is a real box and that no two
// scheduled boxes share a cell.
func checkOverlap(grid Grid, boxes []Position) error {
	occupied := mapset.New[Position]()
	for _, pos := range boxes {
		cell, err := grid.CellAt(pos)
		if err != nil {
			return err
		}
		if cell != Box && cell != BoxLeft {
			return fmt.Errorf("%w: scheduled box at %v is %s", ErrInvariantViolation, pos, cell)
		}
		for _, c := range boxCells(grid, pos) {
			if occupied.Has(c) {
				return fmt.Errorf("%w: box at %v overlaps another scheduled box at %v",
					ErrInvariantViolation, pos, c)
			}
			occupied.Put(c)
		}
	}
	return nil
}

// boxCells returns the cells covered by the box whose canonical cell is pos
func boxCells(grid Grid, pos Position) []Position {
	if grid[pos.Row][pos.Col] == BoxLeft {
		return []Position{pos, pos.Step(Right)}
	}
	return []Position{pos}
}

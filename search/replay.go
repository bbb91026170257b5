package search

import (
	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/ttable"
)

// GoalRoomPlan is the replay sequence the facade hands the driver once
// it proves a set of goals sits behind a single corral-forcer square:
// Paths[i] is the square-by-square walk, starting at Forcer and ending
// on a goal, that the i-th box to enter the room must take so earlier
// placements never block a later one.
type GoalRoomPlan struct {
	Forcer int
	Paths  [][]int
}

// replayForcedPush reports the single push that continues record's
// active goal-room replay, if one is active and not yet exhausted.
// Direction is derived from the path itself rather than searched for,
// since the room's single entrance and lack of internal branching mean
// it is the only legal continuation.
func replayForcedPush(pos *board.Position, record *ttable.Record, plan *GoalRoomPlan) (boxIndex int, dir board.Direction, ok bool) {
	if plan == nil || record.ReplayBoxSquare == board.NoSquare {
		return 0, 0, false
	}
	idx := pos.BoxIndexAt(record.ReplayBoxSquare)
	if idx < 0 || record.ReplayPathIndex < 0 || record.ReplayPathIndex >= len(plan.Paths) {
		return 0, 0, false
	}
	path := plan.Paths[record.ReplayPathIndex]
	if record.ReplayStep+1 >= len(path) {
		return 0, 0, false
	}
	next := path[record.ReplayStep+1]
	for _, d := range board.Directions {
		if pos.Board.Neighbour(record.ReplayBoxSquare, d) == next {
			return idx, d, true
		}
	}

	return 0, 0, false
}

// advanceReplay derives the child's replay state from its parent given
// the box and destination the child's push just produced. A push that
// lands a box on plan.Forcer starts a fresh replay for the next unused
// path; a push that continues an active replay advances its step and
// clears the replay once the assigned path's last square is reached.
func advanceReplay(parent *ttable.Record, plan *GoalRoomPlan, boxSquareBeforePush, dest int) (boxSquare, pathIndex, step, plansUsed int) {
	boxSquare, pathIndex, step, plansUsed = parent.ReplayBoxSquare, parent.ReplayPathIndex, parent.ReplayStep, parent.ReplayPlansUsed
	if plan == nil {
		return boxSquare, pathIndex, step, plansUsed
	}

	switch {
	case parent.ReplayBoxSquare == boxSquareBeforePush && parent.ReplayBoxSquare != board.NoSquare:
		// Continuing an already-active replay for this box.
		path := plan.Paths[parent.ReplayPathIndex]
		newStep := parent.ReplayStep + 1
		if newStep >= len(path)-1 {
			// Reached the goal at the end of this path.
			return board.NoSquare, -1, 0, parent.ReplayPlansUsed + 1
		}

		return dest, parent.ReplayPathIndex, newStep, parent.ReplayPlansUsed
	case parent.ReplayBoxSquare == board.NoSquare && dest == plan.Forcer && parent.ReplayPlansUsed < len(plan.Paths):
		// This push lands a fresh box on the room's only entrance.
		return dest, parent.ReplayPlansUsed, 0, parent.ReplayPlansUsed
	default:
		return boxSquare, pathIndex, step, plansUsed
	}
}

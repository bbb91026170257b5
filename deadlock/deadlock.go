package deadlock

import (
	"time"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/distance"
)

// Detect is the single public contract every detector answers to:
// is_deadlock(position, pushed_box_square, budget) -> bool. tbl
// supplies the per-goal push distances the bipartite check needs;
// corralBudget bounds the corral detector's wall-clock spend and is
// ignored by the other four.
//
// Frozen flags are cleared at entry (monotonic within one call,
// cleared before the next) and may be set by freeze as a side
// effect useful to the caller (a frozen box on a goal is fine; two
// adjacent frozen boxes are a deadlock unless both sit on goals).
func Detect(p *board.Position, pushedBoxSquare int, tbl *distance.Tables, corralBudget time.Duration) bool {
	p.ClearFrozen()

	if simpleDeadlock(p, pushedBoxSquare) {
		return true
	}
	if freezeDeadlock(p) {
		return true
	}
	if bipartiteDeadlock(p, tbl) {
		return true
	}
	if corralDeadlock(p, corralBudget) {
		return true
	}
	if closedDiagonalDeadlock(p, pushedBoxSquare) {
		return true
	}
	return false
}

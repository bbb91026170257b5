package deadlock

import (
	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/distance"
	"github.com/katalvlaran/sokosolve/lowerbound"
)

// bipartiteDeadlock reports whether no assignment of the active boxes
// to goals exists at all — the lower-bound engine's own deadlock
// oracle, reused here as one of the five detectors.
func bipartiteDeadlock(p *board.Position, tbl *distance.Tables) bool {
	active := make([]int, 0, len(p.BoxSquares))
	for i, s := range p.BoxSquares {
		if p.Active[i] {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return false
	}
	return lowerbound.Solve(tbl, active).Deadlock
}

package deadlock

import "github.com/katalvlaran/sokosolve/board"

// simpleDeadlock reports whether the box just pushed landed on a square
// distance.Build proved no box can ever reach a goal from, ignoring
// every other box on the board. A box already on a goal is never a
// deadlock regardless — a frozen box on a goal is not a deadlock by
// itself.
func simpleDeadlock(p *board.Position, pushedBoxSquare int) bool {
	if pushedBoxSquare == board.NoSquare {
		return false
	}
	if p.Board.IsGoal(pushedBoxSquare) {
		return false
	}
	return p.Board.IsSimpleDeadlock[pushedBoxSquare]
}

package deadlock

import "github.com/katalvlaran/sokosolve/board"

// freezeDeadlock marks every box that can never move again (axis-locked
// on both the horizontal and vertical axis) as Frozen, then reports a
// deadlock if any frozen box sits off its goal — a frozen box on a
// goal is fine by itself, and a pair of mutually-frozen boxes is only
// a deadlock when at least one of them is not on a goal, which this
// single off-goal check already captures regardless of how many other
// boxes share the freeze.
func freezeDeadlock(p *board.Position) bool {
	analyzing := make(map[int]bool, len(p.BoxSquares))
	for i := range p.BoxSquares {
		if !p.Active[i] {
			continue
		}
		if isBoxFrozen(p, i, analyzing) {
			p.Frozen[i] = true
		}
	}

	for i, s := range p.BoxSquares {
		if p.Active[i] && p.Frozen[i] && !p.Board.IsGoal(s) {
			return true
		}
	}
	return false
}

// isBoxFrozen reports whether the box at boxIndex is locked on both
// axes: it can never be pushed left or right, and never up or down.
// analyzing tracks boxes on the current recursion stack so a cycle of
// mutually-supporting boxes (each blocked only by the other) resolves
// to frozen rather than looping forever.
func isBoxFrozen(p *board.Position, boxIndex int, analyzing map[int]bool) bool {
	if analyzing[boxIndex] {
		return true
	}
	analyzing[boxIndex] = true
	defer delete(analyzing, boxIndex)

	s := p.BoxSquares[boxIndex]
	horizontalLocked := sideBlocked(p, s, board.Left, analyzing) && sideBlocked(p, s, board.Right, analyzing)
	verticalLocked := sideBlocked(p, s, board.Up, analyzing) && sideBlocked(p, s, board.Down, analyzing)
	return horizontalLocked && verticalLocked
}

// sideBlocked reports whether a box at s can never be pushed toward
// direction d: the far side is a wall, or it holds another box that is
// itself permanently frozen.
func sideBlocked(p *board.Position, s int, d board.Direction, analyzing map[int]bool) bool {
	n := p.Board.Neighbour(s, d)
	if n == board.NoSquare || p.Board.IsWall(n) {
		return true
	}
	if idx := p.BoxIndexAt(n); idx >= 0 && p.Active[idx] {
		return isBoxFrozen(p, idx, analyzing)
	}
	return false
}

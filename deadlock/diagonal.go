package deadlock

import "github.com/katalvlaran/sokosolve/board"

// diagonalCorner names the two perpendicular directions bounding one
// of a square's four diagonal corners.
type diagonalCorner struct {
	axisA, axisB board.Direction
}

var diagonals = [4]diagonalCorner{
	{board.Up, board.Right},
	{board.Up, board.Left},
	{board.Down, board.Right},
	{board.Down, board.Left},
}

// closedDiagonalDeadlock checks the pushed box against all four
// diagonal corners for the closed-diagonal pattern: the box is pinned
// against a wall corner (both orthogonal neighbours on one corner are
// walls) while another active box sits on the diagonal square those
// two walls bound, and neither box is on a goal.
func closedDiagonalDeadlock(p *board.Position, pushedBoxSquare int) bool {
	if pushedBoxSquare == board.NoSquare {
		return false
	}
	for _, c := range diagonals {
		if diagonalPatternDeadlocked(p, pushedBoxSquare, c.axisA, c.axisB) {
			return true
		}
	}
	return false
}

func diagonalPatternDeadlocked(p *board.Position, s int, a, b board.Direction) bool {
	bridgeA := p.Board.Neighbour(s, a)
	bridgeB := p.Board.Neighbour(s, b)
	if bridgeA == board.NoSquare || bridgeB == board.NoSquare {
		return false
	}
	if !p.Board.IsWall(bridgeA) || !p.Board.IsWall(bridgeB) {
		return false
	}

	corner := p.Board.Neighbour(bridgeA, b)
	if corner == board.NoSquare {
		return false
	}
	idx := p.BoxIndexAt(corner)
	if idx < 0 || !p.Active[idx] {
		return false
	}
	if p.Board.IsGoal(s) || p.Board.IsGoal(corner) {
		return false
	}
	return true
}

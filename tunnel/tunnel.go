package tunnel

import "github.com/katalvlaran/sokosolve/board"

// InTunnel reports whether a box just pushed to boxSquare in direction
// d is forced to be pushed again in d on the next ply. Off-goal boxes
// only: a box parked on a goal is never "in a tunnel" in the sense
// that matters to the search driver.
func InTunnel(p *board.Position, boxSquare int, d board.Direction) bool {
	if p.Board.IsGoal(boxSquare) {
		return false
	}

	prev := p.Board.Neighbour(boxSquare, d.Opposite())
	if prev == board.NoSquare {
		return false
	}

	side1, side2 := perpendicular(d)
	if !wallOrOut(p.Board, p.Board.Neighbour(prev, side1)) || !wallOrOut(p.Board, p.Board.Neighbour(prev, side2)) {
		return false
	}

	return wallOrOut(p.Board, p.Board.Neighbour(boxSquare, side1)) || wallOrOut(p.Board, p.Board.Neighbour(boxSquare, side2))
}

// perpendicular returns the two directions at right angles to d.
func perpendicular(d board.Direction) (board.Direction, board.Direction) {
	if d == board.Left || d == board.Right {
		return board.Up, board.Down
	}
	return board.Left, board.Right
}

func wallOrOut(b *board.Board, s int) bool {
	return s == board.NoSquare || b.IsWall(s)
}

package reach

import "github.com/katalvlaran/sokosolve/board"

// Path reconstructs the sequence of directions the player walks to go
// from r.From() to target, by repeatedly stepping from target to a
// neighbour one move closer to the start (the reverse of bfs.BFSResult's
// parent-map walk, since Region tracks distances rather than explicit
// parents). Returns nil if target is unreached.
func Path(b *board.Board, r *Region, target int) []board.Direction {
	if !r.Contains(target) {
		return nil
	}
	steps := make([]board.Direction, 0, r.DistanceTo(target))
	cur := target
	for cur != r.From() {
		dist := r.Distance[cur]
		for _, d := range board.Directions {
			prev := b.Neighbour(cur, d)
			if prev == board.NoSquare || !r.Contains(prev) || r.Distance[prev] != dist-1 {
				continue
			}
			// Stepping prev -> cur is direction d's opposite move.
			steps = append(steps, d.Opposite())
			cur = prev
			break
		}
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

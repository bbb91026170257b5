package search

import (
	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/reach"
	"github.com/katalvlaran/sokosolve/ttable"
)

// activeBoxSquares returns the squares of every active box, the shape
// lowerbound.Solve and deadlock.Detect expect.
func activeBoxSquares(pos *board.Position) []int {
	squares := make([]int, 0, len(pos.BoxSquares))
	for i, s := range pos.BoxSquares {
		if pos.Active[i] {
			squares = append(squares, s)
		}
	}

	return squares
}

// key derives the transposition-table key for pos given its player
// reach region, combining the box bitmap with the reach region.
func key(b *board.Board, pos *board.Position, region *reach.Region) ttable.Key {
	boxBitmap := make([]bool, b.N)
	for _, s := range activeBoxSquares(pos) {
		boxBitmap[s] = true
	}

	return ttable.NewKey(boxBitmap, region.Reached)
}

// moveToFront reorders candidates so idx (if present) comes first,
// preserving the relative order of the rest. This implements the
// "most-recently-pushed box tried first" locality heuristic.
func moveToFront(candidates []int, idx int) []int {
	for i, c := range candidates {
		if c != idx {
			continue
		}
		if i == 0 {
			return candidates
		}
		out := make([]int, 0, len(candidates))
		out = append(out, idx)
		out = append(out, candidates[:i]...)
		out = append(out, candidates[i+1:]...)

		return out
	}

	return candidates
}

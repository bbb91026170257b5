package goalroom

import (
	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/reach"
)

// Detect looks for a corral-forcer square whose removal isolates a
// region containing every goal and no box. It returns the forcer
// square and the isolated region's squares (excluding the forcer
// itself).
func Detect(b *board.Board, playerSquare int, boxSquares []int) (forcer int, interior map[int]bool, ok bool) {
	boxSet := make(map[int]bool, len(boxSquares))
	for _, s := range boxSquares {
		boxSet[s] = true
	}

	for f := 0; f < b.N; f++ {
		if !b.InBounds(f) || b.IsWall(f) || !b.IsCorralForcer[f] {
			continue
		}
		region := reach.Flood(b, playerSquare, func(s int) bool { return s == f })
		inside := interiorOf(b, region, f)
		if len(inside) == 0 {
			continue
		}

		allGoalsInside := true
		for _, g := range b.Goals {
			if g == f {
				continue
			}
			if !inside[g] {
				allGoalsInside = false
				break
			}
		}
		if !allGoalsInside {
			continue
		}

		noBoxInside := true
		for s := range inside {
			if boxSet[s] {
				noBoxInside = false
				break
			}
		}
		if noBoxInside {
			return f, inside, true
		}
	}

	return board.NoSquare, nil, false
}

// interiorOf returns every non-wall, in-bounds square other than f that
// region (flooded with f treated as blocked) did not reach.
func interiorOf(b *board.Board, region *reach.Region, f int) map[int]bool {
	inside := make(map[int]bool)
	for s := 0; s < b.N; s++ {
		if s == f || b.IsWall(s) || !b.InBounds(s) {
			continue
		}
		if !region.Contains(s) {
			inside[s] = true
		}
	}

	return inside
}

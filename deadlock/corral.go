package deadlock

import (
	"time"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/reach"
)

// corralDeadlock proves that a player-unreachable region can never be
// emptied: it already holds more active boxes than it has goal
// squares, and none of those boxes has any push destination leading
// outside the region, so the region's box count can only ever stay the
// same. This is a narrower, capacity-style proof than the `corral`
// package's PI-corral analyser (which restricts the next ply's box
// choices rather than proving a deadlock), grounded on the same
// monotonic-marker flood-fill idea but purpose-built for the deadlock
// contract's true/false/not-proven-on-timeout answer.
//
// budget bounds wall-clock spend; on timeout the function returns
// false (not proven), never true, honouring the soundness invariant
// that a detector must never retract a deadlock it didn't actually
// prove.
func corralDeadlock(p *board.Position, budget time.Duration) bool {
	var deadline time.Time
	if budget > 0 {
		deadline = time.Now().Add(budget)
	}

	reached := reach.FromPosition(p)
	n := p.Board.N
	visited := make([]bool, n)

	for start := 0; start < n; start++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return false
		}
		if visited[start] || !p.Board.InBounds(start) || p.Board.IsWall(start) || reached.Contains(start) {
			continue
		}

		region := floodUnreached(p.Board, reached, visited, start)
		if corralRegionIsDeadlocked(p, region) {
			return true
		}
	}
	return false
}

// floodUnreached collects the maximal connected set of non-wall
// squares, including start, that reach does not contain, marking each
// as visited.
func floodUnreached(b *board.Board, reached *reach.Region, visited []bool, start int) []int {
	region := []int{start}
	visited[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range board.Directions {
			n := b.Neighbour(cur, d)
			if n == board.NoSquare || b.IsWall(n) || visited[n] || reached.Contains(n) {
				continue
			}
			visited[n] = true
			region = append(region, n)
			queue = append(queue, n)
		}
	}
	return region
}

// corralRegionIsDeadlocked reports whether region already holds more
// active boxes than goal squares and no box inside it can be pushed to
// a square outside it.
func corralRegionIsDeadlocked(p *board.Position, region []int) bool {
	inRegion := make(map[int]bool, len(region))
	for _, s := range region {
		inRegion[s] = true
	}

	boxesInRegion, goalsInRegion := 0, 0
	for _, s := range region {
		if p.Board.IsGoal(s) {
			goalsInRegion++
		}
	}
	canEscape := false
	for i, s := range p.BoxSquares {
		if !p.Active[i] || !inRegion[s] {
			continue
		}
		boxesInRegion++
		for _, d := range board.Directions {
			dest := p.Board.Neighbour(s, d)
			if dest != board.NoSquare && !p.Board.IsWall(dest) && !inRegion[dest] {
				canEscape = true
			}
		}
	}
	return boxesInRegion > 0 && !canEscape && boxesInRegion > goalsInRegion
}

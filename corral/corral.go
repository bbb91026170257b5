package corral

import (
	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/reach"
)

// Analyser holds the reusable marker array behind a monotonically
// increasing `current` generation, so Analyse never re-clears a full
// bitmap between calls (gridgraph.ConnectedComponents's per-call
// `visited []bool` generalized to a generation counter).
type Analyser struct {
	mark    []int
	current int
}

// NewAnalyser allocates a marker array sized for a board of squareCount squares.
func NewAnalyser(squareCount int) *Analyser {
	return &Analyser{mark: make([]int, squareCount)}
}

// Result is the outcome of one PI-corral analysis.
type Result struct {
	Proven      bool
	ForcerBoxes []int // indices into Position.BoxSquares/Frozen/Active
}

// Analyse looks for a player-unreachable region provable as a
// PI-corral and, if found, returns the forcer boxes relevant to the
// next ply. reached is the player's current reachability (considering
// boxes), typically reach.FromPosition(p).
func (a *Analyser) Analyse(p *board.Position, reached *reach.Region) Result {
	a.current++
	n := p.Board.N

	for start := 0; start < n; start++ {
		if a.mark[start] == a.current || !p.Board.InBounds(start) || p.Board.IsWall(start) || reached.Contains(start) {
			continue
		}
		region := a.flood(p.Board, reached, start)
		if res, ok := a.classify(p, reached, region); ok {
			return res
		}
	}
	return Result{}
}

func (a *Analyser) flood(b *board.Board, reached *reach.Region, start int) []int {
	region := []int{start}
	a.mark[start] = a.current
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range board.Directions {
			nb := b.Neighbour(cur, d)
			if nb == board.NoSquare || b.IsWall(nb) || reached.Contains(nb) || a.mark[nb] == a.current {
				continue
			}
			a.mark[nb] = a.current
			region = append(region, nb)
			queue = append(queue, nb)
		}
	}
	return region
}

// classify runs the per-forcer-box, per-direction push classification
// that decides whether a region is a PI-corral. It returns (Result,
// true) only when the region qualifies; (Result{}, false) otherwise,
// so Analyse can keep scanning for a different region.
func (a *Analyser) classify(p *board.Position, reached *reach.Region, region []int) (Result, bool) {
	inRegion := make(map[int]bool, len(region))
	for _, s := range region {
		inRegion[s] = true
	}

	var forcerIdx []int
	anyOffGoal := false
	disqualified := false

	for i, s := range p.BoxSquares {
		if !p.Active[i] {
			continue
		}
		adjacent := false
		for _, d := range board.Directions {
			if nb := p.Board.Neighbour(s, d); nb != board.NoSquare && inRegion[nb] {
				adjacent = true
				break
			}
		}
		if !adjacent {
			continue
		}
		forcerIdx = append(forcerIdx, i)
		if !p.Board.IsGoal(s) {
			anyOffGoal = true
		}

		for _, d := range board.Directions {
			dest := p.Board.Neighbour(s, d)
			if dest == board.NoSquare || p.Board.IsWall(dest) || p.BoxIndexAt(dest) >= 0 {
				continue // (d) push blocked outright: ignore
			}
			playerSquare := p.Board.Neighbour(s, d.Opposite())
			if playerSquare == board.NoSquare || !reached.Contains(playerSquare) {
				continue // not currently executable by the player
			}
			if inRegion[dest] {
				continue // (a) legal-into-corral: fine
			}
			// (b) legal-out-of-corral, or (c) leads into an unanalysed
			// neighbour corral: conservatively disqualifies (see doc.go).
			disqualified = true
		}
	}

	if len(forcerIdx) == 0 || disqualified || !anyOffGoal {
		return Result{}, false
	}
	return Result{Proven: true, ForcerBoxes: forcerIdx}, true
}

package goalroom

import (
	"sort"

	"github.com/katalvlaran/sokosolve/board"
)

// Plan is the parking sequence Solve produces: Paths[i] is the ordered
// list of squares (starting at the forcer, ending at a goal) box i
// walks when pushed along this plan.
type Plan struct {
	Paths [][]int
}

// Solve computes a Plan that parks one box per goal inside interior,
// entering through forcer. It orders goals farthest-from-forcer first
// so earlier placements cannot block a later, longer path (see doc.go).
// Reports false if any goal turns out unreachable once earlier goals
// are occupied (e.g. a branching room this heuristic ordering does not
// suit).
func Solve(b *board.Board, forcer int, interior map[int]bool, goals []int) (Plan, bool) {
	order := orderFarthestFirst(b, forcer, interior, goals)

	occupied := make(map[int]bool, len(goals))
	paths := make([][]int, 0, len(goals))
	for _, g := range order {
		path, ok := shortestPath(b, forcer, g, interior, occupied)
		if !ok {
			return Plan{}, false
		}
		paths = append(paths, path)
		occupied[g] = true
	}

	return Plan{Paths: paths}, true
}

func orderFarthestFirst(b *board.Board, forcer int, interior map[int]bool, goals []int) []int {
	dist := bfsDistances(b, forcer, interior)
	order := append([]int(nil), goals...)
	sort.Slice(order, func(i, j int) bool {
		return dist[order[i]] > dist[order[j]]
	})

	return order
}

// bfsDistances computes, for every square in interior plus forcer, the
// shortest walk distance from forcer, confined to interior∪{forcer}.
func bfsDistances(b *board.Board, forcer int, interior map[int]bool) map[int]int {
	dist := map[int]int{forcer: 0}
	queue := []int{forcer}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range board.Directions {
			n := b.Neighbour(cur, d)
			if n == board.NoSquare || !interior[n] {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}

	return dist
}

// shortestPath finds a walk from `from` to `to` confined to
// interior∪{forcer}, avoiding any square in occupied except the
// destination itself, and returns the square sequence including both
// endpoints.
func shortestPath(b *board.Board, from, to int, interior map[int]bool, occupied map[int]bool) ([]int, bool) {
	parent := map[int]int{from: board.NoSquare}
	queue := []int{from}
	found := from == to
	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range board.Directions {
			n := b.Neighbour(cur, d)
			if n == board.NoSquare || (n != from && !interior[n]) {
				continue
			}
			if occupied[n] && n != to {
				continue
			}
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = cur
			if n == to {
				found = true
				break
			}
			queue = append(queue, n)
		}
	}
	if !found {
		return nil, false
	}

	path := []int{to}
	for cur := to; cur != from; {
		prev := parent[cur]
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

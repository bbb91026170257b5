package lowerbound

import "github.com/katalvlaran/sokosolve/distance"

// sentinelCost stands in for distance.Unreachable in the cost matrix.
// It must exceed the sum of every real edge so that an assignment
// using even one sentinel edge is never mistaken for optimal.
const sentinelCost = 1 << 20

// Result is the outcome of matching boxes to goals.
type Result struct {
	Pushes     int   // total push distance under the optimal assignment
	Assignment []int // Assignment[boxIndex] = goal index
	Deadlock   bool  // true when no assignment avoids an unreachable pair
}

// Solve finds the minimum-cost perfect matching between boxSquares and
// the goals tbl was built for.
func Solve(tbl *distance.Tables, boxSquares []int) Result {
	n := len(boxSquares)
	m := tbl.GoalCount()
	cost := make([][]int, n)
	for i, box := range boxSquares {
		row := make([]int, m)
		for g := 0; g < m; g++ {
			d := tbl.ToGoal(g, box)
			if d == distance.Unreachable {
				row[g] = sentinelCost
			} else {
				row[g] = d
			}
		}
		cost[i] = row
	}

	total, rowOfCol := hungarian(cost)

	assignment := make([]int, n)
	deadlock := false
	for g, row := range rowOfCol {
		if row < 0 {
			continue
		}
		assignment[row] = g
		if cost[row][g] >= sentinelCost {
			deadlock = true
		}
	}
	return Result{Pushes: total, Assignment: assignment, Deadlock: deadlock}
}

// hungarian computes a minimum-cost perfect matching between the n
// rows and m columns (n<=m) of cost, using the O(n^2*m) successive
// shortest augmenting path method with vertex potentials — the same
// augmenting-path idea as a BFS max-flow search, generalized to
// weighted edges via Dijkstra-style relaxation instead of a plain BFS
// frontier. Returns the total cost and, per column, the row matched
// to it (-1 if unmatched). Indices below are 1-based internally to
// keep the "0 means unset" sentinel meaningful.
func hungarian(cost [][]int) (int, []int) {
	n := len(cost)
	if n == 0 {
		return 0, nil
	}
	m := len(cost[0])

	const inf = 1 << 30
	u := make([]int, n+1)
	v := make([]int, m+1)
	p := make([]int, m+1) // p[j] = row (1-based) matched to column j
	way := make([]int, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int, m+1)
		used := make([]bool, m+1)
		for j := range minv {
			minv[j] = inf
		}
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], inf, -1
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowOfCol := make([]int, m)
	total := 0
	for j := 1; j <= m; j++ {
		if p[j] == 0 {
			rowOfCol[j-1] = -1
			continue
		}
		rowOfCol[j-1] = p[j] - 1
		total += cost[p[j]-1][j-1]
	}
	return total, rowOfCol
}

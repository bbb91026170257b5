// Package lowerbound computes an admissible estimate of the pushes
// still required to solve a position: the cost of the minimum-cost
// perfect matching between boxes and goals over the precomputed push
// distances.
//
// What:
//
//   - Boxes and goals form a bipartite graph weighted by
//     distance.Tables.ToGoal. The minimum-cost perfect matching's total
//     weight never overestimates the true remaining pushes, because any
//     solution's per-box push count is itself a valid (if suboptimal)
//     matching, so the optimum can only be smaller or equal.
//   - A pair with no push path at all (distance.Unreachable) is costed
//     at a sentinel far larger than any real board could require; if
//     the optimal matching still has to use one, every assignment of
//     boxes to goals is broken and the position is a proven deadlock.
//
// Why: the search packages use this value directly as the A* heuristic
// (push-optimal and move-pushes variants) and as a cheap deadlock
// oracle (assignment infeasibility) ahead of the more expensive corral
// and freeze analyses.
//
// Complexity: O(n^3) for n boxes, the standard Kuhn-Munkres bound.
package lowerbound

// Package distance precomputes, once per level, the minimum number of
// pushes required to move a single box between any square and any
// goal, ignoring every other box.
//
// What:
//
//   - For each goal, a backward breadth-first search walks the "pull"
//     edges (the exact inverse of a push) outward from the goal over
//     floor/goal squares, recording distance-in-pushes to every square
//     it reaches.
//
// Why:
//
//   - Pushing a box from s to t and pulling it from t to s share the
//     same legality constraint (the player must stand on the square
//     behind the box, whichever direction the box is travelling), so
//     one backward BFS per goal yields the forward push distance FROM
//     any square TO that goal. A side-parameterised
//     table would only affect whether the very first push/pull is
//     legal, which this BFS already encodes via the player-square
//     check on every edge, so that extra dimension is unnecessary.
//
// Complexity: O(Goals * Board.N) time and space.
package distance

// Package goalroom implements a backward sub-solver: detecting that
// every goal lies inside a closed region reachable only through a
// single corral-forcer square, and precomputing
// a parking plan — the square-by-square path each box follows from the
// forcer to its assigned goal — so the forward driver can skip search
// entirely once a box is pushed onto the forcer.
//
// What:
//   - Detect finds a forcer square f such that removing f (treating it
//     as blocked) isolates a region containing every goal and no box.
//   - Solve computes, for that region, a walk-distance table from f to
//     every interior square (a plain breadth-first search confined to
//     the interior and f), orders goals farthest-first
//     so earlier placements cannot block later ones in a single-entrance
//     room, and returns a Plan of per-box paths.
//
// Why farthest-first: with one entrance and no branching inside a goal
// room, parking the box with the longest walk first guarantees its path
// is still empty; every subsequent box's path only has to avoid squares
// already holding a parked box, which a shorter path is less likely to
// cross.
package goalroom

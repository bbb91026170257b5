// Package reach computes player-reachable squares by breadth-first
// flood fill, with or without boxes blocking movement, optionally with
// per-square distances.
//
// What:
//
//   - Flood fills from the player's square over floor/goal squares,
//     treating boxes as obstacles (the normal case) or as floor (with
//     the IgnoringBoxes option).
//
// Why:
//
//   - Every search component needs "can the player reach square X"
//     (transposition-table keys, push legality, corral detection); this
//     package is the single place that answers it.
//
// Complexity: O(Board.N) per call, one flood fill.
package reach

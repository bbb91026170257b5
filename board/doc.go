// Package board implements the fixed topology and mutable position of
// a Sokoban level.
//
// What:
//
//   - Board holds per-square kind (wall/floor/goal), neighbour offsets,
//     the ordered goal list, and two precomputed flags per square:
//     IsCorralForcer (an articulation point of the floor graph) and
//     IsSimpleDeadlock (set late, once distance tables exist).
//   - Position holds the mutable per-run state: box squares, player
//     square, per-box frozen/active flags, and push/undo.
//
// Why:
//
//   - Separating immutable topology from mutable position lets a
//     search driver clone/restore positions cheaply while sharing one
//     Board, kept read-only, across an entire run.
//
// Complexity:
//
//   - New: O(W*H) for articulation-point detection.
//   - Push/Undo: O(1) for a horizontal push; a vertical push re-sorts
//     past every box whose square lies between the old and new square,
//     up to O(boxes).
package board

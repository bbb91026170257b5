// Package ttable implements the transposition table and position
// encoding: a fixed-capacity chained hash table keyed on (box bitmap,
// player-reach region), storing records in either absolute form (full
// box layout + player square) or relative form (parent pointer, last
// pushed box index, direction).
//
// What:
//
//   - Key packs the active-box bitmap and the player-reach bitmap into
//     two comparable strings, so two positions with the same boxes but
//     different reach regions are deliberately distinct keys, while
//     two positions with the same boxes and the same reach region
//     collide on purpose regardless of which square the player is
//     standing on within that region.
//   - Table is a plain slice-of-buckets chained hash map sized once at
//     construction (no rehashing), rather than a wrapped built-in map,
//     so capacity and collision behaviour are explicit and inspectable.
//   - Record carries either a full BoxSquares snapshot (a root/absolute
//     record) or a Parent pointer plus the single push that produced it
//     (a relative record); Reconstruct walks the parent chain back to
//     the root to recover the absolute box layout.
//
// Why: search positions routinely differ from their parent by one
// pushed box, so storing the full box list per node would dominate
// memory on any level with more than a handful of boxes; the
// relative/absolute split compresses chains of predecessors to amortize
// that cost.
package ttable

// Package corral implements the PI-corral analyser: given the player's
// current reachable region, it looks for a maximal unreachable region
// (a corral) whose forcer boxes can only legally be pushed deeper into
// it, and reports that subset of boxes as the only ones worth
// expanding on the current ply.
//
// What: flood-fills player-unreachable floor using a monotonically
// increasing marker (so repeated calls across thousands of expansions
// never pay the cost of re-zeroing a full visited array), then
// classifies every box adjacent to the region by its legal pushes:
// into the corral (fine), out of the corral (disqualifies — the
// region isn't really forcing anything), or blocked outright (ignored).
//
// Why: restricting the box/direction loop to a proven PI-corral's
// forcer boxes is what keeps the branching factor tractable once a
// level fills with boxes, while preserving the soundness invariant
// this package must uphold — whenever it reports a subset S, an
// optimal continuation exists whose next push is on a box in S.
//
// Simplification: a box disqualified because its destination belongs
// to a different, as yet unanalysed corral is conservatively treated
// as disqualifying here rather than recursively merged with that other
// corral. This only costs completeness (some combined corrals go
// unproven, falling back to a full box scan), never soundness.
package corral

// Package tunnel implements a single pattern-match: after pushing box
// b in direction d, is the next push of b forced to again be
// direction d?
//
// What: the square b was pushed from had walls on both its
// perpendicular sides (a one-wide corridor, so the push that got b
// here was itself forced) and b's current square has a wall on at
// least one perpendicular side. Together these mean b entered a
// narrow channel and is still constrained by it, so the search driver
// can skip generating every other box/direction combination next ply
// and try only further pushes of b.
//
// Why: without this, a long straight corridor re-explores all other
// boxes at every one of its squares even though only one push is ever
// productive there, which is the branching-factor cost this
// pattern-match exists to avoid.
package tunnel

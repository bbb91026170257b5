// Package deadlock implements five detectors — simple, freeze,
// bipartite, corral, closed-diagonal — behind one contract, called in
// that fixed order so cheaper checks prune before the more expensive
// ones run.
//
// What:
//
//   - simple: the pushed box landed on a square distance.Build already
//     proved can never reach a goal.
//   - freeze: some active box is immovable along both axes (a wall or
//     another frozen box on all four sides) and is not itself on a
//     goal.
//   - bipartite: no assignment of active boxes to goals exists at all
//     (lowerbound.Solve reports Deadlock).
//   - corral: a player-unreachable region none of whose boxes has a
//     non-wall neighbour outside it, and which already holds more
//     boxes than it has goal squares, can never be emptied.
//   - closed-diagonal: two boxes on a diagonal with the two orthogonal
//     corners walled off, neither on a goal — a classic immovable
//     diamond pattern.
//
// Why: running cheap, precomputed checks (simple) before checks that
// walk the position (freeze, bipartite) before checks that flood-fill
// a region (corral) keeps the common case fast; the corral check is
// additionally given a wall-clock budget and must report false — not
// proven, not "not a deadlock" — on timeout.
package deadlock

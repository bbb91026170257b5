// Package search implements the four search variants (any-solution
// best-first, A* push-optimal, IDA* push-pushmoves, A* move-pushes)
// over a shared expansion procedure:
// compute player reach, restrict the box/direction loop via the
// PI-corral analyser and the tunnel test, generate successors through
// board.Position.Push, reject deadlocks, and store/queue the survivors.
//
// Driver is the engine struct (named and shaped after tsp.bbEngine in
// the retrieval pack): explicit fields for configuration, search state,
// and the owned transposition table, rather than a closure-heavy
// functional pipeline. One Driver handles one Run call; the
// transposition table is cleared at the end of every Run regardless of
// outcome, as part of its ordered teardown.
//
// Cancellation follows bfs's context.Context-polling convention;
// memory pressure is reported separately via a go.uber.org/atomic.Bool
// flag the host sets, since a deadline alone cannot express host-
// reported backpressure.
package search

package search

import (
	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/deadlock"
	"github.com/katalvlaran/sokosolve/lowerbound"
	"github.com/katalvlaran/sokosolve/reach"
	"github.com/katalvlaran/sokosolve/ttable"
	"github.com/katalvlaran/sokosolve/tunnel"
)

// expand runs the single expansion procedure shared by every forward
// variant. useBound/bound restrict successors to an
// IDA* outer iteration's pushes-bound; useBound is false for the three
// non-iterative variants.
//
// When a goal-room plan is active and record is mid-replay (a box is
// walking a forced path toward a parked goal), expand skips the usual
// candidate scan entirely and considers only the single push the plan
// dictates, since the room's single entrance and lack of internal
// branching leave no other legal continuation worth searching.
func (d *Driver) expand(record *ttable.Record, variant Variant, queue *bucketQueue, useBound bool, bound int) {
	boxes, player, lastPushed := record.Reconstruct(d.board)
	pos := board.NewPosition(d.board, boxes, player)
	pos.PushesCount = record.PushesCount

	reached := reach.FromPosition(pos)

	if plan := d.opts.GoalRoomPlan; plan != nil {
		if boxIndex, dir, ok := replayForcedPush(pos, record, plan); ok {
			d.tryPush(pos, record, reached, boxIndex, dir, variant, queue, useBound, bound)

			return
		}
	}

	corralResult := d.corralAnalyser.Analyse(pos, reached)

	var candidates []int
	if record.TunnelBoxSquare != board.NoSquare {
		if idx := pos.BoxIndexAt(record.TunnelBoxSquare); idx >= 0 {
			candidates = []int{idx}
		}
	}
	if candidates == nil {
		if corralResult.Proven {
			candidates = corralResult.ForcerBoxes
		} else {
			for i := range pos.BoxSquares {
				if pos.Active[i] {
					candidates = append(candidates, i)
				}
			}
		}
	}
	if lastPushed != board.NoSquare {
		if idx := pos.BoxIndexAt(lastPushed); idx >= 0 {
			candidates = moveToFront(candidates, idx)
		}
	}

	for _, boxIndex := range candidates {
		for _, dir := range board.Directions {
			d.tryPush(pos, record, reached, boxIndex, dir, variant, queue, useBound, bound)
		}
	}
}

// tryPush walks the player to the square behind boxIndex, applies the
// single push of boxIndex in dir, hands the result to considerSuccessor,
// and undoes both regardless of outcome.
func (d *Driver) tryPush(pos *board.Position, record *ttable.Record, reached *reach.Region, boxIndex int, dir board.Direction, variant Variant, queue *bucketQueue, useBound bool, bound int) {
	boxSquare := pos.BoxSquares[boxIndex]
	dest := pos.Board.Neighbour(boxSquare, dir)
	if dest == board.NoSquare || !pos.IsAccessible(dest) {
		return
	}
	behind := pos.Board.Neighbour(boxSquare, dir.Opposite())
	if behind == board.NoSquare || !reached.Contains(behind) {
		return
	}

	walkSteps := reached.DistanceTo(behind)
	startPlayer := pos.PlayerSquare
	pos.PlayerSquare = behind
	pushRec := pos.Push(boxIndex, dir)
	parentMoves := record.MovesCount + walkSteps + 1
	d.considerSuccessor(pos, record, boxIndex, dir, dest, boxSquare, parentMoves, variant, queue, useBound, bound)
	pos.Undo(pushRec)
	pos.PlayerSquare = startPlayer
}

// considerSuccessor evaluates the single successor produced by pushing
// boxIndex in dir to dest (pos already reflects the push); it inserts
// and enqueues the successor when it survives every deadlock check and
// is not dominated by an existing record for the same key. movesSoFar
// is the parent's move count plus the walk to get behind the box plus
// the push itself: board.Position only counts pushes, since it has no
// separate walk-without-pushing operation, so the moves total is
// tracked here instead (see DESIGN.md).
func (d *Driver) considerSuccessor(pos *board.Position, parent *ttable.Record, boxIndex int, dir board.Direction, dest int, boxSquareBeforePush int, movesSoFar int, variant Variant, queue *bucketQueue, useBound bool, bound int) {
	if deadlock.Detect(pos, dest, d.tbl, d.opts.CorralBudget) {
		return
	}
	lb := lowerbound.Solve(d.tbl, activeBoxSquares(pos))
	if lb.Deadlock {
		return
	}
	if useBound && pos.PushesCount+lb.Pushes > bound {
		return
	}

	childReach := reach.FromPosition(pos)
	childKey := key(d.board, pos, childReach)
	child := ttable.NewChild(childKey, parent, boxIndex, dir)
	child.LowerBound = lb.Pushes
	child.PushesCount = pos.PushesCount
	child.MovesCount = movesSoFar
	child.ProgressIndex = pos.BoxesOnGoals
	if tunnel.InTunnel(pos, dest, dir) {
		child.TunnelBoxSquare = dest
	}
	if plan := d.opts.GoalRoomPlan; plan != nil {
		child.ReplayBoxSquare, child.ReplayPathIndex, child.ReplayStep, child.ReplayPlansUsed =
			advanceReplay(parent, plan, boxSquareBeforePush, dest)
	}

	if prior, existed := d.table.Lookup(childKey); existed {
		dominated := d.costKey(variant, prior) <= d.costKey(variant, child)
		if useBound {
			// A record planted by an earlier, narrower IDA* iteration
			// only reflects that iteration's bound; it must not block
			// this iteration from reopening and deepening past it. Only
			// a record already visited at the current bound can
			// dominate a new candidate for the same key.
			if prior.IterationBound == bound && dominated {
				return
			}
		} else if dominated {
			return
		}
	}
	if useBound {
		child.IterationBound = bound
	}
	d.table.InsertOrReplace(child)
	queue.store(child, d.costKey(variant, child))
}

// costKey maps a record to its bucket-queue cost for variant. Lower
// keys are preferred (popped first); ANY's relevance score is therefore
// encoded as its complement.
func (d *Driver) costKey(variant Variant, r *ttable.Record) int {
	switch variant {
	case PUSH, PushMoves:
		return r.PushesCount + r.LowerBound
	case MovesPushes:
		cost := (r.MovesCount + r.LowerBound) * 1000
		return cost + r.PushesCount
	default: // ANY
		cost := r.LowerBound*10 - r.ProgressIndex
		if cost < 0 {
			cost = 0
		}

		return cost
	}
}

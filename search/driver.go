package search

import (
	"context"
	"time"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/corral"
	"github.com/katalvlaran/sokosolve/distance"
	"github.com/katalvlaran/sokosolve/lowerbound"
	"github.com/katalvlaran/sokosolve/reach"
	"github.com/katalvlaran/sokosolve/ttable"
)

// Driver owns one transposition table and runs one search variant at a
// time, following the engine-struct shape of tsp.bbEngine in the
// retrieval pack: explicit configuration and state fields rather than
// closures, so the hot expansion loop's dependencies stay inspectable.
type Driver struct {
	board          *board.Board
	tbl            *distance.Tables
	table          *ttable.Table
	corralAnalyser *corral.Analyser
	opts           Options
}

// NewDriver builds a Driver over a built board and its distance tables.
func NewDriver(b *board.Board, tbl *distance.Tables, opts ...Option) (*Driver, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	table, err := ttable.New(ttable.WithCapacity(o.TableCapacity))
	if err != nil {
		return nil, err
	}

	return &Driver{
		board:          b,
		tbl:            tbl,
		table:          table,
		corralAnalyser: corral.NewAnalyser(b.N),
		opts:           o,
	}, nil
}

// maxIDABound caps IDA*'s outer-loop widening so a genuinely unsolvable
// board (that the initial lower-bound check did not already catch, e.g.
// one that only becomes a deadlock after a few pushes) terminates
// rather than widening forever.
const maxIDABound = 1 << 16

// Run executes variant from (initialBoxes, initialPlayer) to
// completion, honouring ctx cancellation and an optional wall-clock
// timeLimit (0 = unlimited). The transposition table is cleared before
// returning, win or lose.
func (d *Driver) Run(ctx context.Context, variant Variant, initialBoxes []int, initialPlayer int, timeLimit time.Duration) Result {
	d.table.Clear()
	defer d.table.Clear()

	pos := board.NewPosition(d.board, initialBoxes, initialPlayer)
	lb := lowerbound.Solve(d.tbl, activeBoxSquares(pos))
	if lb.Deadlock {
		return Result{Status: StatusUnsolvable}
	}
	if pos.Solved() {
		return Result{Status: StatusSolved}
	}

	var deadline time.Time
	hasDeadline := timeLimit > 0
	if hasDeadline {
		deadline = time.Now().Add(timeLimit)
	}

	reached := reach.FromPosition(pos)
	root := ttable.NewRoot(key(d.board, pos, reached), pos.BoxSquares, pos.PlayerSquare)
	root.LowerBound = lb.Pushes
	root.ProgressIndex = pos.BoxesOnGoals
	d.table.InsertOrReplace(root)

	d.opts.Logger.Debug().Str("variant", variant.String()).Int("initial_lower_bound", lb.Pushes).Msg("search-start")

	var visited, expanded int
	if variant == PushMoves {
		return d.runIDA(ctx, root, hasDeadline, deadline, &visited, &expanded)
	}

	queue := newBucketQueue()
	queue.store(root, d.costKey(variant, root))

	for {
		if status, done := d.checkSuspension(ctx, hasDeadline, deadline); done {
			return Result{Status: status, Visited: visited, Expanded: expanded}
		}
		record, ok := queue.getBest()
		if !ok {
			return Result{Status: StatusUnsolvable, Visited: visited, Expanded: expanded}
		}
		visited++
		if record.LowerBound == 0 {
			return d.solved(variant, record, visited, expanded)
		}
		expanded++
		d.expand(record, variant, queue, false, 0)
	}
}

// runIDA implements the PushMoves (push-pushmoves) variant: an outer
// loop widens the pushes-bound by 2 until a solution is found or
// maxIDABound is exceeded. The transposition table persists across
// outer iterations so repeated work on already-seen positions
// collapses; each iteration's queue is rebuilt from the root, and
// every record popped and expanded is tagged with the current bound
// via Record.IterationBound. considerSuccessor only treats a table hit
// as dominating when that hit carries the current bound, so a record
// planted by an earlier, narrower iteration gets reopened instead of
// silently blocking rediscovery once the bound widens past it.
func (d *Driver) runIDA(ctx context.Context, root *ttable.Record, hasDeadline bool, deadline time.Time, visited, expanded *int) Result {
	bound := root.LowerBound
	for bound <= maxIDABound {
		if status, done := d.checkSuspension(ctx, hasDeadline, deadline); done {
			return Result{Status: status, Visited: *visited, Expanded: *expanded}
		}

		queue := newBucketQueue()
		queue.store(root, root.PushesCount+root.LowerBound)

		for {
			if status, done := d.checkSuspension(ctx, hasDeadline, deadline); done {
				return Result{Status: status, Visited: *visited, Expanded: *expanded}
			}
			record, ok := queue.getBest()
			if !ok {
				break
			}
			*visited++
			if record.LowerBound == 0 {
				return d.solved(PushMoves, record, *visited, *expanded)
			}
			if record.PushesCount+record.LowerBound > bound {
				continue
			}
			*expanded++
			record.IterationBound = bound
			d.expand(record, PushMoves, queue, true, bound)
		}

		d.opts.Logger.Debug().Int("bound", bound).Int("visited", *visited).Msg("ida-iteration-exhausted")
		bound += 2
	}

	return Result{Status: StatusUnsolvable, Visited: *visited, Expanded: *expanded}
}

func (d *Driver) checkSuspension(ctx context.Context, hasDeadline bool, deadline time.Time) (Status, bool) {
	select {
	case <-ctx.Done():
		return StatusCancelled, true
	default:
	}
	if hasDeadline && time.Now().After(deadline) {
		return StatusTimeout, true
	}
	if d.opts.MemoryPressure != nil && d.opts.MemoryPressure.Load() {
		return StatusOutOfMemory, true
	}

	return StatusRunning, false
}

func (d *Driver) solved(variant Variant, record *ttable.Record, visited, expanded int) Result {
	solution := reconstructSolution(d.board, record)
	d.opts.Logger.Info().
		Str("variant", variant.String()).
		Int("pushes", record.PushesCount).
		Int("moves", record.MovesCount).
		Int("visited", visited).
		Int("expanded", expanded).
		Msg("solution-found")

	return Result{Status: StatusSolved, Solution: solution, Visited: visited, Expanded: expanded}
}

package sokosolve

import (
	"context"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/distance"
	"github.com/katalvlaran/sokosolve/goalroom"
	"github.com/katalvlaran/sokosolve/search"
)

// Solve builds a board from d, rejects malformed input with an error,
// and otherwise runs the requested variant to completion. error is
// reserved for malformed input; every other terminal condition —
// trivially unsolvable, cancelled, timed out, out of memory, solved —
// is reported via Outcome.Status.
func Solve(ctx context.Context, d Descriptor, r Request, opts ...search.Option) (Outcome, error) {
	b, err := board.New(d)
	if err != nil {
		return Outcome{}, err
	}

	tbl := distance.Build(b)
	b.ApplySimpleDeadlocks(tbl.IsUnreachable)

	if forcer, interior, ok := goalroom.Detect(b, d.Player, d.Boxes); ok {
		goals := make([]int, 0, len(interior))
		for _, g := range b.Goals {
			if interior[g] {
				goals = append(goals, g)
			}
		}
		// Solve can still fail on a room this heuristic ordering does
		// not suit (see goalroom/doc.go); only a validated plan is
		// handed to the driver, so an unsolvable parking order falls
		// back to the ordinary forward search instead of misdirecting it.
		if plan, ok := goalroom.Solve(b, forcer, interior, goals); ok {
			opts = append(opts, search.WithGoalRoomPlan(search.GoalRoomPlan{
				Forcer: forcer,
				Paths:  plan.Paths,
			}))
		}
	}

	driver, err := search.NewDriver(b, tbl, opts...)
	if err != nil {
		return Outcome{}, err
	}

	res := driver.Run(ctx, r.Variant, d.Boxes, d.Player, r.TimeLimit)

	return Outcome{
		Status:   res.Status,
		Solution: res.Solution,
		Visited:  res.Visited,
		Expanded: res.Expanded,
	}, nil
}

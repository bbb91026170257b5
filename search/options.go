package search

import (
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Options configures a Driver via the standard functional-options
// convention (bfs.Option, builder.GraphOption).
type Options struct {
	Logger         zerolog.Logger
	MemoryPressure *atomic.Bool
	CorralBudget   time.Duration
	TableCapacity  int
	GoalRoomPlan   *GoalRoomPlan
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Logger:        zerolog.Nop(),
		CorralBudget:  150 * time.Millisecond,
		TableCapacity: 1 << 20,
	}
}

// WithLogger sets the structured logger events are emitted to. The
// default is zerolog.Nop(), matching a library that must not write to
// stdout unless a host opts in.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMemoryPressure wires a host-owned flag the driver polls at every
// suspension point; nil (the default) disables the OUT_OF_MEMORY path.
func WithMemoryPressure(flag *atomic.Bool) Option {
	return func(o *Options) { o.MemoryPressure = flag }
}

// WithCorralBudget overrides the corral detector's wall-clock budget,
// default 150ms.
func WithCorralBudget(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.CorralBudget = d
		}
	}
}

// WithTableCapacity overrides the transposition table's fixed bucket
// count.
func WithTableCapacity(capacity int) Option {
	return func(o *Options) {
		if capacity > 0 {
			o.TableCapacity = capacity
		}
	}
}

// WithGoalRoomPlan wires a precomputed goal-room parking plan: once a
// box is pushed onto plan.Forcer, the driver forces it along the next
// unused path in plan.Paths instead of branching over every box and
// direction, until the box reaches the goal at that path's far end.
func WithGoalRoomPlan(plan GoalRoomPlan) Option {
	return func(o *Options) { o.GoalRoomPlan = &plan }
}

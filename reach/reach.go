package reach

import (
	"context"

	"github.com/katalvlaran/sokosolve/board"
)

// Region is the result of a flood fill: which squares the player can
// reach, and at what distance (in moves) from the start square.
type Region struct {
	from     int
	Reached  []bool // bitmap, len Board.N
	Distance []int  // moves from `from`; -1 if unreached
}

// From returns the square the flood fill started at.
func (r *Region) From() int { return r.from }

// Contains reports whether s is reachable.
func (r *Region) Contains(s int) bool {
	return s >= 0 && s < len(r.Reached) && r.Reached[s]
}

// DistanceTo returns moves from From() to s, or -1 if unreached.
func (r *Region) DistanceTo(s int) int {
	if !r.Contains(s) {
		return -1
	}
	return r.Distance[s]
}

// Options configure a flood fill via the standard functional-options
// convention.
type Options struct {
	Ctx           context.Context
	ConsiderBoxes bool // when true, box squares are treated as walls
}

// Option mutates Options.
type Option func(*Options)

// WithContext sets a cancellation context, checked once per dequeue.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// IgnoringBoxes disables box-as-wall treatment, so the flood walks over
// box squares as if they were floor.
func IgnoringBoxes() Option {
	return func(o *Options) { o.ConsiderBoxes = false }
}

func defaultOptions() Options {
	return Options{Ctx: context.Background(), ConsiderBoxes: true}
}

// Flood performs a breadth-first flood fill from `from` over b, honouring
// walls always and boxes when ConsiderBoxes is set (the default).
// IsBoxAt is supplied directly rather than via *board.Position so
// callers (e.g. the goal-room sub-solver, which tracks active/inactive
// boxes separately) can pass a custom predicate.
func Flood(b *board.Board, from int, isBoxAt func(s int) bool, opts ...Option) *Region {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Region{from: from, Reached: make([]bool, b.N), Distance: make([]int, b.N)}
	for i := range r.Distance {
		r.Distance[i] = -1
	}
	if !b.InBounds(from) || b.IsWall(from) {
		return r
	}

	queue := make([]int, 0, b.N)
	queue = append(queue, from)
	r.Reached[from] = true
	r.Distance[from] = 0

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return r
		default:
		}
		cur := queue[0]
		queue = queue[1:]
		for _, d := range board.Directions {
			n := b.Neighbour(cur, d)
			if n == board.NoSquare || b.IsWall(n) || r.Reached[n] {
				continue
			}
			if o.ConsiderBoxes && isBoxAt != nil && isBoxAt(n) {
				continue
			}
			r.Reached[n] = true
			r.Distance[n] = r.Distance[cur] + 1
			queue = append(queue, n)
		}
	}
	return r
}

// FromPosition is sugar for Flood(b, p.PlayerSquare, p.IsBoxAt, opts...),
// the common case of reachability from the current player square.
func FromPosition(p *board.Position, opts ...Option) *Region {
	return Flood(p.Board, p.PlayerSquare, p.IsBoxAt, opts...)
}

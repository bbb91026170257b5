package board

// Board is the immutable topology of a level: square kinds, ordered
// goal list, per-direction neighbour offsets, and articulation-point
// derived corral-forcer flags. It never changes once built.
type Board struct {
	Width, Height int
	N             int // Width * Height

	kinds  []SquareKind
	Goals  []int // ordered, Goals[i] is the square of goal i
	Player int   // initial player square

	// offset[d] is the square-index delta for direction d (e.g. Left is -1).
	offset [4]int

	// IsCorralForcer[s] is true when s is an articulation point of the
	// floor graph: placing a box there can disconnect part of the floor
	// from the rest, i.e. it can create a corral.
	IsCorralForcer []bool

	// IsSimpleDeadlock[s] is true when no box placed at s can reach any
	// goal by legal pushes, regardless of player position. Populated by
	// ApplySimpleDeadlocks once distance tables are available; zero
	// value (all false) until then.
	IsSimpleDeadlock []bool
}

// New validates a Descriptor and builds its immutable topology.
func New(d Descriptor) (*Board, error) {
	if d.Width <= 0 || d.Height <= 0 || len(d.Kinds) != d.Width*d.Height {
		return nil, ErrNotRectangular
	}
	if d.Player < 0 || d.Player >= len(d.Kinds) {
		return nil, ErrNoPlayer
	}
	if d.Kinds[d.Player] == Wall {
		return nil, ErrPlayerOnWall
	}
	if len(d.Boxes) != len(d.Goals) {
		return nil, ErrBoxGoalMismatch
	}
	seen := make(map[int]bool, len(d.Boxes))
	for _, b := range d.Boxes {
		if seen[b] {
			return nil, ErrDuplicateBox
		}
		seen[b] = true
	}

	b := &Board{
		Width:  d.Width,
		Height: d.Height,
		N:      d.Width * d.Height,
		kinds:  append([]SquareKind(nil), d.Kinds...),
		Goals:  append([]int(nil), d.Goals...),
		Player: d.Player,
	}
	b.offset = [4]int{Left: -1, Up: -d.Width, Down: d.Width, Right: 1}
	b.IsSimpleDeadlock = make([]bool, b.N)
	b.IsCorralForcer = computeArticulationPoints(b)
	return b, nil
}

// Kind returns the static kind of square s.
func (b *Board) Kind(s int) SquareKind {
	return b.kinds[s]
}

// IsWall reports whether s is a wall.
func (b *Board) IsWall(s int) bool {
	return b.kinds[s] == Wall
}

// IsGoal reports whether s is a goal square.
func (b *Board) IsGoal(s int) bool {
	return b.kinds[s] == Goal
}

// InBounds reports whether s is a valid, non-out-of-play square.
func (b *Board) InBounds(s int) bool {
	return s >= 0 && s < b.N && b.kinds[s] != OutOfPlay
}

// Neighbour returns the square reached from s by moving in direction d,
// or NoSquare if that would leave the grid. Callers must still check
// InBounds/IsWall before treating it as walkable (moving off the left
// or right edge wraps row-major indices, which InBounds alone would not
// catch; Neighbour rejects that case explicitly).
func (b *Board) Neighbour(s int, d Direction) int {
	x, y := s%b.Width, s/b.Width
	switch d {
	case Left:
		if x == 0 {
			return NoSquare
		}
	case Right:
		if x == b.Width-1 {
			return NoSquare
		}
	case Up:
		if y == 0 {
			return NoSquare
		}
	case Down:
		if y == b.Height-1 {
			return NoSquare
		}
	}
	n := s + b.offset[d]
	if !b.InBounds(n) {
		return NoSquare
	}
	return n
}

// ApplySimpleDeadlocks sets IsSimpleDeadlock[s] for every square from
// which unreachable reports true for all goals. Called once at level
// initialisation after the distance package has built its tables
// (board cannot depend on distance, so this is a late-bound setter
// rather than computed inline in New).
func (b *Board) ApplySimpleDeadlocks(unreachable func(square int) bool) {
	for s := 0; s < b.N; s++ {
		if b.kinds[s] != Wall && b.kinds[s] != OutOfPlay {
			b.IsSimpleDeadlock[s] = unreachable(s)
		}
	}
}

// computeArticulationPoints finds articulation points of the floor
// graph (all non-wall, non-out-of-play squares, 4-connected), the
// squares whose removal could split the remaining floor into more than
// one component, i.e. candidate corral forcers.
func computeArticulationPoints(b *Board) []bool {
	disc := make([]int, b.N)
	low := make([]int, b.N)
	visited := make([]bool, b.N)
	isArticulation := make([]bool, b.N)
	for i := range disc {
		disc[i] = -1
	}
	timer := 0

	var dfs func(u, parent int)
	dfs = func(u, parent int) {
		visited[u] = true
		disc[u] = timer
		low[u] = timer
		timer++
		children := 0
		for _, d := range Directions {
			v := b.Neighbour(u, d)
			if v == NoSquare || b.kinds[v] == Wall || b.kinds[v] == OutOfPlay {
				continue
			}
			if !visited[v] {
				children++
				dfs(v, u)
				if low[v] < low[u] {
					low[u] = low[v]
				}
				if parent != -1 && low[v] >= disc[u] {
					isArticulation[u] = true
				}
			} else if v != parent {
				if disc[v] < low[u] {
					low[u] = disc[v]
				}
			}
		}
		if parent == -1 && children > 1 {
			isArticulation[u] = true
		}
	}

	for s := 0; s < b.N; s++ {
		if b.kinds[s] != Wall && b.kinds[s] != OutOfPlay && !visited[s] {
			dfs(s, -1)
		}
	}
	return isArticulation
}

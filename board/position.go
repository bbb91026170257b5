package board

import "sort"

// Position is the mutable part of a level: where the boxes and the
// player currently are, plus per-box search metadata (frozen/active).
// Position is owned exclusively by whichever search component is
// expanding it; it is not safe for concurrent use.
type Position struct {
	Board *Board

	// BoxSquares is kept sorted ascending so two positions with the
	// same box set compare/hash identically regardless of push order.
	BoxSquares []int
	isBox      []bool // bitmap, len Board.N

	PlayerSquare int

	// Frozen[i] is true when box i has been proven immovable by a
	// deadlock detector during the current expansion. It only ever
	// grows within one expansion and is cleared before the next.
	Frozen []bool

	// Active[i] is false when box i has been conceptually removed from
	// the board; used only by the goal-room sub-solver.
	Active []bool

	BoxesOnGoals int
	MovesCount   int
	PushesCount  int
}

// NewPosition builds the initial mutable position from a Descriptor
// already validated by New.
func NewPosition(b *Board, boxes []int, player int) *Position {
	p := &Position{
		Board:        b,
		BoxSquares:   append([]int(nil), boxes...),
		isBox:        make([]bool, b.N),
		PlayerSquare: player,
		Frozen:       make([]bool, len(boxes)),
		Active:       make([]bool, len(boxes)),
	}
	sort.Ints(p.BoxSquares)
	for _, s := range p.BoxSquares {
		p.isBox[s] = true
	}
	for i := range p.Active {
		p.Active[i] = true
	}
	p.recount()
	return p
}

func (p *Position) recount() {
	p.BoxesOnGoals = 0
	for i, s := range p.BoxSquares {
		if p.Active[i] && p.Board.IsGoal(s) {
			p.BoxesOnGoals++
		}
	}
}

// IsBoxAt reports whether an active box currently occupies s.
func (p *Position) IsBoxAt(s int) bool {
	return p.isBox[s]
}

// BoxIndexAt returns the index into BoxSquares/Frozen/Active of the box
// at s, or -1 if no box is there.
func (p *Position) BoxIndexAt(s int) int {
	i := sort.SearchInts(p.BoxSquares, s)
	if i < len(p.BoxSquares) && p.BoxSquares[i] == s {
		return i
	}
	return -1
}

// IsAccessible reports whether s is floor/goal, in bounds, and free of
// any active box (walls and boxes are both obstacles to the player and
// to further pushes).
func (p *Position) IsAccessible(s int) bool {
	return p.Board.InBounds(s) && !p.Board.IsWall(s) && !p.isBox[s]
}

// Solved reports whether every active box sits on a goal; the
// lower-bound engine must return 0 iff this holds.
func (p *Position) Solved() bool {
	for i, s := range p.BoxSquares {
		if p.Active[i] && !p.Board.IsGoal(s) {
			return false
		}
	}
	return true
}

// PushRecord carries everything Undo needs to exactly restore the
// position a Push mutated.
type PushRecord struct {
	boxIndex     int // index in BoxSquares *after* the push's resort
	direction    Direction
	prevBox      int
	prevPlayer   int
	boxesOnGoals int
}

// Push moves the box at boxIndex one square in direction, and the
// player to the square the box vacated. Precondition (verified by the
// caller, e.g. search's expansion loop): the player currently occupies
// the square opposite the box in direction, and the box's destination
// is accessible. Violating the precondition is a programmer error and
// panics.
func (p *Position) Push(boxIndex int, direction Direction) PushRecord {
	box := p.BoxSquares[boxIndex]
	dest := p.Board.Neighbour(box, direction)
	if dest == NoSquare || !p.IsAccessible(dest) {
		panic("board: push precondition violated: destination not accessible")
	}
	behind := p.Board.Neighbour(box, direction.Opposite())
	if behind != p.PlayerSquare {
		panic("board: push precondition violated: player not behind box")
	}

	prevPlayer := p.PlayerSquare
	prevBoxesOnGoals := p.BoxesOnGoals

	p.isBox[box] = false
	p.isBox[dest] = true
	p.BoxSquares[boxIndex] = dest
	p.PlayerSquare = box
	p.MovesCount++
	p.PushesCount++

	if p.Board.IsGoal(box) {
		p.BoxesOnGoals--
	}
	if p.Board.IsGoal(dest) {
		p.BoxesOnGoals++
	}
	finalIdx := p.resortAround(boxIndex)
	return PushRecord{boxIndex: finalIdx, direction: direction, prevBox: box, prevPlayer: prevPlayer, boxesOnGoals: prevBoxesOnGoals}
}

// resortAround restores BoxSquares' sortedness after the entry at
// boxIndex changed, via an insertion-sort shift (a Left/Right push
// changes the square index by one and crosses no other box; an Up/Down
// push changes it by Width and can cross every box in between).
// Returns the entry's final index.
func (p *Position) resortAround(boxIndex int) int {
	for boxIndex > 0 && p.BoxSquares[boxIndex-1] > p.BoxSquares[boxIndex] {
		p.BoxSquares[boxIndex-1], p.BoxSquares[boxIndex] = p.BoxSquares[boxIndex], p.BoxSquares[boxIndex-1]
		boxIndex--
	}
	for boxIndex < len(p.BoxSquares)-1 && p.BoxSquares[boxIndex+1] < p.BoxSquares[boxIndex] {
		p.BoxSquares[boxIndex+1], p.BoxSquares[boxIndex] = p.BoxSquares[boxIndex], p.BoxSquares[boxIndex+1]
		boxIndex++
	}
	return boxIndex
}

// Undo exactly reverses the Push that produced rec. Positions must be
// undone in strict LIFO order relative to their Push calls.
func (p *Position) Undo(rec PushRecord) {
	idx := rec.boxIndex
	p.isBox[p.BoxSquares[idx]] = false
	p.isBox[rec.prevBox] = true
	p.BoxSquares[idx] = rec.prevBox
	p.PlayerSquare = rec.prevPlayer
	p.MovesCount--
	p.PushesCount--
	p.BoxesOnGoals = rec.boxesOnGoals
	p.resortAround(idx)
}

// Clone returns a deep copy, used by the goal-room sub-solver and
// tests that need to mutate a position without disturbing the caller's.
func (p *Position) Clone() *Position {
	c := &Position{
		Board:        p.Board,
		BoxSquares:   append([]int(nil), p.BoxSquares...),
		isBox:        append([]bool(nil), p.isBox...),
		PlayerSquare: p.PlayerSquare,
		Frozen:       append([]bool(nil), p.Frozen...),
		Active:       append([]bool(nil), p.Active...),
		BoxesOnGoals: p.BoxesOnGoals,
		MovesCount:   p.MovesCount,
		PushesCount:  p.PushesCount,
	}
	return c
}

// ClearFrozen resets all frozen flags to false, called at the start of
// each expansion before deadlock detectors run.
func (p *Position) ClearFrozen() {
	for i := range p.Frozen {
		p.Frozen[i] = false
	}
}

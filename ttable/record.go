package ttable

import (
	"sort"

	"github.com/katalvlaran/sokosolve/board"
)

// Record is a stored position, in absolute or relative form. A
// root/absolute record carries the full box layout directly; every
// other record carries only the push that separates it from Parent.
type Record struct {
	Key Key

	// Parent is nil for an absolute (root) record.
	Parent *Record

	// PushedBox and Direction encode the single push Parent underwent
	// to produce this record. PushedBox is board.NoSquare on a root
	// record, which also means "no predecessor pushed box" rather than
	// pointing at a dummy record (see board.NoSquare's doc comment).
	PushedBox int
	Direction board.Direction

	// BoxSquares and PlayerSquare are populated only on a root record.
	BoxSquares   []int
	PlayerSquare int

	// TunnelBoxSquare is the square of the box that must be the sole
	// expansion candidate for this record's children (the tunnel
	// restriction), or board.NoSquare when no tunnel is active.
	TunnelBoxSquare int

	// ProgressIndex is the number of boxes on goals at this record,
	// standing in for a precomputed packing-sequence index (see
	// DESIGN.md: no backward packing-order precomputation is
	// implemented, so the any-solution variant's relevance score biases
	// on raw packing progress instead).
	ProgressIndex int

	// ReplayBoxSquare is the square of the box currently mid-walk along
	// a goal-room plan's forced path, or board.NoSquare when no replay
	// is active on this branch.
	ReplayBoxSquare int

	// ReplayPathIndex indexes the goal-room plan's Paths the box at
	// ReplayBoxSquare is following; meaningless while ReplayBoxSquare
	// is board.NoSquare.
	ReplayPathIndex int

	// ReplayStep counts how many squares of that path have already
	// been reached; the box currently sits at
	// Paths[ReplayPathIndex][ReplayStep].
	ReplayStep int

	// ReplayPlansUsed counts how many of the plan's paths earlier boxes
	// on this branch have already walked in full, so the next box to
	// enter the forcer square is assigned the next unused path.
	ReplayPlansUsed int

	// Search metadata, mutable after insertion.
	LowerBound int

	// IterationBound is the PushMoves (IDA*) outer bound this record
	// was last expanded at; zero and unused outside that variant. A
	// record found in the table with an IterationBound from an earlier,
	// narrower iteration is reopened rather than treated as dominated,
	// so a later, wider iteration can still deepen past it.
	IterationBound int
	PushesCount    int
	MovesCount     int
}

// NewRoot builds an absolute record with no parent.
func NewRoot(key Key, boxSquares []int, playerSquare int) *Record {
	return &Record{
		Key:             key,
		PushedBox:       board.NoSquare,
		BoxSquares:      append([]int(nil), boxSquares...),
		PlayerSquare:    playerSquare,
		TunnelBoxSquare: board.NoSquare,
		ReplayBoxSquare: board.NoSquare,
		ReplayPathIndex: -1,
	}
}

// NewChild builds a relative record: parent plus the single push that
// produced it.
func NewChild(key Key, parent *Record, pushedBox int, direction board.Direction) *Record {
	return &Record{
		Key:             key,
		Parent:          parent,
		PushedBox:       pushedBox,
		Direction:       direction,
		TunnelBoxSquare: board.NoSquare,
		ReplayBoxSquare: board.NoSquare,
		ReplayPathIndex: -1,
	}
}

// Reconstruct walks the parent chain to the root and replays every
// push, reproducing the absolute box layout and player square.
// lastPushedBoxSquare is the square the driver's most recent push left
// its box on, or board.NoSquare at a root record; the driver uses it
// to try that box first on the next expansion (the locality ordering
// heuristic).
func (r *Record) Reconstruct(b *board.Board) (boxSquares []int, playerSquare int, lastPushedBoxSquare int) {
	if r.Parent == nil {
		return append([]int(nil), r.BoxSquares...), r.PlayerSquare, board.NoSquare
	}
	boxes, _, _ := r.Parent.Reconstruct(b)
	oldBox := boxes[r.PushedBox]
	newBox := b.Neighbour(oldBox, r.Direction)
	boxes[r.PushedBox] = newBox
	sort.Ints(boxes)
	return boxes, oldBox, newBox
}

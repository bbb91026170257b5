package board_test

import (
	"testing"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/stretchr/testify/require"
)

// s1Level holds a single box one push away from its goal.
const s1Level = "" +
	"#####\n" +
	"#@$.#\n" +
	"#####"

func mustBoard(t *testing.T, level string) (*board.Board, *board.Position) {
	t.Helper()
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)
	return b, board.NewPosition(b, d.Boxes, d.Player)
}

func TestParseASCIIReadsDimensionsAndBoxes(t *testing.T) {
	b, p := mustBoard(t, s1Level)
	require.Equal(t, 5, b.Width)
	require.Equal(t, 3, b.Height)
	require.Len(t, p.BoxSquares, 1)
	require.False(t, p.Solved())
}

// TestPushUndoInvolution asserts testable property 1: push followed by
// push_undo restores all board state bit-for-bit.
func TestPushUndoInvolution(t *testing.T) {
	_, p := mustBoard(t, s1Level)

	before := snapshot(p)

	// the player stands directly left of the box, so pushing Right is legal.
	boxIdx := p.BoxIndexAt(p.BoxSquares[0])
	rec := p.Push(boxIdx, board.Right)
	require.NotEqual(t, before, snapshot(p))
	require.True(t, p.Solved())

	p.Undo(rec)
	require.Equal(t, before, snapshot(p))
	require.False(t, p.Solved())
}

func TestPushPanicsOnBadPrecondition(t *testing.T) {
	_, p := mustBoard(t, s1Level)
	require.Panics(t, func() {
		p.Push(0, board.Left) // a Left push needs the player right of the box; it stands left of it
	})
}

func TestCorralForcerDetected(t *testing.T) {
	// a single doorway between two rooms is an articulation point.
	level := "" +
		"#######\n" +
		"#@$#  #\n" +
		"#  .  #\n" +
		"#  #  #\n" +
		"#######"
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	// New requires box count == goal count; the single box above keeps
	// it satisfied while leaving the rest of the topology untouched.
	d.Player = 1*7 + 1
	b, err := board.New(d)
	require.NoError(t, err)
	door := 2*7 + 3 // the goal square sits in the one-square doorway
	require.True(t, b.IsCorralForcer[door])
}

type stateSnapshot struct {
	boxes        string
	player       int
	boxesOnGoals int
	moves        int
	pushes       int
}

func snapshot(p *board.Position) stateSnapshot {
	s := stateSnapshot{player: p.PlayerSquare, boxesOnGoals: p.BoxesOnGoals, moves: p.MovesCount, pushes: p.PushesCount}
	for _, b := range p.BoxSquares {
		s.boxes += string(rune(b)) + ","
	}
	return s
}

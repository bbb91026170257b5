package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/distance"
	"github.com/katalvlaran/sokosolve/search"
	"github.com/stretchr/testify/require"
)

func buildBoard(t *testing.T, level string) (*board.Board, board.Descriptor, *distance.Tables) {
	t.Helper()
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)
	tbl := distance.Build(b)
	b.ApplySimpleDeadlocks(tbl.IsUnreachable)
	return b, d, tbl
}

func directionFromByte(ch byte) (board.Direction, bool) {
	switch ch {
	case 'l', 'L':
		return board.Left, true
	case 'u', 'U':
		return board.Up, true
	case 'd', 'D':
		return board.Down, true
	case 'r', 'R':
		return board.Right, true
	default:
		return 0, false
	}
}

// replay walks solution against a fresh position built from (boxes,
// player), checking every step is legal on its own terms rather than
// trusting Push's panic-on-violation behaviour, and returns the final
// position for the caller to assert on.
func replay(t *testing.T, b *board.Board, boxes []int, player int, solution string) *board.Position {
	t.Helper()
	pos := board.NewPosition(b, boxes, player)
	for i := 0; i < len(solution); i++ {
		ch := solution[i]
		dir, ok := directionFromByte(ch)
		require.True(t, ok, "letter %q at offset %d is not a move/push direction", ch, i)

		if ch >= 'A' && ch <= 'Z' {
			boxSquare := b.Neighbour(pos.PlayerSquare, dir)
			require.NotEqual(t, board.NoSquare, boxSquare, "push at offset %d walks off the board", i)
			idx := pos.BoxIndexAt(boxSquare)
			require.GreaterOrEqual(t, idx, 0, "push at offset %d has no box ahead of the player", i)
			dest := b.Neighbour(boxSquare, dir)
			require.NotEqual(t, board.NoSquare, dest, "push at offset %d shoves a box off the board", i)
			require.True(t, pos.IsAccessible(dest), "push at offset %d targets a blocked square", i)
			pos.Push(idx, dir)
			continue
		}

		dest := b.Neighbour(pos.PlayerSquare, dir)
		require.NotEqual(t, board.NoSquare, dest, "move at offset %d walks off the board", i)
		require.True(t, pos.IsAccessible(dest), "move at offset %d walks into a blocked square", i)
		pos.PlayerSquare = dest
		pos.MovesCount++
	}
	return pos
}

// TestSolutionReplaysToASolvedPosition covers solution verifiability:
// every returned solution string must replay, one legal move/push at a
// time, to a position with every box on a goal.
func TestSolutionReplaysToASolvedPosition(t *testing.T) {
	level := "" +
		"#####\n" +
		"#@$.#\n" +
		"#####"
	b, d, tbl := buildBoard(t, level)
	driver, err := search.NewDriver(b, tbl)
	require.NoError(t, err)

	res := driver.Run(context.Background(), search.PUSH, d.Boxes, d.Player, 0)
	require.Equal(t, search.StatusSolved, res.Status)
	require.NotEmpty(t, res.Solution)

	final := replay(t, b, d.Boxes, d.Player, res.Solution)
	require.True(t, final.Solved())
}

// TestVariantsAgreeOnAUniqueOptimum runs all four variants over a
// corridor with exactly one viable push sequence, so every variant must
// independently converge on the same pushes/moves count — the
// non-strict ordering invariant (PUSH <= PushMoves <= ANY on pushes,
// MovesPushes <= PushMoves on moves) holds as equality here, which is a
// valid instance of "<=" rather than a vacuous check.
func TestVariantsAgreeOnAUniqueOptimum(t *testing.T) {
	level := "" +
		"########\n" +
		"#@  $ .#\n" +
		"########"
	b, d, tbl := buildBoard(t, level)

	variants := []search.Variant{search.PUSH, search.PushMoves, search.ANY, search.MovesPushes}
	var pushCounts, moveCounts []int
	for _, v := range variants {
		driver, err := search.NewDriver(b, tbl)
		require.NoError(t, err)
		res := driver.Run(context.Background(), v, d.Boxes, d.Player, 0)
		require.Equalf(t, search.StatusSolved, res.Status, "variant %s", v)

		final := replay(t, b, d.Boxes, d.Player, res.Solution)
		require.Truef(t, final.Solved(), "variant %s", v)
		require.Equalf(t, "rrRR", res.Solution, "variant %s", v)

		pushCounts = append(pushCounts, final.PushesCount)
		moveCounts = append(moveCounts, final.MovesCount)
	}

	for i := range pushCounts {
		require.Equal(t, 2, pushCounts[i])
		require.Equal(t, 4, moveCounts[i])
	}
}

// TestCancellationStopsPromptly covers cancellation liveness: a
// pre-cancelled context must stop the search before any expansion, on
// a board that is neither trivially solved nor trivially unsolvable (so
// the suspension check inside the main loop is what actually fires).
func TestCancellationStopsPromptly(t *testing.T) {
	level := "" +
		"#####\n" +
		"#@$.#\n" +
		"#####"
	b, d, tbl := buildBoard(t, level)
	driver, err := search.NewDriver(b, tbl)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan search.Result, 1)
	go func() {
		done <- driver.Run(ctx, search.PUSH, d.Boxes, d.Player, 0)
	}()

	select {
	case res := <-done:
		require.Equal(t, search.StatusCancelled, res.Status)
		require.Equal(t, 0, res.Visited)
		require.Equal(t, 0, res.Expanded)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled search did not return promptly")
	}
}

package lowerbound_test

import (
	"testing"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/distance"
	"github.com/katalvlaran/sokosolve/lowerbound"
	"github.com/stretchr/testify/require"
)

func TestSolveAvoidsCrossedAssignment(t *testing.T) {
	// Goal, box, box, goal in a row: the inner box is one push from its
	// near goal and two from the far one, so pairing each box with its
	// near goal (cost 1+1=2) beats crossing them (cost 2+2=4).
	level := "" +
		"######\n" +
		"#@   #\n" +
		"#.$$.#\n" +
		"######"
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)

	tbl := distance.Build(b)
	res := lowerbound.Solve(tbl, d.Boxes)
	require.False(t, res.Deadlock)
	require.Equal(t, 2, res.Pushes, "each box should pair with its nearer goal")
	require.Len(t, res.Assignment, 2)
}

func TestSolveReportsDeadlockWhenGoalUnreachable(t *testing.T) {
	level := "" +
		"#####\n" +
		"#.@ #\n" +
		"#  $#\n" +
		"#####"
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)

	tbl := distance.Build(b)
	res := lowerbound.Solve(tbl, d.Boxes)
	require.True(t, res.Deadlock, "the only box sits in a corner no goal can reach")
}

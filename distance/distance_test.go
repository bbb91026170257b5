package distance_test

import (
	"testing"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/distance"
	"github.com/stretchr/testify/require"
)

func TestToGoalMatchesHandCount(t *testing.T) {
	level := "" +
		"#######\n" +
		"#@$  .#\n" +
		"#######"
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)

	tbl := distance.Build(b)
	box := d.Boxes[0]
	require.Equal(t, 3, tbl.ToGoal(0, box), "three pushes right to reach the goal")
	require.False(t, tbl.IsUnreachable(box))
}

func TestUnreachableBehindDeadCorner(t *testing.T) {
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
	box := d.Boxes[0]
	require.True(t, tbl.IsUnreachable(box), "box sits in a corner with no pushable path to any goal")
}

package reach_test

import (
	"testing"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/reach"
	"github.com/stretchr/testify/require"
)

func TestFloodRespectsWallsAndBoxes(t *testing.T) {
	level := "" +
		"#####\n" +
		"#@$.#\n" +
		"#####"
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)
	p := board.NewPosition(b, d.Boxes, d.Player)

	r := reach.FromPosition(p)
	require.True(t, r.Contains(d.Player))
	require.False(t, r.Contains(d.Goals[0]), "goal is past the box, unreachable while boxes block")

	r2 := reach.FromPosition(p, reach.IgnoringBoxes())
	require.True(t, r2.Contains(d.Goals[0]), "ignoring boxes reveals the goal is topologically reachable")
}

func TestFloodDistances(t *testing.T) {
	level := "" +
		"########\n" +
		"#@     #\n" +
		"########"
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)
	p := board.NewPosition(b, d.Boxes, d.Player)

	r := reach.FromPosition(p)
	require.Equal(t, 0, r.DistanceTo(d.Player))
	require.Equal(t, 5, r.DistanceTo(d.Player+5))
}

func TestPathWalksShortestRoute(t *testing.T) {
	level := "" +
		"########\n" +
		"#@     #\n" +
		"########"
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)
	p := board.NewPosition(b, d.Boxes, d.Player)

	r := reach.FromPosition(p)
	target := d.Player + 5
	steps := reach.Path(b, r, target)
	require.Len(t, steps, 5)
	for _, s := range steps {
		require.Equal(t, board.Right, s)
	}

	cur := d.Player
	for _, s := range steps {
		cur = b.Neighbour(cur, s)
	}
	require.Equal(t, target, cur)
}

func TestPathNilWhenUnreached(t *testing.T) {
	level := "" +
		"#####\n" +
		"#@$.#\n" +
		"#####"
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)
	p := board.NewPosition(b, d.Boxes, d.Player)

	r := reach.FromPosition(p)
	require.Nil(t, reach.Path(b, r, d.Goals[0]))
}

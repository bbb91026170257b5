package tunnel_test

import (
	"testing"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/tunnel"
	"github.com/stretchr/testify/require"
)

func TestInTunnelInsideOneWideCorridor(t *testing.T) {
	level := "#####\n#@$.#\n#####"
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)
	p := board.NewPosition(b, d.Boxes, d.Player)

	require.True(t, tunnel.InTunnel(p, d.Boxes[0], board.Right))
}

func TestNotInTunnelInsideOpenRoom(t *testing.T) {
	level := "" +
		"#####\n" +
		"#   #\n" +
		"#@$.#\n" +
		"#   #\n" +
		"#####"
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)
	p := board.NewPosition(b, d.Boxes, d.Player)

	require.False(t, tunnel.InTunnel(p, d.Boxes[0], board.Right))
}

func TestNotInTunnelWhenBoxOnGoal(t *testing.T) {
	level := "#####\n#@ *#\n#####"
	d, err := board.ParseASCII(level)
	require.NoError(t, err)
	b, err := board.New(d)
	require.NoError(t, err)
	p := board.NewPosition(b, d.Boxes, d.Player)

	// The box sits on its goal square here (marked '*'); InTunnel must
	// refuse regardless of the surrounding corridor shape.
	require.False(t, tunnel.InTunnel(p, d.Boxes[0], board.Right))
}

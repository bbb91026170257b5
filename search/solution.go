package search

import (
	"strings"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/reach"
	"github.com/katalvlaran/sokosolve/ttable"
)

// reconstructSolution replays the chain from leaf's root down to leaf,
// walking the player to behind each pushed box and emitting one letter
// per step: lowercase for a move, uppercase for a push.
func reconstructSolution(b *board.Board, leaf *ttable.Record) string {
	chain := []*ttable.Record{leaf}
	for cur := leaf; cur.Parent != nil; cur = cur.Parent {
		chain = append(chain, cur.Parent)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	root := chain[0]
	pos := board.NewPosition(b, root.BoxSquares, root.PlayerSquare)

	var sb strings.Builder
	for _, rec := range chain[1:] {
		oldBox := pos.BoxSquares[rec.PushedBox]
		behind := b.Neighbour(oldBox, rec.Direction.Opposite())
		region := reach.FromPosition(pos)
		for _, step := range reach.Path(b, region, behind) {
			sb.WriteString(step.String())
		}
		sb.WriteString(strings.ToUpper(rec.Direction.String()))
		pos.PlayerSquare = behind
		pos.Push(rec.PushedBox, rec.Direction)
	}

	return sb.String()
}

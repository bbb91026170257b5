package sokosolve_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/sokosolve"
	"github.com/katalvlaran/sokosolve/board"
	"github.com/stretchr/testify/require"
)

// Example_solve runs the PUSH variant over a one-push board and prints
// the resulting solution string.
func Example_solve() {
	d, err := board.ParseASCII("" +
		"#####\n" +
		"#@$.#\n" +
		"#####")
	if err != nil {
		panic(err)
	}

	outcome, err := sokosolve.Solve(context.Background(), d, sokosolve.Request{Variant: sokosolve.PUSH})
	if err != nil {
		panic(err)
	}
	fmt.Println(outcome.Status, outcome.Solution)
	// Output: solved R
}

// TestSolveRejectsMalformedDescriptor covers the error path: a
// descriptor with mismatched box/goal counts is Invalid Input, so
// Solve reports it via error rather than Outcome.Status.
func TestSolveRejectsMalformedDescriptor(t *testing.T) {
	d := board.Descriptor{
		Width:  3,
		Height: 1,
		Kinds:  []board.SquareKind{board.Floor, board.Floor, board.Floor},
		Boxes:  []int{0},
		Goals:  nil,
		Player: 1,
	}

	_, err := sokosolve.Solve(context.Background(), d, sokosolve.Request{Variant: sokosolve.PUSH})
	require.True(t, errors.Is(err, board.ErrBoxGoalMismatch))
}

// TestSolveReportsUnsolvableViaStatusNotError covers the classification
// boundary: a trivially unsolvable board is a valid descriptor, so it
// must come back as a nil error with Outcome.Status set, never as an
// error.
func TestSolveReportsUnsolvableViaStatusNotError(t *testing.T) {
	d, err := board.ParseASCII("" +
		"####\n" +
		"#$ #\n" +
		"#@.#\n" +
		"####")
	require.NoError(t, err)

	outcome, err := sokosolve.Solve(context.Background(), d, sokosolve.Request{Variant: sokosolve.PUSH})
	require.NoError(t, err)
	require.Equal(t, sokosolve.StatusUnsolvable, outcome.Status)
}

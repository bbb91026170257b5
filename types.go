// Package sokosolve is the public facade over the Sokoban search
// engine: one entry point, Solve, that validates a board descriptor,
// checks for a trivial deadlock or an already-solved start, and
// otherwise runs the requested search variant to completion.
package sokosolve

import (
	"time"

	"github.com/katalvlaran/sokosolve/board"
	"github.com/katalvlaran/sokosolve/search"
)

// Descriptor is the external board shape.
type Descriptor = board.Descriptor

// Variant selects one of the four search strategies.
type Variant = search.Variant

const (
	ANY         = search.ANY
	PUSH        = search.PUSH
	PushMoves   = search.PushMoves
	MovesPushes = search.MovesPushes
)

// Status is the terminal state of a Solve call.
type Status = search.Status

const (
	StatusSolved      = search.StatusSolved
	StatusUnsolvable  = search.StatusUnsolvable
	StatusCancelled   = search.StatusCancelled
	StatusTimeout     = search.StatusTimeout
	StatusOutOfMemory = search.StatusOutOfMemory
)

// Request is the search configuration a caller supplies to Solve.
type Request struct {
	Variant   Variant
	TimeLimit time.Duration // optional, 0 = no limit
	MaxBytes  uint64        // RAM threshold field; Solve does not read it, so it triggers no out-of-memory check
}

// Outcome is what Solve returns on success or any terminal condition
// other than invalid input (which is reported via error instead).
type Outcome struct {
	Status   Status
	Solution string
	Visited  int
	Expanded int
}

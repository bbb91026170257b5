// Command sokosolve reads a classic Sokoban ASCII level from stdin (or
// a file given with -level) and prints the solution found by the
// requested search variant.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/sokosolve"
	"github.com/katalvlaran/sokosolve/board"
)

var (
	levelPath = flag.String("level", "", "path to an ASCII level file; defaults to stdin")
	variant   = flag.String("variant", "push", "search variant: any | push | push-moves | moves-pushes")
	timeLimit = flag.Duration("timeout", 0, "wall-clock search budget, 0 = unlimited")
)

func main() {
	flag.Parse()

	raw, err := readLevel(*levelPath)
	if err != nil {
		log.Fatalf("sokosolve: %v", err)
	}

	d, err := board.ParseASCII(string(raw))
	if err != nil {
		log.Fatalf("sokosolve: %v", err)
	}

	v, err := parseVariant(*variant)
	if err != nil {
		log.Fatalf("sokosolve: %v", err)
	}

	outcome, err := sokosolve.Solve(context.Background(), d, sokosolve.Request{
		Variant:   v,
		TimeLimit: *timeLimit,
	})
	if err != nil {
		log.Fatalf("sokosolve: invalid level: %v", err)
	}

	fmt.Printf("status:   %s\n", outcome.Status)
	fmt.Printf("solution: %s\n", outcome.Solution)
	fmt.Printf("visited:  %d\n", outcome.Visited)
	fmt.Printf("expanded: %d\n", outcome.Expanded)
}

func readLevel(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func parseVariant(s string) (sokosolve.Variant, error) {
	switch s {
	case "any":
		return sokosolve.ANY, nil
	case "push":
		return sokosolve.PUSH, nil
	case "push-moves":
		return sokosolve.PushMoves, nil
	case "moves-pushes":
		return sokosolve.MovesPushes, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", s)
	}
}

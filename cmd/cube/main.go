// Command cube is a thin CLI facade over the solver and scramble
// packages: it parses flags, calls one package function, and prints
// the result. No algorithmic logic lives here.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/twophase/cube/cubie"
	"github.com/twophase/cube/facelet"
	"github.com/twophase/cube/scramble"
	"github.com/twophase/cube/solver"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "solve":
		err = runSolve(os.Args[2:])
	case "scramble":
		err = runScramble(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "cube:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cube solve --facelet <S> [-m N] [-t ms] [-p]")
	fmt.Fprintln(os.Stderr, "       cube scramble")
}

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	facelets := fs.String("facelet", "", "54-character facelet string")
	maxMoves := fs.Int("m", 20, "maximum move count")
	timeoutMs := fs.Int("t", 10000, "timeout in milliseconds")
	progress := fs.Bool("p", false, "print progress")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *facelets == "" {
		return fmt.Errorf("--facelet is required")
	}

	if *progress {
		fmt.Fprintln(os.Stderr, "solving", *facelets)
	}

	res, err := solver.Solve(*facelets,
		solver.WithMaxMoves(*maxMoves),
		solver.WithTimeout(time.Duration(*timeoutMs)*time.Millisecond),
	)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", formatMoves(res.Moves))
	fmt.Printf("move_count=%d status=%s solve_time=%s\n", res.MoveCount, res.Status, res.SolveTime)
	return nil
}

func runScramble(args []string) error {
	fs := flag.NewFlagSet("scramble", flag.ContinueOnError)
	n := fs.Int("n", scramble.DefaultMoves, "number of moves")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, moves, err := scramble.Generate(*n)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", formatMoves(moves))
	fmt.Printf("%s\n", facelet.FromCubie(&c).String())
	return nil
}

func formatMoves(moves []cubie.Move) string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return strings.Join(names, " ")
}

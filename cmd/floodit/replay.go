package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floodit/internal/games/floodit"
)

var flagMoves string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a board and move list without a terminal UI",
	Long: `Generate the board for --seed, play the palette slots given by --moves
(1-6, the same numbers as the paint keys) and print the resulting board.

Each cell is printed as its color index (0-5); the status line shows the
moves left and the outcome.

Examples:
  floodit replay --seed 42
  floodit replay --seed 42 --moves 2,5,1,3`,
	Args: cobra.NoArgs,
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Comma separated palette slots, e.g. 1,4,6")
}

func runReplay(cmd *cobra.Command, args []string) {
	moves, err := floodit.ParseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, err := floodit.Replay(flagSeed, moves)
	fmt.Printf("seed %d\n", flagSeed)
	fmt.Println(floodit.RenderASCII(g))

	if err != nil {
		if errors.Is(err, floodit.ErrGameFinished) {
			fmt.Fprintf(os.Stderr, "Warning: %v, remaining moves ignored\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

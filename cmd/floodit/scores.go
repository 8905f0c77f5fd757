package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/floodit/internal/games/floodit"
	"github.com/vovakirdan/floodit/internal/platform/tui"
	"github.com/vovakirdan/floodit/internal/registry"
	"github.com/vovakirdan/floodit/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best results",
	Long: `Display the ten best results: cleared boards first, fewest moves first.

Examples:
  floodit scores
  floodit scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a table view")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := floodit.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	title, ok := registry.Title(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'floodit list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	results, err := store.TopResults(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	fmt.Printf("Best Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'floodit play %s' to set the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-20s  %s\n", "Rank", "Result", "Moves", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-20s  %s\n", "----", "------", "-----", "----", "----")
	for i, r := range results {
		outcome := "over"
		if r.Cleared {
			outcome = "CLEAR"
		}
		fmt.Printf("  %-4d  %-6s  %-5d  %-20d  %s\n", i+1, outcome, r.Moves, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if st, err := store.Stats(gameID); err == nil && st.Played > 0 {
		fmt.Printf("Played %d, cleared %d (%.0f%%)", st.Played, st.Cleared, st.ClearRate()*100)
		if st.Cleared > 0 {
			fmt.Printf(", best %d moves", st.BestMoves)
		}
		fmt.Println()
	}
}

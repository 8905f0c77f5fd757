package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/floodit/internal/registry"
	"github.com/vovakirdan/floodit/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games in this build with how often each was played and cleared.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Stats are optional; a missing database just leaves the columns empty
	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err == nil {
		store = s
		defer store.Close()
	}

	fmt.Println(gameTable(games, store))
	fmt.Println()
	fmt.Println("Run 'floodit play <id>' to play a game.")
}

// gameTable renders one row per game. store may be nil.
func gameTable(games []registry.GameInfo, store *storage.Store) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Played", "Cleared").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, g := range games {
		played, cleared := "-", "-"
		if store != nil {
			if st, err := store.Stats(g.ID); err == nil {
				played = strconv.Itoa(st.Played)
				cleared = strconv.Itoa(st.Cleared)
			}
		}
		t.Row(g.ID, g.Title, played, cleared)
	}
	return t.String()
}

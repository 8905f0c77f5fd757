package floodit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/floodit/internal/games/floodit/engine"
)

// ErrGameFinished is returned when a replay has moves left after the game ended.
var ErrGameFinished = errors.New("floodit: game already finished")

// ParseMoves parses a comma separated list of 1-based palette slots ("1,4,2")
// into engine colors.
func ParseMoves(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	moves := make([]int, 0, len(parts))
	for i, p := range parts {
		slot, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("floodit: move %d: %w", i+1, err)
		}
		if slot < 1 || slot > engine.ColorCount {
			return nil, fmt.Errorf("floodit: move %d: slot %d out of range 1-%d", i+1, slot, engine.ColorCount)
		}
		moves = append(moves, slot-1)
	}
	return moves, nil
}

// Replay plays moves on a fresh game created from seed, letting every reveal
// wave finish before the next move. Moves equal to the current anchor color are
// rejected by the engine and cost nothing, as in live play.
func Replay(seed int64, moves []int) (*engine.Game, error) {
	g := engine.New(seed)
	for i, color := range moves {
		if g.IsTerminal() {
			return g, fmt.Errorf("move %d: %w", i+1, ErrGameFinished)
		}
		if color < 0 || color >= engine.ColorCount {
			return g, fmt.Errorf("floodit: move %d: color %d out of range", i+1, color)
		}
		g.Update(engine.Paint(color))
		g.Settle()
	}
	return g, nil
}

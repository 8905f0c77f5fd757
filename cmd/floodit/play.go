package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/floodit/internal/audio"
	"github.com/vovakirdan/floodit/internal/config"
	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/floodit"
	"github.com/vovakirdan/floodit/internal/games/floodit/engine"
	"github.com/vovakirdan/floodit/internal/platform/tui"
	"github.com/vovakirdan/floodit/internal/registry"
	"github.com/vovakirdan/floodit/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without an argument the Flood-It puzzle starts.

Controls:
  1-6          - Paint the board with a palette color
  Arrows/WASD  - Move the palette cursor
  Enter/Space  - Paint the color under the cursor
  Mouse        - Hover and click palette buttons
  R / click    - New board (after the game ends)
  Ctrl+S       - Save a text screenshot
  Q/Esc        - Quit

Examples:
  floodit play
  floodit play --seed 1234
  floodit play --config ./my-floodit.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := floodit.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'floodit list' to see available games.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: appConfig.TickRate,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	theme := tui.ThemeByName(appConfig.Theme)
	opts := tui.Options{
		Theme:  theme,
		Logger: log.Default(),
	}

	player, closeAudio := openAudio(appConfig.Audio)
	opts.Player = player

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		log.Warn("could not open results database", "error", err)
		// Continue without storage - game still works
	} else {
		opts.Store = store
	}

	runErr := tui.Run(game, cfg, opts)

	closeAudio()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openAudio prepares the sound bank. Any failure degrades to silent play.
func openAudio(ac config.AudioConfig) (audio.Player, func()) {
	if !ac.Enabled {
		return audio.Nop{}, func() {}
	}

	bank, err := audio.NewSoundBank(audio.Options{
		Volume:   ac.MasterVolume,
		SoundDir: config.ExpandHome(ac.SoundDir),
		Logger:   log.Default(),
	}, engine.SoundRejected, engine.SoundCleared, engine.SoundOver)
	if err != nil {
		log.Warn("sound bank unavailable", "error", err)
		return audio.Nop{}, func() {}
	}

	if err := bank.Init(); err != nil {
		log.Warn("no audio device, playing silently", "error", err)
		return audio.Nop{}, func() {}
	}
	return bank, bank.Close
}

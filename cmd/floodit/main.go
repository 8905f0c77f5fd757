// floodit is a terminal Flood-It puzzle: repaint the corner region until the
// whole board is one color, within 25 moves.
//
// Usage:
//
//	floodit play             - Play in this terminal
//	floodit list             - List available games
//	floodit scores           - Show best results
//	floodit replay           - Replay a move list headlessly
//	floodit serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default from config: 30)
//	--seed <value>      - Set RNG seed for a reproducible board
//	--db <path>         - Set database path (default: ~/.floodit/scores.db)
//	--config <path>     - Use a specific config file
//	--log-level <lvl>   - Override the configured log level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/floodit/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/floodit/internal/games/floodit"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// appConfig is loaded once before any subcommand runs.
	appConfig config.FloodItConfig

	// logFile is the open log destination for interactive play, if any.
	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floodit",
	Short: "Flood-It - repaint the board to a single color",
	Long: `Flood-It is a terminal puzzle. Each move repaints the region connected
to the top-left cell; clear the 14x14 board to one color in 25 moves.

Available commands:
  play     - Play in this terminal
  list     - Show all available games
  scores   - View best results
  replay   - Replay a seed and move list without a terminal UI
  serve    - Start SSH server for remote play

Examples:
  floodit play
  floodit play --seed 42
  floodit replay --seed 42 --moves 2,5,1,3
  floodit serve --ssh :2222
  floodit scores`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.floodit/scores.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file, applies flag overrides and sets up logging.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg

	// Full-screen commands hand the terminal to Bubble Tea and log to a file
	fullScreen := cmd == playCmd || (cmd == scoresCmd && flagInteractive)
	return setupLogger(cfg.Log, !fullScreen)
}

// setupLogger configures the default logger.
func setupLogger(lc config.LogConfig, toStderr bool) error {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	if toStderr {
		log.SetOutput(os.Stderr)
		return nil
	}

	if lc.File == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	path := config.ExpandHome(lc.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	log.SetOutput(f)
	return nil
}

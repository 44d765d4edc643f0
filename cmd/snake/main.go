// snake is a terminal snake game with timed power-ups, wall modes, rankings
// and an SSH server for remote play.
//
// Usage:
//
//	snake play               - Play immediately with the configured settings
//	snake menu               - Interactive menu (settings, play, rankings)
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show the leaderboard
//	snake profile            - Show a player's totals, missions and achievements
//	snake config show|init   - Inspect or write the settings file
//
// Global flags:
//
//	--config <path>  - Settings YAML (default search: ~/.arcade/configs, ./configs)
//	--seed <value>   - RNG seed for reproducible sessions
//	--db <path>      - Database path (default: ~/.arcade/snake.db)
//	--player <name>  - Name used for rankings
//	--log <path>     - Write a debug log to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagPlayer  string
	flagLogPath string
	flagFPS     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal snake game with items, timed power-ups and
three wall modes: classic walls, wrap-around and obstacles.

Items:
  *  apple       +10, grows by one
  $  bonus       +50, grows by two, disappears after 5s
  X  bomb        kills you unless you are invincible
  ~  slow        +20, slows the game down for 5s
  +  invincible  +30, ignore bombs, obstacles and your own tail for 5s

Available commands:
  play     - Play directly with the configured settings
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  profile  - View player totals, missions and achievements
  config   - Show or write the settings file

Examples:
  snake play --wall wrap --speed fast
  snake menu
  snake serve --ssh :2222
  snake scores --mode obstacles`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to rankings database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for rankings (default from settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings loads the settings file and applies the global overrides.
func loadSettings() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagPlayer != "" {
		cfg.Player = flagPlayer
	}
	return cfg, nil
}

// runtimeConfig returns the host settings for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultRuntimeConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.FrameRate = flagFPS
	return rt
}

// openStore opens the rankings database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rankings database: %v\n", err)
		return nil
	}
	return store
}

// newLogger returns a debug logger writing to --log, or one that discards.
// The alternate screen owns stdout, so interactive commands never log there.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagWall     string
	flagSpeed    string
	flagWidth    int
	flagHeight   int
	flagTickRate int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game immediately with the configured settings.

Controls:
  Arrows/WASD/HJKL  - Turn
  P/Space           - Pause
  R                 - Restart (after game over)
  Esc/B             - Pause, then leave
  Ctrl+S            - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C          - Quit

Wall modes:
  normal     - Leaving the grid ends the game
  wrap       - Leaving the grid enters from the opposite edge
  obstacles  - Normal walls plus static blocks

Speed presets:
  slow (6/s), normal (10/s), fast (15/s), insane (22/s)

Examples:
  snake play
  snake play --wall wrap
  snake play --wall obstacles --speed fast
  snake play --width 40 --height 25 --seed 1234
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagWall, "wall", "", "Wall mode: normal, wrap, obstacles")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, insane")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in cells")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells")
	playCmd.Flags().IntVar(&flagTickRate, "tick-rate", 0, "Moves per second (overrides --speed)")
}

// applyPlayFlags overrides settings with the play flags that were given.
func applyPlayFlags(cfg *config.SnakeConfig) error {
	if flagWall != "" {
		cfg.WallMode = flagWall
	}
	if err := config.ApplySpeedPreset(cfg, config.SpeedPreset(flagSpeed)); err != nil {
		return err
	}
	if flagTickRate > 0 {
		cfg.TickRate = flagTickRate
	}
	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}
	return cfg.Validate()
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyPlayFlags(&settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := runtimeConfig()
	needW, needH := snake.MinScreenSize(settings.Grid.Width, settings.Grid.Height)
	if rt.ScreenW < needW || rt.ScreenH < needH+1 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, a %dx%d grid needs %dx%d\n",
			rt.ScreenW, rt.ScreenH, settings.Grid.Width, settings.Grid.Height, needW, needH+1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := playThenMenu(tui.GameOptions{
		Settings: settings,
		Player:   settings.Player,
		Runtime:  rt,
		Store:    store,
		Logger:   logger,
	})

	// Close resources before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// Program runners, replaced in tests.
var (
	runGame        = tui.Run
	runMenuSession = tui.RunSession
)

// playThenMenu plays until the player leaves the game. Backing out of it
// opens the menu with the same settings instead of exiting.
func playThenMenu(opts tui.GameOptions) error {
	back, err := runGame(opts)
	if err != nil || !back {
		return err
	}
	_, err = runMenuSession(opts.Store, opts.Settings, opts.Runtime, opts.Player, opts.Logger)
	return err
}

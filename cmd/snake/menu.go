package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagSave bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start the game in interactive menu mode.

Pick the wall mode and speed, play, and browse the rankings. After a game
ends you return to the menu to play again.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change the selected option
  Enter/Space     - Select
  Tab             - Rankings
  Q               - Quit

Examples:
  snake menu
  snake menu --player alice
  snake menu --save        # Keep the chosen wall mode and speed`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagSave, "save", false, "Save settings changed in the menu to the user config")
}

func runMenu(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	chosen, runErr := tui.RunSession(store, settings, runtimeConfig(), settings.Player, logger)

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", runErr)
		os.Exit(1)
	}

	if flagSave && chosen != settings {
		path := flagConfig
		if path == "" {
			path = config.UserConfigPath()
		}
		if err := config.SaveSnake(path, chosen); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Settings saved to %s\n", path)
	}
}

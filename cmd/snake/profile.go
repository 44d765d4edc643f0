package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/missions"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show a player's totals, missions and achievements",
	Long: `Shows lifetime totals, mission progress and unlocked achievements.
The player defaults to the name in the settings file.

Examples:
  snake profile
  snake profile --player alice`,
	Args: cobra.NoArgs,
	Run:  runProfile,
}

func runProfile(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	player := settings.Player

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rankings database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	p, err := store.Profile(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ms, err := store.Missions(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	achs, err := store.Achievements(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Profile - %s\n", player)
	fmt.Println()
	fmt.Printf("  Games played:  %d\n", p.GamesPlayed)
	fmt.Printf("  High score:    %d\n", p.HighScore)
	fmt.Printf("  Total score:   %d\n", p.TotalScore)
	if !p.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", p.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Missions:")
	for _, m := range ms {
		mark := " "
		if m.Completed {
			mark = "x"
		}
		daily := ""
		if m.Daily {
			daily = " (daily)"
		}
		fmt.Printf("  [%s] %-16s %4d/%-4d %s%s\n", mark, m.Title, min(m.Current, m.Target), m.Target, m.Description, daily)
	}
	fmt.Printf("  Rewards earned: %d\n", missions.CompletedReward(ms))

	fmt.Println()
	fmt.Println("Achievements:")
	for _, a := range achs {
		if a.Unlocked {
			fmt.Printf("  [x] %-14s %s (%s)\n", a.Title, a.Description, a.UnlockedAt.Local().Format("2006-01-02"))
		} else {
			fmt.Printf("  [ ] %-14s %s\n", a.Title, a.Description)
		}
	}
}

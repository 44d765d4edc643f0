package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagMode  string
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top games, optionally for one wall mode only.

Examples:
  snake scores
  snake scores --mode wrap
  snake scores --limit 25
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagMode, "mode", "", "Only show one wall mode: normal, wrap, obstacles")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.RankingLimit, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every ranking")
}

func runScores(_ *cobra.Command, _ []string) {
	title := "All modes"
	if flagMode != "" {
		mode, err := core.ParseWallMode(flagMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		flagMode = mode.String()
		title = mode.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rankings database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRankings(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rankings: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Rankings cleared.")
		return
	}

	rankings, err := store.TopRankings(flagMode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rankings: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(rankings) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-9s  %-8s  %s\n", "Rank", "Player", "Score", "Length", "Mode", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-9s  %-8s  %s\n", "----", "------", "-----", "------", "----", "----", "----")

	for i, r := range rankings {
		fmt.Printf("  %-4d  %-12s  %-6d  %-6d  %-9s  %-8s  %s\n",
			i+1, r.Player, r.Score, r.Length, r.WallMode,
			r.Duration.Round(time.Second).String(), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best overall: %d\n", best)
	}
}

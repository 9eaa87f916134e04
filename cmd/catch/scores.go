package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/square-catch/internal/platform/tui"
	"github.com/vovakirdan/square-catch/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagStats  bool
	flagTUI    bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best scores, optionally for a single player.

Examples:
  catch scores
  catch scores --limit 20
  catch scores --limit 0
  catch scores --player ann --stats
  catch scores --tui
  catch scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 5, "Number of scores to show (0 = all)")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show this player's rounds")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show round statistics")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse the leaderboard interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded round")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	if flagTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunLeaderboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	switch {
	case flagLimit <= 0:
		scores, err = store.AllScores()
		if flagPlayer != "" {
			scores = slices.DeleteFunc(scores, func(e storage.ScoreEntry) bool {
				return e.Name != flagPlayer
			})
		}
	case flagPlayer != "":
		scores, err = store.TopScoresFor(flagPlayer, flagLimit)
	default:
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	title := "Leaderboard"
	if flagPlayer != "" {
		title = "Leaderboard - " + flagPlayer
	}
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'catch' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "----", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6d  %s\n", i+1, entry.Name, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best overall: %d\n", highScore)
	}

	if !flagStats {
		return
	}

	stats, err := store.GetStats(flagPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Printf("Rounds played: %d\n", stats.Rounds)
	fmt.Printf("Best:          %d\n", stats.HighScore)
	fmt.Printf("Average:       %.1f\n", stats.AvgScore)
	fmt.Printf("Total:         %d\n", stats.TotalScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

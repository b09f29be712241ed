package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze/internal/platform/tui"
	"github.com/vovakirdan/maze/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print run history",
	Long: `Display the best runs and aggregate statistics.

Examples:
  maze scores
  maze scores --recent --limit 20
  maze scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open run database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	var runs []storage.RunEntry
	heading := "Best Runs"
	if flagRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - Maze\n", heading)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'maze play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-5s  %-8s  %s\n", "#", "Result", "Score", "Kills", "Shots", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-5s  %-8s  %s\n", "-", "------", "-----", "-----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6s  %-6d  %-5d  %-5d  %-8s  %s\n",
			i+1, r.Outcome, r.Score, r.Kills, r.Shots,
			tui.FormatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Won: %d  Lost: %d  Quit: %d\n", stats.Runs, stats.Wins, stats.Losses, stats.Quits)
	fmt.Printf("Best: %d  Average: %.0f  Kills: %d\n", stats.HighScore, stats.AvgScore, stats.TotalKills)
	if stats.BestWin > 0 {
		fmt.Printf("Fastest win: %s\n", tui.FormatDuration(stats.BestWin))
	}
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Local().Format(time.DateTime))
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paper-plane/internal/registry"
	"github.com/vovakirdan/paper-plane/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the flight log of a variant",
	Long: `Display the best recorded runs of a variant, the campaign by default.

Examples:
  paperplane scores
  paperplane scores paperplane_timed --limit 25
  paperplane scores --all
  paperplane scores paperplane_timed --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the flight log of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "paperplane"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'paperplane list' to see them", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Flight log of %s cleared.\n", game.Title())
		return nil
	}

	limit := flagScoresLimit
	if flagScoresAll {
		limit = 0
	}
	return printScores(os.Stdout, store, gameID, game.Title(), limit)
}

// printScores writes the flight log of a variant. A limit of zero or less
// lists every run.
func printScores(w io.Writer, store *storage.Store, gameID, title string, limit int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if limit > 0 {
		scores, err = store.TopScores(gameID, limit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Flight Log - %s\n", title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No flights recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Run 'paperplane play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-7s  %-5s  %s\n", "Rank", "Pilot", "Score", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-7s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10s  %-7d  %-5d  %s\n",
			i+1, entry.Player, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Fprintf(w, "Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(w, "Flights: %d  Furthest level: %d\n", stats.GamesCount, stats.BestLevel)
	}
	return nil
}

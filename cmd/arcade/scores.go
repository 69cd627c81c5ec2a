package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagScoresLimit   int
	flagScoresPlayers bool
	flagScoresClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Examples:
  arcade scores flappy
  arcade scores flappy --limit 25
  arcade scores flappy --players
  arcade scores flappy --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagScoresPlayers, "players", false, "Show each player's best instead of individual runs")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	out := cmd.OutOrStdout()

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", title)
		return nil
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)
	if flagScoresPlayers {
		err = printPlayerBests(out, store, gameID)
	} else {
		err = printTopRuns(out, store, gameID)
	}
	if err != nil {
		return err
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if stats.GamesCount > 0 {
		fmt.Fprintf(out, "\nBest: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printTopRuns(out io.Writer, store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-16s  %-6s  %-10s  %s\n", "Rank", "Player", "Score", "Difficulty", "Date")
	fmt.Fprintf(out, "  %-4s  %-16s  %-6s  %-10s  %s\n", "----", "------", "-----", "----------", "----")
	for i, e := range scores {
		difficulty := e.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-16s  %-6d  %-10s  %s\n",
			i+1, e.Player, e.Score, difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printPlayerBests(out io.Writer, store *storage.Store, gameID string) error {
	bests, err := store.PlayerBests(gameID, flagScoresLimit)
	if err != nil {
		return err
	}
	if len(bests) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-16s  %-6s  %-5s  %s\n", "Rank", "Player", "Best", "Runs", "Last Played")
	fmt.Fprintf(out, "  %-4s  %-16s  %-6s  %-5s  %s\n", "----", "------", "----", "----", "-----------")
	for i, b := range bests {
		fmt.Fprintf(out, "  %-4d  %-16s  %-6d  %-5d  %s\n",
			i+1, b.Player, b.Best, b.Runs, b.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-classics/internal/registry"
	"github.com/vovakirdan/tui-classics/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores or match results for a game",
	Long: `Display the top scores for Snake, or the win tally and recent matches
for Tic-Tac-Toe.

Examples:
  classics scores snake
  classics scores snake --limit 20
  classics scores tictactoe
  classics scores snake --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'classics list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	_, outcomes := game.(registry.OutcomeReporter)
	switch {
	case flagClear && outcomes:
		fmt.Fprintln(os.Stderr, "Error: --clear only applies to scored games")
		os.Exit(1)
	case flagClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s.\n", game.Title())
		}
	case outcomes:
		err = printResults(store, gameID, game.Title())
	default:
		err = printScores(store, gameID, game.Title())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'classics play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	high, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("\nBest: %d\n", high)
	return nil
}

func printResults(store *storage.Store, gameID, title string) error {
	tally, err := store.Tally(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Results - %s\n\n", title)
	if tally.Total() == 0 {
		fmt.Println("No matches recorded yet.")
		return nil
	}

	for _, mark := range slices.Sorted(maps.Keys(tally.Wins)) {
		fmt.Printf("  %s wins: %d\n", mark, tally.Wins[mark])
	}
	fmt.Printf("  Draws:  %d\n\n", tally.Draws)

	results, err := store.RecentResults(gameID, flagLimit)
	if err != nil {
		return err
	}
	fmt.Printf("  %-10s  %-5s  %s\n", "Result", "Moves", "Date")
	fmt.Printf("  %-10s  %-5s  %s\n", "------", "-----", "----")
	for _, r := range results {
		outcome := "Draw"
		if r.Outcome == storage.OutcomeWin {
			outcome = r.Winner + " won"
		}
		fmt.Printf("  %-10s  %-5d  %s\n", outcome, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-classics/internal/config"
	"github.com/vovakirdan/tui-classics/internal/games/tictactoe"
	"github.com/vovakirdan/tui-classics/internal/storage"
)

var flagNoSave bool

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play Tic-Tac-Toe line by line on stdin/stdout",
	Long: `Play one game of Tic-Tac-Toe without a full-screen UI.

The board is printed before every turn. Each move is two integers, the row
and the column (0-2), separated by whitespace. Anything that is not an
integer ends the game with an error.

Examples:
  classics console
  printf '0 0\n1 1\n0 1\n2 2\n0 2\n' | classics console`,
	Args: cobra.NoArgs,
	Run:  runConsole,
}

func init() {
	consoleCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the result")
}

func runConsole(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadTicTacToe(flagConfig)
	if err != nil {
		log.Warn("using default tic-tac-toe config", "error", err)
		cfg = config.DefaultTicTacToeConfig()
	}

	out, err := tictactoe.NewConsole(os.Stdin, os.Stdout, tictactoe.MarksFromConfig(cfg)).Run()
	if err != nil {
		if errors.Is(err, tictactoe.ErrMalformedInput) {
			fmt.Fprintf(os.Stderr, "Error: expected two integers: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if flagNoSave {
		return
	}
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()

	res := storage.Result{GameID: "tictactoe", Outcome: storage.OutcomeWin, Winner: out.Winner, Moves: out.Moves}
	if out.Draw {
		res.Outcome = storage.OutcomeDraw
		res.Winner = ""
	}
	if _, err := store.SaveResult(res); err != nil {
		log.Warn("could not save result", "error", err)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-classics/internal/config"
	"github.com/vovakirdan/tui-classics/internal/games/snake"
	"github.com/vovakirdan/tui-classics/internal/platform/tui"
	"github.com/vovakirdan/tui-classics/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD/HJKL - Move (snake) or move the cursor (tic-tac-toe)
  Enter/Space      - Place a mark
  1-9              - Place a mark directly (row by row)
  P                - Pause
  R                - Restart after game over
  Esc/B            - Back (when paused or over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options (snake):
  easy   - Slower moves
  normal - 150 ms per move
  hard   - Faster moves

Examples:
  classics play snake
  classics play snake --difficulty hard --seed 42
  classics play tictactoe
  classics play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Snake speed preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'classics list' to see available games.")
		os.Exit(1)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyConfigPath()
	snake.SetDifficultyPreset(preset)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	restore := logToFile()
	_, runErr := tui.Run(game, store, runtimeConfig())
	restore()

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

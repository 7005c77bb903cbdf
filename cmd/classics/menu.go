package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-classics/internal/config"
	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/games/snake"
	"github.com/vovakirdan/tui-classics/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, Tab for the
scoreboard. Choosing Snake asks for a speed unless --difficulty is set.
After a game ends you return to the menu.

Examples:
  classics menu
  classics menu --fps 30
  classics menu --db ./classics.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Snake speed preset; skips the speed prompt")
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyConfigPath()

	store := openStore()
	restore := logToFile()

	prepare := func(gameID string, cfg core.RuntimeConfig) bool {
		if gameID != "snake" {
			return true
		}
		if flagDifficulty != "" {
			snake.SetDifficultyPreset(preset)
			return true
		}

		base, err := config.LoadSnake(flagConfig)
		if err != nil {
			log.Warn("using default snake config", "error", err)
			base = config.DefaultSnakeConfig()
		}
		chosen, err := tui.RunDifficultySelector(base, cfg)
		if err != nil {
			log.Error("difficulty selector failed", "error", err)
			return false
		}
		if chosen == nil {
			return false
		}
		snake.SetDifficultyPreset(*chosen)
		return true
	}

	runErr := tui.RunArcade(store, runtimeConfig(), prepare)
	restore()

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

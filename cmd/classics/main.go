// classics is a terminal arcade for two classic games: a wrap-around Snake
// and two-player Tic-Tac-Toe.
//
// Usage:
//
//	classics list              - List available games
//	classics play <game>       - Play a game
//	classics menu              - Start menu to pick games interactively
//	classics console           - Play Tic-Tac-Toe over stdin/stdout
//	classics serve             - Start SSH server for remote play
//	classics scores <game>     - Show scores or match results for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.classics/classics.db)
//	--config <path>      - Custom game config YAML
//	--log-level <level>  - debug, info, warn or error
//	--mono               - Monochrome menus (also set by NO_COLOR)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/games/snake"
	"github.com/vovakirdan/tui-classics/internal/games/tictactoe"
	"github.com/vovakirdan/tui-classics/internal/platform/tui"
	"github.com/vovakirdan/tui-classics/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagMono     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "classics",
	Short: "Snake and Tic-Tac-Toe in your terminal",
	Long: `Classics is a terminal arcade with two games: a Snake on a grid whose
edges wrap around, and Tic-Tac-Toe for two players at one keyboard.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  console  - Line-by-line Tic-Tac-Toe on stdin/stdout
  serve    - Start SSH server for remote play
  scores   - View scores and match results

Examples:
  classics list
  classics play snake --difficulty hard
  classics play tictactoe
  classics console
  classics serve --ssh :2222
  classics scores snake`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use a monochrome theme for menus")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)

	if _, ok := os.LookupEnv("NO_COLOR"); ok || flagMono {
		tui.SetTheme(tui.MonochromeTheme())
	}
	return nil
}

// logToFile sends log output to ~/.classics/classics.log while a full-screen
// program owns the terminal. The returned func restores stderr.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".classics")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "classics.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return func() {}
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}

// runtimeConfig builds the platform config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the database, or logs a warning and returns nil so games
// still run without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open database, results will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// applyConfigPath points every game at the --config file.
func applyConfigPath() {
	snake.SetConfigPath(flagConfig)
	tictactoe.SetConfigPath(flagConfig)
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/registry"
	"github.com/vovakirdan/tui-classics/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game: key presses are
// collected into an InputFrame and handed to the game on the next tick.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	sessionID  string
	gen        uint64
	quitting   bool
	backToMenu bool
	exitOnBack bool // Standalone program: leaving for the menu ends it
	recorded   bool // Result of the current game over has been stored
}

// NewGameModel creates a model for game. A nil store disables persistence.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// WithSession tags saved results and log lines with a session ID. gen must
// differ from any earlier game model in the same program.
func (m GameModel) WithSession(id string, gen uint64) GameModel {
	m.sessionID = id
	m.gen = gen
	return m
}

// playfieldHeight leaves the bottom row for the help line.
func playfieldHeight(h int) int {
	return max(1, h-1)
}

func (m GameModel) runtimeConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playfieldHeight(cfg.ScreenH)
	return cfg
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.runtimeConfig())
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			log.Warn("screenshot failed", "error", err)
		} else {
			log.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		_, turnBased := m.game.(registry.OutcomeReporter)
		if m.gameState.GameOver || m.gameState.Paused || turnBased {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, playfieldHeight(msg.Height))
	} else if !m.gameState.GameOver {
		m.game.Reset(m.runtimeConfig())
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !m.recorded:
		m.record()
		m.recorded = true
	case !m.gameState.GameOver:
		// The game restarted itself after a Restart action.
		m.recorded = false
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// record stores the finished game: a match result for games that report an
// outcome, otherwise the score if it is positive.
func (m GameModel) record() {
	if m.store == nil {
		return
	}

	if r, ok := m.game.(registry.OutcomeReporter); ok {
		out, done := r.Outcome()
		if !done {
			return
		}
		res := storage.Result{
			MatchID: uuid.NewString(),
			GameID:  m.game.ID(),
			Outcome: storage.OutcomeWin,
			Winner:  out.Winner,
			Moves:   out.Moves,
		}
		if out.Draw {
			res.Outcome = storage.OutcomeDraw
			res.Winner = ""
		}
		if _, err := m.store.SaveResult(res); err != nil {
			log.Warn("could not save result", "game", m.game.ID(), "session", m.sessionID, "error", err)
			return
		}
		log.Debug("result saved", "game", m.game.ID(), "match", res.MatchID, "outcome", res.Outcome, "winner", res.Winner)
		return
	}

	if m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		log.Warn("could not save score", "game", m.game.ID(), "session", m.sessionID, "error", err)
		return
	}
	log.Debug("score saved", "game", m.game.ID(), "score", m.gameState.Score)
}

// saveScreenshot writes the current frame as plain text under
// ~/.classics/screenshots.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".classics", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the game followed by the help line.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + theme.Help.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the user asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the runtime config, including any resize.
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// Run plays one game in the local terminal. It reports whether the user
// left for the menu rather than quitting.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg)
	model.exitOnBack = true
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}

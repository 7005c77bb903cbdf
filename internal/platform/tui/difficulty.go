package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-classics/internal/config"
	"github.com/vovakirdan/tui-classics/internal/core"
)

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// DifficultyModel lets the user pick a Snake speed preset before a run.
type DifficultyModel struct {
	base     config.SnakeConfig
	cursor   int
	width    int
	height   int
	keys     KeyMap
	selected *config.DifficultyPreset
	quitting bool
	back     bool
}

// NewDifficultyModel creates a selector showing move intervals derived
// from base. The cursor starts on normal.
func NewDifficultyModel(base config.SnakeConfig, width, height int) DifficultyModel {
	return DifficultyModel{
		base:   base,
		cursor: 1,
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		p := presets[m.cursor]
		m.selected = &p
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(theme.Title.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.Subtitle.Render("Select speed:"), m.width))
	b.WriteString("\n\n")

	for i, p := range presets {
		cfg := m.base
		config.ApplySnakePreset(&cfg, p)
		label := fmt.Sprintf("%-7s %4d ms/move", p, cfg.Speed.MoveIntervalMs)

		if i == m.cursor {
			b.WriteString(centerText(theme.ItemActive.Render("> "+label), m.width))
		} else {
			b.WriteString(centerText(theme.ItemNormal.Render("  "+label), m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(theme.Help.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// RunDifficultySelector shows the selector in the local terminal. A nil
// preset means the user backed out or quit.
func RunDifficultySelector(base config.SnakeConfig, cfg core.RuntimeConfig) (*config.DifficultyPreset, error) {
	p := tea.NewProgram(NewDifficultyModel(base, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(DifficultyModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}

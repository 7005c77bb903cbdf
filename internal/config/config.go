// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid  SnakeGrid  `yaml:"grid"`
	Start SnakeStart `yaml:"start"`
	Speed SnakeSpeed `yaml:"speed"`
}

// SnakeGrid defines the size of the wrapping playfield in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeStart defines where a fresh snake spawns and where it heads.
type SnakeStart struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"` // up, down, left or right
}

// SnakeSpeed defines the movement cadence.
type SnakeSpeed struct {
	MoveIntervalMs int `yaml:"move_interval_ms"`
}

// Validate checks that the config describes a playable snake.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		return fmt.Errorf("%w: snake grid must be at least 2x2, got %dx%d",
			ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Start.X < 0 || c.Start.X >= c.Grid.Width || c.Start.Y < 0 || c.Start.Y >= c.Grid.Height {
		return fmt.Errorf("%w: snake start (%d,%d) outside %dx%d grid",
			ErrInvalidConfig, c.Start.X, c.Start.Y, c.Grid.Width, c.Grid.Height)
	}
	switch c.Start.Direction {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("%w: unknown snake direction %q", ErrInvalidConfig, c.Start.Direction)
	}
	if c.Speed.MoveIntervalMs <= 0 {
		return fmt.Errorf("%w: move_interval_ms must be positive", ErrInvalidConfig)
	}
	return nil
}

// TicTacToeConfig contains configuration for Tic-Tac-Toe.
type TicTacToeConfig struct {
	Marks TicTacToeMarks `yaml:"marks"`
}

// TicTacToeMarks are the symbols drawn for each player.
type TicTacToeMarks struct {
	PlayerA string `yaml:"player_a"`
	PlayerB string `yaml:"player_b"`
}

// Validate checks that both marks are single, distinct, printable symbols.
func (c TicTacToeConfig) Validate() error {
	for _, m := range []string{c.Marks.PlayerA, c.Marks.PlayerB} {
		if utf8.RuneCountInString(m) != 1 || m == " " || m == "-" {
			return fmt.Errorf("%w: mark %q must be a single visible symbol other than '-'", ErrInvalidConfig, m)
		}
	}
	if c.Marks.PlayerA == c.Marks.PlayerB {
		return fmt.Errorf("%w: both players use mark %q", ErrInvalidConfig, c.Marks.PlayerA)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplySnakePreset scales the snake move interval for a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.MoveIntervalMs = cfg.Speed.MoveIntervalMs * 4 / 3
	case DifficultyHard:
		cfg.Speed.MoveIntervalMs = max(1, cfg.Speed.MoveIntervalMs*3/5)
	}
}

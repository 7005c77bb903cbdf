package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration:
// a 20x20 torus, spawn at (5,5) heading right, one move every 150ms.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:  SnakeGrid{Width: 20, Height: 20},
		Start: SnakeStart{X: 5, Y: 5, Direction: "right"},
		Speed: SnakeSpeed{MoveIntervalMs: 150},
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Marks: TicTacToeMarks{PlayerA: "X", PlayerB: "O"},
	}
}

package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidPosition  = errors.New("invalid board position")
	ErrInvalidBoardSize = errors.New("board size must be positive")
	ErrInvalidMineCount = errors.New("mine count must be between 0 and size*size-1")

	// Game errors
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrGameComplete      = errors.New("game is already complete")
	ErrGamePaused        = errors.New("game is paused")

	// Bot errors
	ErrUnknownBotStrategy = errors.New("unknown bot strategy")

	// CLI errors
	ErrInvalidCommand = errors.New("invalid command")
)

package bot

import (
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
)

// MoveType distinguishes reveals from flags
type MoveType string

const (
	MoveReveal MoveType = "reveal"
	MoveFlag   MoveType = "flag"
)

// Move is a single action a strategy wants to take
type Move struct {
	Type     MoveType
	Position model.Position
	// Guess is true when the strategy could not prove the move safe
	Guess bool
}

// Strategy decides the bot's next move. Strategies only look at what the
// player can see: revealed cells and flags.
type Strategy interface {
	// NextMove returns the next move, or false if nothing is left to do
	NextMove(board *model.Board) (Move, bool)
}

// NewStrategy builds a strategy by name
func NewStrategy(name string, rnd random.Random) (Strategy, error) {
	switch name {
	case model.BotStrategyRandom:
		return NewRandomStrategy(rnd), nil
	case model.BotStrategyLogic:
		return NewLogicStrategy(rnd), nil
	default:
		return nil, model.ErrUnknownBotStrategy
	}
}

// hiddenCells returns every unrevealed, unflagged cell in row-major order
func hiddenCells(board *model.Board) []model.Position {
	var hidden []model.Position
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			cell := board.Cells[row][col]
			if !cell.IsRevealed && !cell.IsFlagged {
				hidden = append(hidden, model.Position{Row: row, Col: col})
			}
		}
	}
	return hidden
}

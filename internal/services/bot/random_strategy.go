package bot

import (
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
)

// RandomStrategy reveals random hidden cells
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// NextMove picks a random unrevealed, unflagged cell
func (s *RandomStrategy) NextMove(board *model.Board) (Move, bool) {
	hidden := hiddenCells(board)
	if len(hidden) == 0 {
		return Move{}, false
	}
	return Move{
		Type:     MoveReveal,
		Position: hidden[s.random.Intn(len(hidden))],
		Guess:    true,
	}, true
}

package bot

import (
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
)

// LogicStrategy applies single-cell deduction around revealed numbers and
// falls back to a random guess when nothing can be proven.
//
// For a revealed number n with f flagged and h hidden neighbours:
// f == n means every hidden neighbour is safe; f+h == n means every hidden
// neighbour is a mine.
type LogicStrategy struct {
	fallback *RandomStrategy
}

// NewLogicStrategy creates a new LogicStrategy
func NewLogicStrategy(rnd random.Random) *LogicStrategy {
	return &LogicStrategy{fallback: NewRandomStrategy(rnd)}
}

// NextMove returns a proven-safe reveal, then a proven mine to flag, then a guess
func (s *LogicStrategy) NextMove(board *model.Board) (Move, bool) {
	if move, ok := s.findSafe(board); ok {
		return move, true
	}
	if move, ok := s.findMine(board); ok {
		return move, true
	}
	return s.fallback.NextMove(board)
}

func (s *LogicStrategy) findSafe(board *model.Board) (Move, bool) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			pos := model.Position{Row: row, Col: col}
			cell := board.Get(pos)
			if !isClue(cell) {
				continue
			}
			flags, hidden := neighbourInfo(board, pos)
			if flags == cell.AdjacentMines && len(hidden) > 0 {
				return Move{Type: MoveReveal, Position: hidden[0]}, true
			}
		}
	}
	return Move{}, false
}

func (s *LogicStrategy) findMine(board *model.Board) (Move, bool) {
	if board.FlagsPlaced >= board.MineCount {
		return Move{}, false
	}
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			pos := model.Position{Row: row, Col: col}
			cell := board.Get(pos)
			if !isClue(cell) {
				continue
			}
			flags, hidden := neighbourInfo(board, pos)
			if len(hidden) > 0 && flags+len(hidden) == cell.AdjacentMines {
				return Move{Type: MoveFlag, Position: hidden[0]}, true
			}
		}
	}
	return Move{}, false
}

// isClue reports whether a cell is a revealed, non-zero number
func isClue(cell *model.Cell) bool {
	return cell.IsRevealed && !cell.IsMine && cell.AdjacentMines > 0
}

func neighbourInfo(board *model.Board, pos model.Position) (flags int, hidden []model.Position) {
	for _, n := range board.Neighbors(pos) {
		ncell := board.Get(n)
		if ncell.IsRevealed {
			continue
		}
		if ncell.IsFlagged {
			flags++
		} else {
			hidden = append(hidden, n)
		}
	}
	return flags, hidden
}

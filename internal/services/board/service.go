package board

import (
	"log/slog"

	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
)

// Service is the board engine: it deals minefields and applies moves.
//
// Unlike the model methods, which silently ignore out-of-bounds positions,
// Service rejects them with model.ErrInvalidPosition.
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new BoardService
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// Initialize deals a fresh size x size board with mineCount mines placed
// uniformly at random and adjacency counts computed
func (s *Service) Initialize(size, mineCount int) (*model.Board, error) {
	if size <= 0 {
		return nil, model.ErrInvalidBoardSize
	}
	if mineCount < 0 || mineCount >= size*size {
		return nil, model.ErrInvalidMineCount
	}

	board := model.NewBoard(size, mineCount)
	draws := s.placeMines(board)
	board.ComputeAdjacency()

	s.logger.Debug("board initialized",
		slog.Int("size", size),
		slog.Int("mine_count", mineCount),
		slog.Int("draws", draws),
	)

	return board, nil
}

// placeMines draws random cells until MineCount distinct cells are mined,
// retrying on collision. Returns the number of draws taken.
func (s *Service) placeMines(board *model.Board) int {
	placed, draws := 0, 0
	for placed < board.MineCount {
		row := s.random.Intn(board.Size)
		col := s.random.Intn(board.Size)
		draws++
		if board.PlaceMine(model.Position{Row: row, Col: col}) {
			placed++
		}
	}
	return draws
}

// RevealCell reveals a cell, flooding zero regions. Returns true if the
// cell was a mine.
func (s *Service) RevealCell(board *model.Board, pos model.Position) (bool, error) {
	if err := s.ValidatePosition(board, pos); err != nil {
		return false, err
	}

	before := board.CellsRevealed
	hitMine := board.RevealCell(pos)

	s.logger.Debug("cell revealed",
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
		slog.Bool("hit_mine", hitMine),
		slog.Int("newly_revealed", board.CellsRevealed-before),
	)

	return hitMine, nil
}

// ToggleFlag flags or unflags an unrevealed cell, capped at the mine count
func (s *Service) ToggleFlag(board *model.Board, pos model.Position) error {
	if err := s.ValidatePosition(board, pos); err != nil {
		return err
	}
	board.ToggleFlag(pos)
	return nil
}

// RevealAllMines exposes every mine, used once a game is lost
func (s *Service) RevealAllMines(board *model.Board) {
	board.RevealAllMines()
}

// CheckWin returns true once every non-mine cell is revealed
func (s *Service) CheckWin(board *model.Board) bool {
	return board.CheckWin()
}

// ValidatePosition checks that a position is on the board
func (s *Service) ValidatePosition(board *model.Board, pos model.Position) error {
	if !board.IsValidPosition(pos) {
		return model.ErrInvalidPosition
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Initialize(size, mineCount int) (*model.Board, error)
	RevealCell(board *model.Board, pos model.Position) (bool, error)
	ToggleFlag(board *model.Board, pos model.Position) error
	RevealAllMines(board *model.Board)
	CheckWin(board *model.Board) bool
	ValidatePosition(board *model.Board, pos model.Position) error
}

var _ ServiceInterface = (*Service)(nil)

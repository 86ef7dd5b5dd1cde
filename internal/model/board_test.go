package model_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minesweeper/internal/model"
)

type BoardSuite struct {
	suite.Suite
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

// boardWithMines builds a board with mines at the given positions and
// adjacency already computed
func boardWithMines(size int, mines ...model.Position) *model.Board {
	board := model.NewBoard(size, len(mines))
	for _, p := range mines {
		board.PlaceMine(p)
	}
	board.ComputeAdjacency()
	return board
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

// NewBoard tests

func (s *BoardSuite) TestNewBoardIsFresh() {
	board := model.NewBoard(4, 3)

	s.Equal(4, board.Size)
	s.Equal(3, board.MineCount)
	s.Equal(0, board.FlagsPlaced)
	s.Equal(0, board.CellsRevealed)
	s.Require().Len(board.Cells, 4)
	for _, row := range board.Cells {
		s.Require().Len(row, 4)
		for _, cell := range row {
			s.Equal(model.Cell{}, cell)
		}
	}
}

// Neighbors tests

func (s *BoardSuite) TestNeighborsClippedAtEdges() {
	board := model.NewBoard(3, 0)

	s.Len(board.Neighbors(pos(0, 0)), 3)
	s.Len(board.Neighbors(pos(0, 1)), 5)
	s.Len(board.Neighbors(pos(1, 1)), 8)
	s.Len(board.Neighbors(pos(2, 2)), 3)
}

func (s *BoardSuite) TestNeighborsSingleCellBoard() {
	board := model.NewBoard(1, 0)
	s.Empty(board.Neighbors(pos(0, 0)))
}

// PlaceMine tests

func (s *BoardSuite) TestPlaceMineRejectsDuplicatesAndOutOfBounds() {
	board := model.NewBoard(3, 2)

	s.True(board.PlaceMine(pos(1, 1)))
	s.False(board.PlaceMine(pos(1, 1)))
	s.False(board.PlaceMine(pos(3, 0)))
	s.False(board.PlaceMine(pos(0, -1)))
	s.Equal(1, board.CountMines())
}

// ComputeAdjacency tests

func (s *BoardSuite) TestAdjacencyTwoCorners() {
	board := boardWithMines(3, pos(0, 0), pos(2, 2))

	s.Equal(2, board.Get(pos(1, 1)).AdjacentMines)
	s.Equal(1, board.Get(pos(0, 1)).AdjacentMines)
	s.Equal(1, board.Get(pos(1, 0)).AdjacentMines)
	s.Equal(1, board.Get(pos(2, 1)).AdjacentMines)
	s.Equal(1, board.Get(pos(1, 2)).AdjacentMines)
	s.Equal(0, board.Get(pos(0, 2)).AdjacentMines)
	s.Equal(0, board.Get(pos(2, 0)).AdjacentMines)
}

func (s *BoardSuite) TestAdjacencySurroundedCell() {
	mines := model.NewBoard(3, 0).Neighbors(pos(1, 1))
	board := boardWithMines(3, mines...)

	s.Equal(8, board.Get(pos(1, 1)).AdjacentMines)
}

// RevealCell tests

func (s *BoardSuite) TestRevealNumberedCellDoesNotCascade() {
	board := boardWithMines(3, pos(0, 0), pos(2, 2))

	hit := board.RevealCell(pos(1, 1))
	s.False(hit)
	s.Equal(1, board.CellsRevealed)
	s.True(board.Get(pos(1, 1)).IsRevealed)
	s.False(board.Get(pos(0, 1)).IsRevealed)
}

func (s *BoardSuite) TestRevealZeroCellFloodsWholeRegion() {
	board := boardWithMines(5, pos(4, 4))

	hit := board.RevealCell(pos(0, 0))
	s.False(hit)
	s.Equal(24, board.CellsRevealed)
	s.False(board.Get(pos(4, 4)).IsRevealed)
	s.True(board.CheckWin())
}

func (s *BoardSuite) TestFloodStopsAtNumberedBorder() {
	// A wall of mines down column 2 splits the board
	board := boardWithMines(5, pos(0, 2), pos(1, 2), pos(2, 2), pos(3, 2), pos(4, 2))

	board.RevealCell(pos(0, 0))

	s.Equal(10, board.CellsRevealed)
	for row := 0; row < 5; row++ {
		s.True(board.Get(pos(row, 0)).IsRevealed)
		s.True(board.Get(pos(row, 1)).IsRevealed)
		s.False(board.Get(pos(row, 2)).IsRevealed, "cascade revealed a mine at row %d", row)
		s.False(board.Get(pos(row, 3)).IsRevealed)
		s.False(board.Get(pos(row, 4)).IsRevealed)
	}
}

func (s *BoardSuite) TestFloodSkipsFlaggedCells() {
	board := boardWithMines(5, pos(4, 4))
	board.ToggleFlag(pos(0, 4))

	board.RevealCell(pos(0, 0))

	cell := board.Get(pos(0, 4))
	s.True(cell.IsFlagged)
	s.False(cell.IsRevealed)
	s.Equal(23, board.CellsRevealed)
	s.False(board.CheckWin())
}

func (s *BoardSuite) TestFloodTerminatesOnLargeEmptyBoard() {
	board := boardWithMines(200)

	board.RevealCell(pos(100, 100))

	s.Equal(200*200, board.CellsRevealed)
	s.True(board.CheckWin())
}

func (s *BoardSuite) TestRevealIsIdempotent() {
	board := boardWithMines(3, pos(0, 0), pos(2, 2))

	s.False(board.RevealCell(pos(1, 1)))
	s.False(board.RevealCell(pos(1, 1)))
	s.Equal(1, board.CellsRevealed)
}

func (s *BoardSuite) TestRevealFlaggedCellIsNoOp() {
	board := boardWithMines(3, pos(0, 0), pos(2, 2))
	board.ToggleFlag(pos(0, 0))

	hit := board.RevealCell(pos(0, 0))
	s.False(hit)
	s.False(board.Get(pos(0, 0)).IsRevealed)
	s.Equal(0, board.CellsRevealed)
}

func (s *BoardSuite) TestRevealMineReportsLoss() {
	board := boardWithMines(3, pos(0, 0), pos(2, 2))

	hit := board.RevealCell(pos(0, 0))
	s.True(hit)
	s.True(board.Get(pos(0, 0)).IsRevealed)
	s.Equal(0, board.CellsRevealed)

	// Nothing else changes until all mines are shown
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row == 0 && col == 0 {
				continue
			}
			s.False(board.Get(pos(row, col)).IsRevealed)
		}
	}
}

func (s *BoardSuite) TestRevealOutOfBoundsIsIgnored() {
	board := boardWithMines(3, pos(0, 0))

	s.False(board.RevealCell(pos(-1, 0)))
	s.False(board.RevealCell(pos(0, 3)))
	s.Equal(0, board.CellsRevealed)
}

// ToggleFlag tests

func (s *BoardSuite) TestToggleFlagOnAndOff() {
	board := boardWithMines(3, pos(0, 0), pos(2, 2))

	board.ToggleFlag(pos(1, 1))
	s.True(board.Get(pos(1, 1)).IsFlagged)
	s.Equal(1, board.FlagsPlaced)
	s.Equal(1, board.RemainingMines())

	board.ToggleFlag(pos(1, 1))
	s.False(board.Get(pos(1, 1)).IsFlagged)
	s.Equal(0, board.FlagsPlaced)
}

func (s *BoardSuite) TestToggleFlagCappedAtMineCount() {
	board := boardWithMines(3, pos(0, 0), pos(2, 2))

	board.ToggleFlag(pos(0, 0))
	board.ToggleFlag(pos(0, 1))
	s.Equal(2, board.FlagsPlaced)

	board.ToggleFlag(pos(0, 2))
	s.Equal(2, board.FlagsPlaced)
	s.False(board.Get(pos(0, 2)).IsFlagged)

	// Removing a flag frees a slot
	board.ToggleFlag(pos(0, 0))
	board.ToggleFlag(pos(0, 2))
	s.Equal(2, board.FlagsPlaced)
	s.True(board.Get(pos(0, 2)).IsFlagged)
	s.Equal(0, board.RemainingMines())
}

func (s *BoardSuite) TestToggleFlagOnRevealedCellIsNoOp() {
	board := boardWithMines(3, pos(0, 0), pos(2, 2))
	board.RevealCell(pos(1, 1))

	board.ToggleFlag(pos(1, 1))
	cell := board.Get(pos(1, 1))
	s.False(cell.IsFlagged)
	s.True(cell.IsRevealed)
	s.Equal(0, board.FlagsPlaced)
}

func (s *BoardSuite) TestToggleFlagWithNoMinesIsNoOp() {
	board := boardWithMines(3)

	board.ToggleFlag(pos(1, 1))
	s.Equal(0, board.FlagsPlaced)
}

// RevealAllMines tests

func (s *BoardSuite) TestRevealAllMines() {
	board := boardWithMines(3, pos(0, 0), pos(2, 2))
	board.RevealCell(pos(1, 1))

	board.RevealAllMines()

	s.True(board.Get(pos(0, 0)).IsRevealed)
	s.True(board.Get(pos(2, 2)).IsRevealed)
	s.False(board.Get(pos(0, 1)).IsRevealed)
	s.Equal(1, board.CellsRevealed)
}

func (s *BoardSuite) TestRevealAllMinesClearsFlagsOnMines() {
	board := boardWithMines(3, pos(0, 0), pos(2, 2))
	board.ToggleFlag(pos(0, 0))
	board.ToggleFlag(pos(1, 1))

	board.RevealAllMines()

	mine := board.Get(pos(0, 0))
	s.True(mine.IsRevealed)
	s.False(mine.IsFlagged)
	// A wrong flag stays put
	s.True(board.Get(pos(1, 1)).IsFlagged)
	s.Equal(1, board.FlagsPlaced)
}

// CheckWin tests

func (s *BoardSuite) TestCheckWinAfterAllSafeCells() {
	board := boardWithMines(2, pos(0, 0))

	board.RevealCell(pos(0, 1))
	s.False(board.CheckWin())
	board.RevealCell(pos(1, 0))
	s.False(board.CheckWin())
	board.RevealCell(pos(1, 1))
	s.True(board.CheckWin())
	s.Equal(3, board.CellsRevealed)
}

func (s *BoardSuite) TestCheckWinIgnoresFlags() {
	board := boardWithMines(2, pos(0, 0))
	board.ToggleFlag(pos(0, 0))

	s.False(board.CheckWin())
	s.Equal(3, board.SafeCellCount())
}

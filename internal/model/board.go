package model

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Cell is a single square of the minefield
type Cell struct {
	IsMine     bool
	IsRevealed bool
	IsFlagged  bool
	// AdjacentMines counts mined neighbours; meaningless when IsMine is set
	AdjacentMines int
}

// Board is the square minefield for one game
type Board struct {
	Size          int      // Grid dimension (e.g., 10 for 10x10)
	MineCount     int      // Number of mines on the board
	FlagsPlaced   int      // Cells currently flagged
	CellsRevealed int      // Non-mine cells currently revealed
	Cells         [][]Cell // Row-major: Cells[row][col]
}

// NewBoard creates a board with every cell in its default state.
// Mines are not placed; see PlaceMine and ComputeAdjacency.
func NewBoard(size, mineCount int) *Board {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Board{
		Size:      size,
		MineCount: mineCount,
		Cells:     cells,
	}
}

// Get returns the cell at the given position, or nil if out of bounds
func (b *Board) Get(pos Position) *Cell {
	if !b.IsValidPosition(pos) {
		return nil
	}
	return &b.Cells[pos.Row][pos.Col]
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// Neighbors returns the in-bounds Moore neighbours of pos
func (b *Board) Neighbors(pos Position) []Position {
	result := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Position{Row: pos.Row + dr, Col: pos.Col + dc}
			if b.IsValidPosition(n) {
				result = append(result, n)
			}
		}
	}
	return result
}

// PlaceMine marks the cell as a mine. It returns false if the position is
// out of bounds or already mined.
func (b *Board) PlaceMine(pos Position) bool {
	cell := b.Get(pos)
	if cell == nil || cell.IsMine {
		return false
	}
	cell.IsMine = true
	return true
}

// ComputeAdjacency recalculates AdjacentMines for every non-mine cell
func (b *Board) ComputeAdjacency() {
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			cell := &b.Cells[row][col]
			if cell.IsMine {
				continue
			}
			count := 0
			for _, n := range b.Neighbors(Position{Row: row, Col: col}) {
				if b.Cells[n.Row][n.Col].IsMine {
					count++
				}
			}
			cell.AdjacentMines = count
		}
	}
}

// RevealCell reveals the cell at pos and reports whether it was a mine.
//
// Revealed or flagged cells are left alone. A revealed zero cell floods
// outward through its neighbours: every reachable non-mine cell is revealed,
// and expansion continues only through cells that are themselves zero. The
// flood never reveals a mine. Out-of-bounds positions are ignored.
func (b *Board) RevealCell(pos Position) bool {
	cell := b.Get(pos)
	if cell == nil || cell.IsRevealed || cell.IsFlagged {
		return false
	}

	cell.IsRevealed = true
	if cell.IsMine {
		return true
	}
	b.CellsRevealed++

	if cell.AdjacentMines != 0 {
		return false
	}

	stack := []Position{pos}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range b.Neighbors(cur) {
			ncell := &b.Cells[n.Row][n.Col]
			if ncell.IsRevealed || ncell.IsFlagged || ncell.IsMine {
				continue
			}
			ncell.IsRevealed = true
			b.CellsRevealed++
			if ncell.AdjacentMines == 0 {
				stack = append(stack, n)
			}
		}
	}

	return false
}

// ToggleFlag flags or unflags an unrevealed cell. New flags are capped at
// MineCount; attempts beyond the cap are ignored.
func (b *Board) ToggleFlag(pos Position) {
	cell := b.Get(pos)
	if cell == nil || cell.IsRevealed {
		return
	}

	if cell.IsFlagged {
		cell.IsFlagged = false
		b.FlagsPlaced--
	} else if b.FlagsPlaced < b.MineCount {
		cell.IsFlagged = true
		b.FlagsPlaced++
	}
}

// RevealAllMines marks every mine as revealed. CellsRevealed is unchanged.
// A flagged mine loses its flag so that no cell is both revealed and flagged.
func (b *Board) RevealAllMines() {
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			cell := &b.Cells[row][col]
			if !cell.IsMine {
				continue
			}
			if cell.IsFlagged {
				cell.IsFlagged = false
				b.FlagsPlaced--
			}
			cell.IsRevealed = true
		}
	}
}

// SafeCellCount returns the number of non-mine cells
func (b *Board) SafeCellCount() int {
	return b.Size*b.Size - b.MineCount
}

// CheckWin returns true once every non-mine cell has been revealed
func (b *Board) CheckWin() bool {
	return b.CellsRevealed == b.SafeCellCount()
}

// RemainingMines is the mine counter shown to the player
func (b *Board) RemainingMines() int {
	return b.MineCount - b.FlagsPlaced
}

// CountMines returns the number of mined cells
func (b *Board) CountMines() int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col].IsMine {
				count++
			}
		}
	}
	return count
}

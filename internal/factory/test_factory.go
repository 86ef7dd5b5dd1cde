package factory

import (
	"time"

	"github.com/mcoot/minesweeper/internal/dependencies/mocks"
	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// DealGame creates a game whose mines sit exactly at the given positions
func (t *TestApp) DealGame(size int, mines ...model.Position) (*model.Game, error) {
	t.MockRandom.QueueMines(mines...)
	return t.GameController.NewCustomGame(model.Difficulty{
		Name:      "custom",
		Size:      size,
		MineCount: len(mines),
	})
}

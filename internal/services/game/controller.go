package game

import (
	"log/slog"

	"github.com/mcoot/minesweeper/internal/dependencies/clock"
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/board"
	"github.com/mcoot/minesweeper/internal/services/timer"
)

const (
	// GameIDAlphabet is the character set for generating game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// MoveResult summarises the game after a move
type MoveResult struct {
	State          model.GameState
	HitMine        bool
	CellsRevealed  int
	FlagsPlaced    int
	RemainingMines int
	ElapsedSeconds int
}

// Controller manages the game state machine and move flow
type Controller struct {
	boardService *board.Service
	timerService *timer.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new GameController
func NewController(
	boardService *board.Service,
	timerService *timer.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		boardService: boardService,
		timerService: timerService,
		clock:        clock,
		random:       random,
		logger:       logger.With(slog.String("component", "game-controller")),
	}
}

// NewGame deals a new game at the named difficulty
func (c *Controller) NewGame(difficultyName string) (*model.Game, error) {
	difficulty, err := model.LookupDifficulty(difficultyName)
	if err != nil {
		return nil, err
	}
	return c.NewCustomGame(difficulty)
}

// NewCustomGame deals a new game with an arbitrary board configuration
func (c *Controller) NewCustomGame(difficulty model.Difficulty) (*model.Game, error) {
	b, err := c.boardService.Initialize(difficulty.Size, difficulty.MineCount)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		Difficulty: difficulty,
		State:      model.GameStateFresh,
		Board:      b,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("difficulty", difficulty.Name),
		slog.Int("size", difficulty.Size),
		slog.Int("mine_count", difficulty.MineCount),
	)

	return game, nil
}

// Reveal reveals a cell for the player
func (c *Controller) Reveal(game *model.Game, pos model.Position) (*MoveResult, error) {
	if err := c.checkPlayable(game); err != nil {
		return nil, err
	}

	hitMine, err := c.boardService.RevealCell(game.Board, pos)
	if err != nil {
		return nil, err
	}

	if hitMine {
		game.State = model.GameStateLost
		c.timerService.Stop(&game.Timer)
		c.boardService.RevealAllMines(game.Board)
		c.logger.Info("game lost",
			slog.String("game_id", string(game.ID)),
			slog.Int("row", pos.Row),
			slog.Int("col", pos.Col),
			slog.Int("elapsed_seconds", c.timerService.Seconds(&game.Timer)),
		)
	} else {
		if game.State == model.GameStateFresh && game.Board.CellsRevealed > 0 {
			game.State = model.GameStateInProgress
			c.timerService.Start(&game.Timer)
		}
		if c.boardService.CheckWin(game.Board) {
			game.State = model.GameStateWon
			c.timerService.Stop(&game.Timer)
			c.logger.Info("game won",
				slog.String("game_id", string(game.ID)),
				slog.String("difficulty", game.Difficulty.Name),
				slog.Int("elapsed_seconds", c.timerService.Seconds(&game.Timer)),
			)
		}
	}

	game.UpdatedAt = c.clock.Now()
	return c.result(game, hitMine), nil
}

// ToggleFlag flags or unflags a cell for the player
func (c *Controller) ToggleFlag(game *model.Game, pos model.Position) (*MoveResult, error) {
	if err := c.checkPlayable(game); err != nil {
		return nil, err
	}

	if err := c.boardService.ToggleFlag(game.Board, pos); err != nil {
		return nil, err
	}

	game.UpdatedAt = c.clock.Now()
	return c.result(game, false), nil
}

// TogglePause pauses or resumes a game. The clock only runs while the game
// is in progress and not paused.
func (c *Controller) TogglePause(game *model.Game) error {
	if game.IsOver() {
		return model.ErrGameComplete
	}

	game.Paused = !game.Paused
	if game.State == model.GameStateInProgress {
		if game.Paused {
			c.timerService.Stop(&game.Timer)
		} else {
			c.timerService.Start(&game.Timer)
		}
	}

	c.logger.Debug("pause toggled",
		slog.String("game_id", string(game.ID)),
		slog.Bool("paused", game.Paused),
	)

	game.UpdatedAt = c.clock.Now()
	return nil
}

// Elapsed returns the whole seconds played so far
func (c *Controller) Elapsed(game *model.Game) int {
	return c.timerService.Seconds(&game.Timer)
}

// Summary describes the game's current counters without making a move
func (c *Controller) Summary(game *model.Game) *MoveResult {
	return c.result(game, false)
}

func (c *Controller) checkPlayable(game *model.Game) error {
	if game.IsOver() {
		return model.ErrGameComplete
	}
	if game.Paused {
		return model.ErrGamePaused
	}
	return nil
}

func (c *Controller) result(game *model.Game, hitMine bool) *MoveResult {
	return &MoveResult{
		State:          game.State,
		HitMine:        hitMine,
		CellsRevealed:  game.Board.CellsRevealed,
		FlagsPlaced:    game.Board.FlagsPlaced,
		RemainingMines: game.Board.RemainingMines(),
		ElapsedSeconds: c.timerService.Seconds(&game.Timer),
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(difficultyName string) (*model.Game, error)
	NewCustomGame(difficulty model.Difficulty) (*model.Game, error)
	Reveal(game *model.Game, pos model.Position) (*MoveResult, error)
	ToggleFlag(game *model.Game, pos model.Position) (*MoveResult, error)
	TogglePause(game *model.Game) error
	Elapsed(game *model.Game) int
	Summary(game *model.Game) *MoveResult
}

var _ ControllerInterface = (*Controller)(nil)

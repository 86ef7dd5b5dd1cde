package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/minesweeper/internal/dependencies/clock"
	"github.com/mcoot/minesweeper/internal/dependencies/random"
	"github.com/mcoot/minesweeper/internal/services/board"
	"github.com/mcoot/minesweeper/internal/services/bot"
	"github.com/mcoot/minesweeper/internal/services/game"
	"github.com/mcoot/minesweeper/internal/services/timer"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService   *board.Service
	TimerService   *timer.Service
	GameController *game.Controller

	logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed makes mine placement and game IDs deterministic (optional)
	// If nil, crypto/rand is used
	Seed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var rnd random.Random
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	} else {
		rnd = random.New()
	}

	return newWithDependencies(clock.New(), rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	boardService := board.New(rnd, logger)
	timerService := timer.New(clk)
	gameController := game.NewController(boardService, timerService, clk, rnd, logger)

	return &App{
		Clock:          clk,
		Random:         rnd,
		BoardService:   boardService,
		TimerService:   timerService,
		GameController: gameController,
		logger:         logger,
	}
}

// NewBotService creates a bot Service playing the named strategy
func (a *App) NewBotService(strategyName string) (*bot.Service, error) {
	strategy, err := bot.NewStrategy(strategyName, a.Random)
	if err != nil {
		return nil, err
	}
	return bot.NewService(a.GameController, strategy, a.logger), nil
}

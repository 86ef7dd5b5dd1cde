package bot

import (
	"log/slog"

	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/game"
)

// Action records one move the bot made and where the game stood afterwards
type Action struct {
	Move   Move
	Result game.MoveResult
}

// Service plays games on behalf of a strategy
type Service struct {
	gameController *game.Controller
	strategy       Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(gameController *game.Controller, strategy Strategy, logger *slog.Logger) *Service {
	return &Service{
		gameController: gameController,
		strategy:       strategy,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// Play makes moves until the game ends, the strategy runs out of moves, or
// maxMoves is reached. A non-positive maxMoves means two moves per cell,
// which is enough to flag and reveal everything.
func (s *Service) Play(g *model.Game, maxMoves int) ([]Action, error) {
	if maxMoves <= 0 {
		maxMoves = 2 * g.Board.Size * g.Board.Size
	}

	var actions []Action
	for range maxMoves {
		if g.IsOver() {
			break
		}

		move, ok := s.strategy.NextMove(g.Board)
		if !ok {
			break
		}

		var (
			result *game.MoveResult
			err    error
		)
		switch move.Type {
		case MoveFlag:
			result, err = s.gameController.ToggleFlag(g, move.Position)
		default:
			result, err = s.gameController.Reveal(g, move.Position)
		}
		if err != nil {
			return actions, err
		}

		actions = append(actions, Action{Move: move, Result: *result})

		s.logger.Debug("bot moved",
			slog.String("game_id", string(g.ID)),
			slog.String("type", string(move.Type)),
			slog.Int("row", move.Position.Row),
			slog.Int("col", move.Position.Col),
			slog.Bool("guess", move.Guess),
			slog.String("state", string(result.State)),
		)
	}

	s.logger.Info("bot finished",
		slog.String("game_id", string(g.ID)),
		slog.String("state", string(g.State)),
		slog.Int("moves", len(actions)),
	)

	return actions, nil
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/game"
)

const sessionHelp = `Commands:
  r, reveal ROW COL   reveal a cell
  f, flag ROW COL     flag or unflag a cell
  p, pause            pause or resume the game
  n, new [LEVEL]      start a new game (easy, medium, hard)
  s, show             show the board
  h, help             show this help
  q, quit             quit`

// Session is an interactive game driven by line commands
type Session struct {
	controller *game.Controller
	output     *Output
	difficulty string
	game       *model.Game
}

// NewSession creates a Session that deals games at the given difficulty
func NewSession(controller *game.Controller, output *Output, difficulty string) *Session {
	return &Session{
		controller: controller,
		output:     output,
		difficulty: difficulty,
	}
}

// Game returns the game currently being played
func (s *Session) Game() *model.Game {
	return s.game
}

// Start deals the first game and shows it
func (s *Session) Start() error {
	return s.newGame(s.difficulty)
}

// Run reads commands from r until quit or end of input. Command errors are
// reported and the session carries on.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		quit, err := s.Execute(scanner.Text())
		if err != nil {
			s.output.PrintError(err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs a single command line. Returns true when the session should end.
func (s *Session) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "r", "reveal":
		pos, err := parsePosition(args)
		if err != nil {
			return false, err
		}
		result, err := s.controller.Reveal(s.game, pos)
		if err != nil {
			return false, err
		}
		s.output.Print(NewGameView(s.game, result))

	case "f", "flag":
		pos, err := parsePosition(args)
		if err != nil {
			return false, err
		}
		result, err := s.controller.ToggleFlag(s.game, pos)
		if err != nil {
			return false, err
		}
		s.output.Print(NewGameView(s.game, result))

	case "p", "pause":
		if err := s.controller.TogglePause(s.game); err != nil {
			return false, err
		}
		s.show()

	case "n", "new":
		difficulty := s.difficulty
		if len(args) > 0 {
			difficulty = args[0]
		}
		if err := s.newGame(difficulty); err != nil {
			return false, err
		}

	case "s", "show":
		s.show()

	case "h", "help":
		s.output.PrintMessage(sessionHelp)

	case "q", "quit", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("%w: unknown command %q", model.ErrInvalidCommand, fields[0])
	}

	return false, nil
}

func (s *Session) newGame(difficulty string) error {
	g, err := s.controller.NewGame(difficulty)
	if err != nil {
		return fmt.Errorf("%w: %q", err, difficulty)
	}
	s.game = g
	s.difficulty = g.Difficulty.Name
	s.show()
	return nil
}

func (s *Session) show() {
	s.output.Print(NewGameView(s.game, s.controller.Summary(s.game)))
}

func parsePosition(args []string) (model.Position, error) {
	if len(args) != 2 {
		return model.Position{}, fmt.Errorf("%w: expected ROW COL", model.ErrInvalidCommand)
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: bad row %q", model.ErrInvalidCommand, args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: bad column %q", model.ErrInvalidCommand, args[1])
	}
	return model.Position{Row: row, Col: col}, nil
}

package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateFresh      GameState = "fresh"       // Board dealt, nothing revealed yet
	GameStateInProgress GameState = "in_progress" // At least one safe cell revealed
	GameStateWon        GameState = "won"         // Every safe cell revealed
	GameStateLost       GameState = "lost"        // A mine was revealed
)

// IsTerminal returns true for states that accept no further moves
func (s GameState) IsTerminal() bool {
	return s == GameStateWon || s == GameStateLost
}

// Timer is the stopwatch state for a game. Elapsed time is Accumulated plus,
// while Running, the time since StartedAt.
type Timer struct {
	Running     bool
	StartedAt   time.Time
	Accumulated time.Duration
}

// Game is a single Minesweeper session
type Game struct {
	ID         GameID
	Difficulty Difficulty
	State      GameState
	Paused     bool

	Board *Board
	Timer Timer

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOver returns true once the game has been won or lost
func (g *Game) IsOver() bool {
	return g.State.IsTerminal()
}

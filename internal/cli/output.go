package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/bot"
	"github.com/mcoot/minesweeper/internal/services/game"
)

// Board glyphs used in text and JSON renderings
const (
	glyphHidden  = '-'
	glyphFlagged = 'F'
	glyphMine    = '*'
	glyphEmpty   = '.'
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	switch o.format {
	case OutputJSON:
		o.printJSON(data)
	case OutputYAML:
		o.printYAML(data)
	default:
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	errData := map[string]any{
		"error": map[string]string{
			"message": err.Error(),
		},
	}
	switch o.format {
	case OutputJSON:
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	case OutputYAML:
		data, _ := yaml.Marshal(errData)
		fmt.Fprint(o.errOut, "---\n"+string(data))
	default:
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	switch o.format {
	case OutputJSON:
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	case OutputYAML:
		o.printYAML(map[string]string{"message": msg})
	default:
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// printYAML writes each value as its own document so a session's output
// can be read back as a stream
func (o *Output) printYAML(data any) {
	out, err := yaml.Marshal(data)
	if err != nil {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
		return
	}
	fmt.Fprint(o.out, "---\n"+string(out))
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameView:
		o.printGameView(v)
	case []DifficultyInfo:
		o.printDifficulties(v)
	case BotRun:
		o.printBotRun(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameView is the player's view of a game
type GameView struct {
	ID             string   `json:"id" yaml:"id"`
	Difficulty     string   `json:"difficulty" yaml:"difficulty"`
	State          string   `json:"state" yaml:"state"`
	Paused         bool     `json:"paused" yaml:"paused"`
	Size           int      `json:"size" yaml:"size"`
	MineCount      int      `json:"mine_count" yaml:"mine_count"`
	FlagsPlaced    int      `json:"flags_placed" yaml:"flags_placed"`
	RemainingMines int      `json:"remaining_mines" yaml:"remaining_mines"`
	CellsRevealed  int      `json:"cells_revealed" yaml:"cells_revealed"`
	ElapsedSeconds int      `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	HitMine        bool     `json:"hit_mine,omitempty" yaml:"hit_mine,omitempty"`
	Rows           []string `json:"rows" yaml:"rows"`
}

// NewGameView renders a game and the result of the last move. Unrevealed
// mines are never shown.
func NewGameView(g *model.Game, result *game.MoveResult) GameView {
	view := GameView{
		ID:             string(g.ID),
		Difficulty:     g.Difficulty.Name,
		State:          string(result.State),
		Paused:         g.Paused,
		Size:           g.Board.Size,
		MineCount:      g.Board.MineCount,
		FlagsPlaced:    result.FlagsPlaced,
		RemainingMines: result.RemainingMines,
		CellsRevealed:  result.CellsRevealed,
		ElapsedSeconds: result.ElapsedSeconds,
		HitMine:        result.HitMine,
		Rows:           make([]string, g.Board.Size),
	}

	for row := 0; row < g.Board.Size; row++ {
		var sb strings.Builder
		for col := 0; col < g.Board.Size; col++ {
			sb.WriteByte(cellGlyph(g.Board.Cells[row][col]))
		}
		view.Rows[row] = sb.String()
	}

	return view
}

func cellGlyph(cell model.Cell) byte {
	switch {
	case cell.IsFlagged:
		return glyphFlagged
	case !cell.IsRevealed:
		return glyphHidden
	case cell.IsMine:
		return glyphMine
	case cell.AdjacentMines == 0:
		return glyphEmpty
	default:
		return byte('0' + cell.AdjacentMines)
	}
}

// DifficultyInfo describes one difficulty level
type DifficultyInfo struct {
	Name      string `json:"name" yaml:"name"`
	Size      int    `json:"size" yaml:"size"`
	MineCount int    `json:"mine_count" yaml:"mine_count"`
}

// NewDifficultyInfos lists every difficulty level
func NewDifficultyInfos() []DifficultyInfo {
	var infos []DifficultyInfo
	for _, d := range model.Difficulties() {
		infos = append(infos, DifficultyInfo{Name: d.Name, Size: d.Size, MineCount: d.MineCount})
	}
	return infos
}

// BotMove is one move from a bot run
type BotMove struct {
	Type  string `json:"type" yaml:"type"`
	Row   int    `json:"row" yaml:"row"`
	Col   int    `json:"col" yaml:"col"`
	Guess bool   `json:"guess" yaml:"guess"`
	State string `json:"state" yaml:"state"`
}

// BotRun is the outcome of a bot playing one game
type BotRun struct {
	Strategy string    `json:"strategy" yaml:"strategy"`
	Moves    []BotMove `json:"moves" yaml:"moves"`
	Game     GameView  `json:"game" yaml:"game"`
}

// NewBotRun summarises a finished bot game
func NewBotRun(strategy string, actions []bot.Action, view GameView) BotRun {
	run := BotRun{
		Strategy: strategy,
		Moves:    make([]BotMove, 0, len(actions)),
		Game:     view,
	}
	for _, a := range actions {
		run.Moves = append(run.Moves, BotMove{
			Type:  string(a.Move.Type),
			Row:   a.Move.Position.Row,
			Col:   a.Move.Position.Col,
			Guess: a.Move.Guess,
			State: string(a.Result.State),
		})
	}
	return run
}

func (o *Output) printGameView(g GameView) {
	fmt.Fprintf(o.out, "Game: %s (%s)\n", g.ID, g.Difficulty)

	state := g.State
	if g.Paused {
		state += " (paused)"
	}
	fmt.Fprintf(o.out, "State: %s\n", state)
	fmt.Fprintf(o.out, "Mines: %d  Flags: %d  Time: %ds\n", g.RemainingMines, g.FlagsPlaced, g.ElapsedSeconds)

	if g.HitMine {
		fmt.Fprintln(o.out, "BOOM! You hit a mine.")
	} else if g.State == string(model.GameStateWon) {
		fmt.Fprintln(o.out, "You cleared the board!")
	}

	if g.Paused {
		return
	}

	fmt.Fprintln(o.out)
	o.printBoard(g.Rows)
}

func (o *Output) printBoard(rows []string) {
	if len(rows) == 0 {
		return
	}

	size := len(rows)

	// Print column headers
	fmt.Fprint(o.out, "    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.out, "%3d", col)
	}
	fmt.Fprintln(o.out)

	// Print rows
	for row := 0; row < size; row++ {
		fmt.Fprintf(o.out, "%3d |", row)
		for col := 0; col < size; col++ {
			fmt.Fprintf(o.out, "%3c", rows[row][col])
		}
		fmt.Fprintln(o.out)
	}
}

func (o *Output) printDifficulties(infos []DifficultyInfo) {
	for _, d := range infos {
		fmt.Fprintf(o.out, "%-8s %2dx%-2d %3d mines\n", d.Name, d.Size, d.Size, d.MineCount)
	}
}

func (o *Output) printBotRun(r BotRun) {
	fmt.Fprintf(o.out, "Strategy: %s\n", model.BotStrategyDisplayName(r.Strategy))
	for i, m := range r.Moves {
		guess := ""
		if m.Guess {
			guess = " (guess)"
		}
		fmt.Fprintf(o.out, "%4d. %-6s %d,%d%s\n", i+1, m.Type, m.Row, m.Col, guess)
	}
	fmt.Fprintln(o.out)
	o.printGameView(r.Game)
}

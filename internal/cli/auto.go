package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper/internal/model"
)

func newAutoCmd() *cobra.Command {
	var maxMoves int

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Let a bot play a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())

			if !model.IsValidBotStrategy(cfg.Strategy) {
				err := fmt.Errorf("%w: %q (want one of %s)", model.ErrUnknownBotStrategy,
					cfg.Strategy, strings.Join(model.ValidBotStrategies(), ", "))
				output.PrintError(err)
				return err
			}

			botService, err := app.NewBotService(cfg.Strategy)
			if err != nil {
				output.PrintError(err)
				return err
			}

			g, err := app.GameController.NewGame(cfg.Difficulty)
			if err != nil {
				output.PrintError(err)
				return err
			}

			actions, err := botService.Play(g, maxMoves)
			if err != nil {
				output.PrintError(err)
				return err
			}

			view := NewGameView(g, app.GameController.Summary(g))
			output.Print(NewBotRun(cfg.Strategy, actions, view))
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "Bot strategy: random, logic (env: MINESWEEPER_STRATEGY)")
	cmd.Flags().IntVar(&maxMoves, "max-moves", 0, "Stop after this many moves (0 for no limit)")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long: `Deal a game and read commands from stdin, one per line.

` + sessionHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			session := NewSession(app.GameController, output, cfg.Difficulty)

			if err := session.Start(); err != nil {
				output.PrintError(err)
				return err
			}
			if cfg.Output == OutputText {
				output.PrintMessage("Type 'h' for help.")
			}
			return session.Run(cmd.InOrStdin())
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

func newDifficultiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "difficulties",
		Short: "List difficulty levels",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			output.Print(NewDifficultyInfos())
		},
	}
}

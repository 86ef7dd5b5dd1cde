package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Play Minesweeper in the terminal",
		Long: `minesweeper is a terminal Minesweeper.

Play interactively by typing commands on stdin, or let a bot play a game.
Boards come in three sizes: easy (10x10, 10 mines), medium (15x15, 40 mines)
and hard (20x20, 99 mines).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				cfg.SeedSet = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			factoryCfg := factory.Config{Logger: logger}
			if cfg.SeedSet {
				seed := cfg.Seed
				factoryCfg.Seed = &seed
			}
			app = factory.New(factoryCfg)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Difficulty, "difficulty", "d", cfg.Difficulty, "Difficulty: easy, medium, hard (env: MINESWEEPER_DIFFICULTY)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for reproducible boards (env: MINESWEEPER_SEED)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json, yaml (env: MINESWEEPER_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging to stderr")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newAutoCmd())
	rootCmd.AddCommand(newDifficultiesCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

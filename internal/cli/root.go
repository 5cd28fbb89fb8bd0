package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmorgal/blokus-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "blokus",
		Short: "CLI for the Blokus move generator and AI opponent engine",
		Long: `blokus drives the engine from the command line.

It lists and renders the 21 canonical pieces, maps the legal anchors for a
piece on a position, and plays complete games between the AI tiers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app = factory.New(factory.Config{Logger: newLogger(cfg.Verbose)})
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: BLOKUS_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose engine logging on stderr")

	// Add subcommands
	rootCmd.AddCommand(newPiecesCmd())
	rootCmd.AddCommand(newMovesCmd())
	rootCmd.AddCommand(newSelfplayCmd())
	rootCmd.AddCommand(newBenchCmd())

	return rootCmd
}

// newLogger builds the engine logger: quiet by default, debug text on
// stderr when verbose so game progress stays separate from command output
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

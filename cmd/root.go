package cmd

import (
	"io"
	"log/slog"
	"os"

	colorize "github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
)

var (
	configPath string
	verbose    bool
	noColor    bool

	// logger is set up before any subcommand runs
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Play blackjack against the dealer in your terminal",
	Long: `Blackjack is a single-player card game against an automated dealer.
Bet chips from your bankroll, hit or stand, and try to beat the dealer without going over 21.
Blackjack pays 3:2, the dealer stands on 17.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine, the file only adds BLACKJACK_* overrides
		_ = godotenv.Load()

		config.SetPath(configPath)
		if noColor {
			colorize.NoColor = true
		}
		logger = newLogger(verbose)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default $XDG_CONFIG_HOME/blackjack/config.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every deal, hit and settlement")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	RootCmd.AddCommand(validateCmd)
}

// newLogger returns a logger writing through pterm to stderr
func newLogger(verbose bool) *slog.Logger {
	level := pterm.LogLevelWarn
	if verbose {
		level = pterm.LogLevelDebug
	}

	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithWriter(os.Stderr).WithLevel(level))
	return slog.New(handler)
}

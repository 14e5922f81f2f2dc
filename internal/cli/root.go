// Package cli provides the command-line interface for make10.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

var verbose bool

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "make10",
		Short: "make10 - reach 10 with four digits",
		Long: `make10 judges, converts and solves four-digit formulas that must
evaluate to exactly 10, and plays the 4x4 board game in the terminal.`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			_ = godotenv.Load()
			setupLogging(cmd, verbose)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newPostfixCommand())
	rootCmd.AddCommand(newInfixCommand())
	rootCmd.AddCommand(newSolveCommand())
	rootCmd.AddCommand(newBoardCommand())
	rootCmd.AddCommand(newPlayCommand())

	return rootCmd
}

// setupLogging routes zerolog to a console writer on stderr.
func setupLogging(cmd *cobra.Command, verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

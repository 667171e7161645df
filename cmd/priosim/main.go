// Command priosim runs preemptive priority scheduling simulations from the command line or
// serves them over HTTP.
//
// @title Priority Scheduling Simulator API
// @version 1.0
// @description Preemptive priority CPU scheduling simulations with a stored run history.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/Gthulhu/priosim/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	logger.InitLoggerWithWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	// .env only seeds PRIOSIM_* variables for viper; it is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Logger(context.Background()).Warn().Err(err).Msg("failed to load .env")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	rootCmd := &cobra.Command{
		Use:   "priosim",
		Short: "Simulate preemptive priority CPU scheduling",
		Long: `priosim schedules a set of processes on one processor, always running the ready
process with the lowest priority value, and reports the resulting timeline together
with waiting and turnaround times.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetLevel(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(presetsCmd())
	rootCmd.AddCommand(snapshotCmd())
	return rootCmd
}

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rocauc",
		Short: "rocauc - ROC curve and AUC for binary classifier scores",
		Long: `rocauc computes the Receiver Operating Characteristic curve and the
Area Under it for a set of binary labels and classifier scores.

Without --labels/--scores it evaluates the built-in stress-detection
example. Settings are read from .rocauc.yaml when one is found in the
working directory or a parent.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newPlotCommand())
	cmd.AddCommand(newReportCommand())
	cmd.AddCommand(newValidateCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}

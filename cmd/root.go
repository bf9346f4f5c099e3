package cmd

import (
	"fmt"
	"os"

	"guild-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "guild-manager",
	Short: "Discord guild configuration as code",
	Long: `Guild Manager converges a Discord guild (name, categories and text
channels) to a YAML document. It runs as a chat bot answering ~set, as an
HTTP API, or as a one-shot CLI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with development timestamps reads better in a terminal.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"guild-manager/core/settings"

	"github.com/spf13/cobra"
)

var validateFile string

// validateCmd checks a configuration file without contacting Discord.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a YAML configuration without applying it",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(validateFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", validateFile, err)
		}

		cfg, err := settings.Parse(raw)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: server %q, %d categories, %d channels\n",
			validateFile, cfg.Server.Name, len(cfg.Server.Categories), cfg.Server.ChannelCount())
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to the YAML configuration")
	_ = validateCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(validateCmd)
}

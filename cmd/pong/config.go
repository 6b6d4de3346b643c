package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration pong would use, as YAML.

The output is a complete config file and can be saved as a starting point:
  pong config > ~/.pong/pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

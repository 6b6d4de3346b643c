// pong is a two-player hot-seat Pong game for the terminal.
//
// Usage:
//
//	pong                     - Play a match (same as pong play)
//	pong play                - Play a match
//	pong render --ticks 500  - Simulate headlessly and write the last frame as PNG
//	pong config              - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.pong/pong.yaml, ./configs/pong.yaml)
//	--seed <value>      - RNG seed for serve directions (0 = time based)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log file; play logs nowhere else while it owns the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-player Pong in your terminal",
	Long: `Pong is a two-player hot-seat game played on one keyboard.

Player 1 uses Q/A, player 2 uses P/L, B pauses.
Keys can be rebound in the controls section of the config.

Examples:
  pong
  pong play --seed 42
  pong render --ticks 1000 --out frame.png
  pong config > ~/.pong/pong.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var flagScreenshotDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a hot-seat match",
	Long: `Start a two-player match in the terminal.

Default controls:
  Q / A      - Player 1 up / down
  P / L      - Player 2 up / down
  B          - Pause / resume
  Ctrl+S     - Save a PNG screenshot
  Esc/Ctrl+C - Quit

Examples:
  pong play
  pong play --seed 7 --log-file pong.log --log-level debug
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Screenshot directory (default: ~/.pong/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns stdout, so logs are discarded unless --log-file is set
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed

	return tui.Run(tui.Options{
		Config:        cfg,
		Runtime:       rt,
		Logger:        logger,
		ScreenshotDir: flagScreenshotDir,
	})
}

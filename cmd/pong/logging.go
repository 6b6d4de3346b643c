package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// newLogger builds the command logger. When --log-file is set logs go there,
// otherwise to fallback. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig resolves --config and logs where the configuration came from.
func loadConfig(logger *log.Logger) (config.PongConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

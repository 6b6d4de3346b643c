package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in Pong configuration:
// an 800x500 field with 20x100 paddles and a radius-15 ball.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 500,
		},
		Board: BoardConfig{
			Y:   50,
			P1X: 300,
			P2X: 500,
		},
		Paddle: PaddleConfig{
			Width:  20,
			Height: 100,
			P1X:    10,
			P2X:    770,
			Step:   6,
		},
		Ball: BallConfig{
			Radius:  15,
			StartDX: 4.5,
			StartDY: 1.5,
			SpeedUp: 0.05,
		},
		Timing: TimingConfig{
			Interval: 10 * time.Millisecond,
		},
		Controls: ControlsConfig{
			P1Up:       []string{"q"},
			P1Down:     []string{"a"},
			P2Up:       []string{"p"},
			P2Down:     []string{"l"},
			Pause:      []string{"b"},
			Quit:       []string{"ctrl+c", "esc"},
			Screenshot: []string{"ctrl+s"},
		},
		Input: InputConfig{
			HoldInitial: 500 * time.Millisecond,
			HoldRepeat:  100 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}

// Package config provides YAML-based configuration loading for the Pong
// simulation and its terminal host.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PongConfig contains every tunable constant of a Pong session.
// A single value is built once at startup and passed to constructors by value.
type PongConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Board    BoardConfig    `yaml:"board"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Timing   TimingConfig   `yaml:"timing"`
	Controls ControlsConfig `yaml:"controls"`
	Input    InputConfig    `yaml:"input"`
}

// FieldConfig defines the playfield size in drawing units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BoardConfig defines where the score labels are drawn.
type BoardConfig struct {
	Y   float64 `yaml:"y"`    // Text baseline
	P1X float64 `yaml:"p1_x"` // Left player's score
	P2X float64 `yaml:"p2_x"` // Right player's score
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	P1X    float64 `yaml:"p1_x"` // Left paddle's fixed x
	P2X    float64 `yaml:"p2_x"` // Right paddle's fixed x
	Step   float64 `yaml:"step"` // Vertical distance per tick
}

// BallConfig defines ball geometry and its serve velocity.
type BallConfig struct {
	Radius  float64 `yaml:"radius"`
	StartDX float64 `yaml:"start_dx"`
	StartDY float64 `yaml:"start_dy"`
	SpeedUp float64 `yaml:"speed_up"` // Added to |dx| after every point
}

// TimingConfig defines the fixed tick period.
type TimingConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// ControlsConfig maps logical controls to terminal key names
// (as reported by Bubble Tea, e.g. "q", "up", "ctrl+c").
type ControlsConfig struct {
	P1Up       []string `yaml:"p1_up"`
	P1Down     []string `yaml:"p1_down"`
	P2Up       []string `yaml:"p2_up"`
	P2Down     []string `yaml:"p2_down"`
	Pause      []string `yaml:"pause"`
	Quit       []string `yaml:"quit"`
	Screenshot []string `yaml:"screenshot"`
}

// InputConfig tunes key-release detection for terminals, which only report presses.
// A held key is considered released after HoldInitial of silence following the
// first press, or HoldRepeat once auto-repeat has been seen.
type InputConfig struct {
	HoldInitial time.Duration `yaml:"hold_initial"`
	HoldRepeat  time.Duration `yaml:"hold_repeat"`
}

// BallStartX returns the ball's serve x (centre of the field).
func (c PongConfig) BallStartX() float64 {
	return c.Field.Width / 2
}

// BallStartY returns the ball's serve y (centre of the field).
func (c PongConfig) BallStartY() float64 {
	return c.Field.Height / 2
}

// PaddleStartY returns the y at which both paddles start (vertically centred).
func (c PongConfig) PaddleStartY() float64 {
	return (c.Field.Height - c.Paddle.Height) / 2
}

// PaddleMaxY returns the largest y a paddle may occupy.
func (c PongConfig) PaddleMaxY() float64 {
	return c.Field.Height - c.Paddle.Height
}

// bindings returns every key list with its yaml name, in a stable order.
func (c ControlsConfig) bindings() []struct {
	name string
	keys []string
} {
	return []struct {
		name string
		keys []string
	}{
		{"p1_up", c.P1Up},
		{"p1_down", c.P1Down},
		{"p2_up", c.P2Up},
		{"p2_down", c.P2Down},
		{"pause", c.Pause},
		{"quit", c.Quit},
		{"screenshot", c.Screenshot},
	}
}

// Validate checks that the configuration describes a playable field.
// All problems are reported together.
func (c PongConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must have positive size, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle must have positive size, got %gx%g", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Height > c.Field.Height {
		errs = append(errs, fmt.Errorf("paddle height %g exceeds field height %g", c.Paddle.Height, c.Field.Height))
	}
	if c.Paddle.P1X < 0 || c.Paddle.P2X+c.Paddle.Width > c.Field.Width || c.Paddle.P1X >= c.Paddle.P2X {
		errs = append(errs, fmt.Errorf("paddles must sit left-to-right inside the field, got p1_x=%g p2_x=%g", c.Paddle.P1X, c.Paddle.P2X))
	}
	if c.Paddle.Step <= 0 {
		errs = append(errs, fmt.Errorf("paddle step must be positive, got %g", c.Paddle.Step))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %g", c.Ball.Radius))
	}
	if c.Ball.StartDX == 0 {
		errs = append(errs, errors.New("ball start_dx must be non-zero"))
	}
	if c.Ball.SpeedUp < 0 {
		errs = append(errs, fmt.Errorf("ball speed_up must not be negative, got %g", c.Ball.SpeedUp))
	}
	if c.Timing.Interval <= 0 {
		errs = append(errs, fmt.Errorf("timing interval must be positive, got %s", c.Timing.Interval))
	}
	if c.Input.HoldInitial <= 0 || c.Input.HoldRepeat <= 0 {
		errs = append(errs, fmt.Errorf("input hold windows must be positive, got %s/%s", c.Input.HoldInitial, c.Input.HoldRepeat))
	}

	// Every binding needs at least one key, and no key may serve two bindings
	owner := make(map[string]string)
	for _, b := range c.Controls.bindings() {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("controls.%s has no keys", b.name))
			continue
		}
		for _, k := range b.keys {
			if prev, dup := owner[k]; dup {
				errs = append(errs, fmt.Errorf("key %q bound to both controls.%s and controls.%s", k, prev, b.name))
				continue
			}
			owner[k] = b.name
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Paddle is a vertical bat with a fixed x and a clamped y.
type Paddle struct {
	x    float64
	y    float64
	maxY float64
	step float64
	w, h float64
}

// NewPaddle creates a paddle at the given x, vertically centred on the field.
func NewPaddle(cfg config.PongConfig, x float64) *Paddle {
	return &Paddle{
		x:    x,
		y:    cfg.PaddleStartY(),
		maxY: cfg.PaddleMaxY(),
		step: cfg.Paddle.Step,
		w:    cfg.Paddle.Width,
		h:    cfg.Paddle.Height,
	}
}

// X returns the paddle's fixed left edge.
func (p *Paddle) X() float64 { return p.x }

// Y returns the paddle's top edge.
func (p *Paddle) Y() float64 { return p.y }

// SetY moves the paddle to newY, clamped so it never leaves the field.
func (p *Paddle) SetY(newY float64) {
	p.y = core.ClampF(newY, 0, p.maxY)
}

// StepUp moves the paddle one step towards the top wall.
func (p *Paddle) StepUp() {
	p.SetY(p.y - p.step)
}

// StepDown moves the paddle one step towards the bottom wall.
func (p *Paddle) StepDown() {
	p.SetY(p.y + p.step)
}

// spansY reports whether y lies within the paddle's vertical extent, edges included.
func (p *Paddle) spansY(y float64) bool {
	return core.InRange(y, p.y, p.y+p.h)
}

// spansX reports whether x lies within the paddle's horizontal extent, edges included.
func (p *Paddle) spansX(x float64) bool {
	return core.InRange(x, p.x, p.x+p.w)
}

func (p *Paddle) draw(s Surface) {
	s.FillRect(p.x, p.y, p.w, p.h)
}

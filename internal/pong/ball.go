package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Serve direction draw: an integer in [serveDrawMin, serveDrawMax).
// Draws above serveDrawFlip head upwards, so dy is one of {1, 2, -3}.
const (
	serveDrawMin  = 1
	serveDrawMax  = 4
	serveDrawFlip = 2
)

// Ball is the puck: a centre position and a per-tick velocity.
type Ball struct {
	X, Y   float64
	DX, DY float64

	radius  float64
	speedUp float64
	startX  float64
	startY  float64
	fieldW  float64
	fieldH  float64
	rng     core.Float64Source
}

// NewBall creates a ball at the field centre with the configured serve velocity.
func NewBall(cfg config.PongConfig, rng core.Float64Source) *Ball {
	return &Ball{
		X:       cfg.BallStartX(),
		Y:       cfg.BallStartY(),
		DX:      cfg.Ball.StartDX,
		DY:      cfg.Ball.StartDY,
		radius:  cfg.Ball.Radius,
		speedUp: cfg.Ball.SpeedUp,
		startX:  cfg.BallStartX(),
		startY:  cfg.BallStartY(),
		fieldW:  cfg.Field.Width,
		fieldH:  cfg.Field.Height,
		rng:     rng,
	}
}

// Move advances the ball by one tick against the two players.
// Checks run in a fixed order: walls, paddles, scoring, then integration.
// After a point the ball re-serves and still advances from the centre this tick.
func (b *Ball) Move(left, right *Player) {
	if b.shouldBounceFromTopWall() || b.shouldBounceFromBottomWall() {
		b.DY = -b.DY
	}
	if b.shouldBounceFromLeftPaddle(left.Paddle) || b.shouldBounceFromRightPaddle(right.Paddle) {
		b.DX = -b.DX
	}

	if b.isOutsideOnLeft() {
		b.moveToStart()
		right.Score++
	} else if b.isOutsideOnRight() {
		b.moveToStart()
		left.Score++
	}

	b.X += b.DX
	b.Y += b.DY
}

func (b *Ball) shouldBounceFromTopWall() bool {
	return b.Y < b.radius && b.DY < 0
}

func (b *Ball) shouldBounceFromBottomWall() bool {
	return b.Y+b.radius > b.fieldH && b.DY > 0
}

// Paddle hits only look at the ball's y centre, not its vertical radius.
func (b *Ball) shouldBounceFromLeftPaddle(p *Paddle) bool {
	return b.DX < 0 && p.spansX(b.X-b.radius) && p.spansY(b.Y)
}

func (b *Ball) shouldBounceFromRightPaddle(p *Paddle) bool {
	return b.DX > 0 && p.spansX(b.X+b.radius) && p.spansY(b.Y)
}

func (b *Ball) isOutsideOnLeft() bool {
	return b.X+b.radius < 0
}

func (b *Ball) isOutsideOnRight() bool {
	return b.X-b.radius > b.fieldW
}

// moveToStart re-serves the ball from the centre after a point.
// Horizontal direction is kept and its magnitude grows by speedUp.
func (b *Ball) moveToStart() {
	b.X = b.startX
	b.Y = b.startY
	b.DY = b.serveDY()
	b.DX = b.faster()
}

// serveDY draws the vertical serve velocity: 1, 2 or -3, never -1, -2 or 3.
func (b *Ball) serveDY() float64 {
	r := core.RandomInt(b.rng, serveDrawMin, serveDrawMax)
	if r > serveDrawFlip {
		return float64(-r)
	}
	return float64(r)
}

func (b *Ball) faster() float64 {
	if b.DX > 0 {
		return b.DX + b.speedUp
	}
	return b.DX - b.speedUp
}

func (b *Ball) draw(s Surface) {
	s.FillCircle(b.X, b.Y, b.radius)
}

// Package pong implements a two-player Pong simulation.
// Player 1 controls the left paddle, Player 2 the right one. The game advances
// in fixed ticks and draws itself onto any Surface; it owns no timers or I/O.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Game owns the ball, both players and the pause flag.
type Game struct {
	cfg    config.PongConfig
	paused bool
	ball   *Ball
	p1     *Player // Left
	p2     *Player // Right
	ticks  uint64
}

// New creates a game in its starting state: centred ball and paddles, 0-0, running.
// rng feeds the serve direction draw after each point.
func New(cfg config.PongConfig, rng core.Float64Source) *Game {
	return &Game{
		cfg:  cfg,
		ball: NewBall(cfg, rng),
		p1:   NewPlayer(cfg, cfg.Paddle.P1X, cfg.Board.P1X),
		p2:   NewPlayer(cfg, cfg.Paddle.P2X, cfg.Board.P2X),
	}
}

// Ball returns the game's ball.
func (g *Game) Ball() *Ball { return g.ball }

// P1 returns the left player.
func (g *Game) P1() *Player { return g.p1 }

// P2 returns the right player.
func (g *Game) P2() *Player { return g.p2 }

// Paused reports whether ticks are currently ignored.
func (g *Game) Paused() bool { return g.paused }

// Ticks returns how many updates have run.
func (g *Game) Ticks() uint64 { return g.ticks }

// Update advances the simulation by one tick: ball first, then both paddles.
// It ignores the pause flag; Tick is the gated entry point.
func (g *Game) Update() {
	g.ball.Move(g.p1, g.p2)
	g.p1.MakeAction()
	g.p2.MakeAction()
	g.ticks++
}

// Draw renders the current state. It never mutates the game.
func (g *Game) Draw(s Surface) {
	s.ClearRect(0, 0, g.cfg.Field.Width, g.cfg.Field.Height)
	g.ball.draw(s)
	g.p1.draw(s)
	g.p2.draw(s)
}

// Tick is the fixed-interval callback. While paused it does nothing at all,
// so the last drawn frame stays on the surface.
func (g *Game) Tick(s Surface) {
	if g.paused {
		return
	}
	g.Update()
	g.Draw(s)
}

// KeyDown handles a control being pressed.
// Movement controls set the owning player's action; Pause toggles the pause flag.
func (g *Game) KeyDown(c core.Control) {
	if c == core.ControlPause {
		g.paused = !g.paused
		return
	}
	if p, action, ok := g.binding(c); ok {
		p.Action = action
	}
}

// KeyUp handles a control being released. The player stops only if the
// released control is the one currently driving them, so a stale release
// of the opposite direction does not cancel an active movement.
func (g *Game) KeyUp(c core.Control) {
	if p, action, ok := g.binding(c); ok && p.Action == action {
		p.Action = ActionStop
	}
}

// binding resolves a movement control to its player and action.
func (g *Game) binding(c core.Control) (*Player, Action, bool) {
	switch c {
	case core.ControlP1Up:
		return g.p1, ActionUp, true
	case core.ControlP1Down:
		return g.p1, ActionDown, true
	case core.ControlP2Up:
		return g.p2, ActionUp, true
	case core.ControlP2Down:
		return g.p2, ActionDown, true
	}
	return nil, ActionStop, false
}

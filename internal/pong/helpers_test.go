package pong

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// seqSource replays the given draws in order, then repeats the last one.
type seqSource struct {
	draws []float64
	next  int
}

func (s *seqSource) Float64() float64 {
	v := s.draws[min(s.next, len(s.draws)-1)]
	s.next++
	return v
}

// recordingSurface captures draw calls as readable strings.
type recordingSurface struct {
	calls []string
}

func (r *recordingSurface) ClearRect(x, y, w, h float64) {
	r.calls = append(r.calls, fmt.Sprintf("clear %g,%g %gx%g", x, y, w, h))
}

func (r *recordingSurface) FillCircle(x, y, rad float64) {
	r.calls = append(r.calls, fmt.Sprintf("circle %g,%g r%g", x, y, rad))
}

func (r *recordingSurface) FillRect(x, y, w, h float64) {
	r.calls = append(r.calls, fmt.Sprintf("rect %g,%g %gx%g", x, y, w, h))
}

func (r *recordingSurface) FillText(text string, x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("text %q %g,%g", text, x, y))
}

// newTestGame builds a default 800x500 game whose serve draws always yield dy=1.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	return New(config.DefaultPongConfig(), &seqSource{draws: []float64{0}})
}

// placeBall puts the ball at (x, y) moving by (dx, dy).
func placeBall(g *Game, x, y, dx, dy float64) {
	g.ball.X, g.ball.Y = x, y
	g.ball.DX, g.ball.DY = dx, dy
}

package pong

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestNewGameStartState(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	want := Snapshot{
		BallX:    400,
		BallY:    250,
		BallDX:   4.5,
		BallDY:   1.5,
		Paddle1Y: 200,
		Paddle2Y: 200,
		Action1:  ActionStop,
		Action2:  ActionStop,
	}
	if snap != want {
		t.Errorf("start snapshot = %+v, expected %+v", snap, want)
	}
	if g.P1().Paddle.X() != 10 || g.P2().Paddle.X() != 770 {
		t.Errorf("paddle x = (%g, %g), expected (10, 770)", g.P1().Paddle.X(), g.P2().Paddle.X())
	}
}

func TestLeftPlayerScoresFromServe(t *testing.T) {
	g := New(config.DefaultPongConfig(), &seqSource{draws: []float64{0.9}})

	ticks := 0
	for g.P1().Score == 0 && ticks < 500 {
		g.Update()
		ticks++
	}

	if ticks != 94 {
		t.Errorf("left player should score on tick 94, scored on tick %d", ticks)
	}
	if g.P1().Score != 1 || g.P2().Score != 0 {
		t.Fatalf("score = %d-%d, expected 1-0", g.P1().Score, g.P2().Score)
	}

	b := g.Ball()
	if math.Abs(b.DX-4.55) > 1e-9 {
		t.Errorf("dx = %g, expected 4.55", b.DX)
	}
	if b.DY != -3 {
		t.Errorf("dy = %g, expected -3 from a 0.9 draw", b.DY)
	}
	// Reset to (400, 250) then one integration step on the same tick
	if b.X != 400+b.DX || b.Y != 250+b.DY {
		t.Errorf("ball = (%g, %g), expected one step from (400, 250)", b.X, b.Y)
	}
}

func TestUpdateOrder(t *testing.T) {
	g := newTestGame(t)
	g.P1().Action = ActionUp
	g.P2().Action = ActionDown

	g.Update()

	snap := g.Snapshot()
	if snap.BallX != 404.5 || snap.BallY != 251.5 {
		t.Errorf("ball = (%g, %g), expected (404.5, 251.5)", snap.BallX, snap.BallY)
	}
	if snap.Paddle1Y != 194 || snap.Paddle2Y != 206 {
		t.Errorf("paddles = (%g, %g), expected (194, 206)", snap.Paddle1Y, snap.Paddle2Y)
	}
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", snap.Tick)
	}
}

func TestDrawOrder(t *testing.T) {
	g := newTestGame(t)
	g.P2().Score = 3
	s := &recordingSurface{}

	g.Draw(s)

	want := []string{
		"clear 0,0 800x500",
		"circle 400,250 r15",
		`text "0" 300,50`,
		"rect 10,200 20x100",
		`text "3" 500,50`,
		"rect 770,200 20x100",
	}
	if !reflect.DeepEqual(s.calls, want) {
		t.Errorf("draw calls:\n got %q\nwant %q", s.calls, want)
	}
}

func TestDrawIsPure(t *testing.T) {
	g := newTestGame(t)
	before := g.Snapshot()

	g.Draw(&recordingSurface{})

	if g.Snapshot() != before {
		t.Error("Draw should not mutate the game")
	}
}

func TestTickUpdatesThenDraws(t *testing.T) {
	g := newTestGame(t)
	s := &recordingSurface{}

	g.Tick(s)

	if g.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", g.Ticks())
	}
	if len(s.calls) == 0 || s.calls[1] != "circle 404.5,251.5 r15" {
		t.Errorf("Tick should draw the updated ball, got %q", s.calls)
	}
}

func TestPausedTickIsNoop(t *testing.T) {
	g := newTestGame(t)
	g.P1().Action = ActionDown
	g.Tick(&recordingSurface{})

	g.KeyDown(core.ControlPause)
	if !g.Paused() {
		t.Fatal("pause key should pause the game")
	}
	before := g.Snapshot()
	s := &recordingSurface{}

	for i := 0; i < 10; i++ {
		g.Tick(s)
	}

	if g.Snapshot() != before {
		t.Errorf("paused ticks changed state:\n got %+v\nwant %+v", g.Snapshot(), before)
	}
	if len(s.calls) != 0 {
		t.Errorf("paused ticks should not draw, got %q", s.calls)
	}

	g.KeyDown(core.ControlPause)
	g.Tick(s)
	if g.Paused() || g.Ticks() != before.Tick+1 {
		t.Errorf("second pause press should resume; paused=%v ticks=%d", g.Paused(), g.Ticks())
	}
}

func TestPauseIgnoresKeyUp(t *testing.T) {
	g := newTestGame(t)
	g.KeyDown(core.ControlPause)
	g.KeyUp(core.ControlPause)

	if !g.Paused() {
		t.Error("releasing the pause key should not unpause")
	}
}

func TestKeyDownSetsActions(t *testing.T) {
	tests := []struct {
		control core.Control
		p1, p2  Action
	}{
		{core.ControlP1Up, ActionUp, ActionStop},
		{core.ControlP1Down, ActionDown, ActionStop},
		{core.ControlP2Up, ActionStop, ActionUp},
		{core.ControlP2Down, ActionStop, ActionDown},
		{core.ControlNone, ActionStop, ActionStop},
		{core.Control(42), ActionStop, ActionStop},
	}

	for _, tc := range tests {
		t.Run(tc.control.String(), func(t *testing.T) {
			g := newTestGame(t)
			g.KeyDown(tc.control)

			if g.P1().Action != tc.p1 || g.P2().Action != tc.p2 {
				t.Errorf("actions = (%s, %s), expected (%s, %s)", g.P1().Action, g.P2().Action, tc.p1, tc.p2)
			}
			if g.Paused() {
				t.Error("movement keys should not pause")
			}
		})
	}
}

func TestKeyUpClearsMatchingAction(t *testing.T) {
	g := newTestGame(t)
	g.KeyDown(core.ControlP1Up)
	g.KeyDown(core.ControlP2Down)

	g.KeyUp(core.ControlP1Up)
	if g.P1().Action != ActionStop {
		t.Errorf("P1 action = %s, expected stop", g.P1().Action)
	}
	if g.P2().Action != ActionDown {
		t.Errorf("P2 action = %s, releasing P1 should not touch P2", g.P2().Action)
	}

	g.KeyUp(core.ControlP2Down)
	if g.P2().Action != ActionStop {
		t.Errorf("P2 action = %s, expected stop", g.P2().Action)
	}
}

func TestStaleKeyUpKeepsAction(t *testing.T) {
	g := newTestGame(t)

	// Holding up, tap down, release down, keep holding up
	g.KeyDown(core.ControlP1Up)
	g.KeyUp(core.ControlP1Down)
	if g.P1().Action != ActionUp {
		t.Fatalf("stale P1 down release cleared the action: %s", g.P1().Action)
	}

	g.KeyDown(core.ControlP1Down)
	g.KeyUp(core.ControlP1Up)
	if g.P1().Action != ActionDown {
		t.Errorf("releasing up after switching to down should keep down, got %s", g.P1().Action)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same draws and inputs produce identical snapshots
	g1 := New(config.DefaultPongConfig(), &seqSource{draws: []float64{0.1, 0.5, 0.8}})
	g2 := New(config.DefaultPongConfig(), &seqSource{draws: []float64{0.1, 0.5, 0.8}})

	for i := 0; i < 2000; i++ {
		for _, g := range []*Game{g1, g2} {
			switch i % 300 {
			case 10:
				g.KeyDown(core.ControlP1Up)
			case 90:
				g.KeyUp(core.ControlP1Up)
			case 150:
				g.KeyDown(core.ControlP2Down)
			case 260:
				g.KeyUp(core.ControlP2Down)
			}
			g.Update()
		}
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSnapshotScored(t *testing.T) {
	prev := Snapshot{Score1: 2, Score2: 1}

	if got := (Snapshot{Score1: 3, Score2: 1}).Scored(prev); got != 1 {
		t.Errorf("Scored() = %d, expected 1", got)
	}
	if got := (Snapshot{Score1: 2, Score2: 2}).Scored(prev); got != 2 {
		t.Errorf("Scored() = %d, expected 2", got)
	}
	if got := prev.Scored(prev); got != 0 {
		t.Errorf("Scored() = %d, expected 0", got)
	}
}

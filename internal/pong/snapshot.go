package pong

// Snapshot is a comparable copy of the observable game state.
// Two snapshots are equal exactly when nothing visible has changed.
type Snapshot struct {
	Tick     uint64
	BallX    float64
	BallY    float64
	BallDX   float64
	BallDY   float64
	Paddle1Y float64
	Paddle2Y float64
	Score1   int
	Score2   int
	Action1  Action
	Action2  Action
	Paused   bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.ticks,
		BallX:    g.ball.X,
		BallY:    g.ball.Y,
		BallDX:   g.ball.DX,
		BallDY:   g.ball.DY,
		Paddle1Y: g.p1.Paddle.Y(),
		Paddle2Y: g.p2.Paddle.Y(),
		Score1:   g.p1.Score,
		Score2:   g.p2.Score,
		Action1:  g.p1.Action,
		Action2:  g.p2.Action,
		Paused:   g.paused,
	}
}

// Scored reports which side gained a point between prev and s: 1, 2 or 0 for none.
func (s Snapshot) Scored(prev Snapshot) int {
	switch {
	case s.Score1 > prev.Score1:
		return 1
	case s.Score2 > prev.Score2:
		return 2
	default:
		return 0
	}
}

package pong

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// Action is the movement a player has requested for upcoming ticks.
type Action int

const (
	ActionStop Action = iota
	ActionUp
	ActionDown
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionStop:
		return "stop"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseAction parses "stop", "up" or "down", ignoring case.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stop", "":
		return ActionStop, nil
	case "up":
		return ActionUp, nil
	case "down":
		return ActionDown, nil
	}
	return ActionStop, fmt.Errorf("pong: unknown action %q (want stop, up or down)", s)
}

// Player pairs a paddle with a score and the pending action from input.
type Player struct {
	Score  int
	Action Action
	Paddle *Paddle

	boardX float64
	boardY float64
}

// NewPlayer creates a scoreless, stopped player whose paddle sits at paddleX
// and whose score is drawn at boardX.
func NewPlayer(cfg config.PongConfig, paddleX, boardX float64) *Player {
	return &Player{
		Action: ActionStop,
		Paddle: NewPaddle(cfg, paddleX),
		boardX: boardX,
		boardY: cfg.Board.Y,
	}
}

// MakeAction applies the pending action to the paddle. Called once per tick.
func (p *Player) MakeAction() {
	switch p.Action {
	case ActionUp:
		p.Paddle.StepUp()
	case ActionDown:
		p.Paddle.StepDown()
	}
}

func (p *Player) draw(s Surface) {
	s.FillText(strconv.Itoa(p.Score), p.boardX, p.boardY)
	p.Paddle.draw(s)
}

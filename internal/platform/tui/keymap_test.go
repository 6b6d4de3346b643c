package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDefaultControls(t *testing.T) {
	km := NewKeyMap(config.DefaultPongConfig().Controls)

	tests := []struct {
		msg  tea.KeyMsg
		want core.Control
	}{
		{runeKey('q'), core.ControlP1Up},
		{runeKey('a'), core.ControlP1Down},
		{runeKey('p'), core.ControlP2Up},
		{runeKey('l'), core.ControlP2Down},
		{runeKey('b'), core.ControlPause},
		{runeKey('x'), core.ControlNone},
		{runeKey('Q'), core.ControlNone},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ControlNone},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			if got := km.Control(tc.msg); got != tc.want {
				t.Errorf("Control(%q) = %s, expected %s", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapCustomControls(t *testing.T) {
	c := config.DefaultPongConfig().Controls
	c.P1Up = []string{"w", "up"}
	c.Pause = []string{" "}
	km := NewKeyMap(c)

	if got := km.Control(runeKey('w')); got != core.ControlP1Up {
		t.Errorf("w = %s, expected P1Up", got)
	}
	if got := km.Control(tea.KeyMsg{Type: tea.KeyUp}); got != core.ControlP1Up {
		t.Errorf("up = %s, expected P1Up", got)
	}
	if got := km.Control(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}); got != core.ControlPause {
		t.Errorf("space = %s, expected Pause", got)
	}
	if got := km.Control(runeKey('q')); got != core.ControlNone {
		t.Errorf("rebound q = %s, expected none", got)
	}

	if h := km.P1Up.Help(); h.Key != "w/up" || h.Desc != "P1 up" {
		t.Errorf("help = %+v, expected w/up P1 up", h)
	}
}

func TestKeyMapHelpListsControls(t *testing.T) {
	km := NewKeyMap(config.DefaultPongConfig().Controls)

	var keys []string
	for _, b := range km.ShortHelp() {
		keys = append(keys, b.Help().Key)
	}
	joined := strings.Join(keys, " ")
	for _, want := range []string{"q", "a", "p", "l", "b", "ctrl+c/esc"} {
		if !strings.Contains(joined, want) {
			t.Errorf("short help %q is missing %q", joined, want)
		}
	}
	if len(km.FullHelp()) != 3 {
		t.Errorf("FullHelp() has %d columns, expected 3", len(km.FullHelp()))
	}
}

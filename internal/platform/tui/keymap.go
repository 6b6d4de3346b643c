package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap translates Bubble Tea key messages to game controls.
// Bindings come from the controls section of the config, so they stay testable
// and can be shown in the help footer.
type KeyMap struct {
	P1Up       key.Binding
	P1Down     key.Binding
	P2Up       key.Binding
	P2Down     key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap creates a key map from configured key names.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		P1Up:       binding(c.P1Up, "P1 up"),
		P1Down:     binding(c.P1Down, "P1 down"),
		P2Up:       binding(c.P2Up, "P2 up"),
		P2Down:     binding(c.P2Down, "P2 down"),
		Pause:      binding(c.Pause, "pause"),
		Quit:       binding(c.Quit, "quit"),
		Screenshot: binding(c.Screenshot, "screenshot"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Control returns the game control bound to msg, or ControlNone.
func (k KeyMap) Control(msg tea.KeyMsg) core.Control {
	switch {
	case key.Matches(msg, k.P1Up):
		return core.ControlP1Up
	case key.Matches(msg, k.P1Down):
		return core.ControlP1Down
	case key.Matches(msg, k.P2Up):
		return core.ControlP2Up
	case key.Matches(msg, k.P2Down):
		return core.ControlP2Down
	case key.Matches(msg, k.Pause):
		return core.ControlPause
	}
	return core.ControlNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P1Down, k.P2Up, k.P2Down, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down},
		{k.P2Up, k.P2Down},
		{k.Pause, k.Screenshot, k.Quit},
	}
}

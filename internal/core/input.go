package core

// Control represents a logical game control, abstracted from physical key presses.
// Hosts translate their own key identifiers into controls through a key map,
// so the simulation never sees raw key codes.
type Control int

const (
	ControlNone   Control = iota
	ControlP1Up           // Left paddle up
	ControlP1Down         // Left paddle down
	ControlP2Up           // Right paddle up
	ControlP2Down         // Right paddle down
	ControlPause          // Toggle pause (key-down only)
)

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlNone:
		return "None"
	case ControlP1Up:
		return "P1Up"
	case ControlP1Down:
		return "P1Down"
	case ControlP2Up:
		return "P2Up"
	case ControlP2Down:
		return "P2Down"
	case ControlPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Controls lists every recognized control in a stable order.
func Controls() []Control {
	return []Control{ControlP1Up, ControlP1Down, ControlP2Up, ControlP2Down, ControlPause}
}

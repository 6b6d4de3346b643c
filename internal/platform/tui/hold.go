package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// holdTracker turns a stream of key presses into press/release pairs.
// Terminals never report key-up, so a held control counts as released once its
// auto-repeat stops arriving: after initial of silence following the first
// press, or after repeat once auto-repeat has started.
type holdTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Control]holdState
}

type holdState struct {
	last     time.Time
	repeated bool
}

func newHoldTracker(initial, repeat time.Duration) *holdTracker {
	return &holdTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Control]holdState),
	}
}

// press records a press of c at now and reports whether c was not already held.
func (h *holdTracker) press(c core.Control, now time.Time) bool {
	_, held := h.held[c]
	h.held[c] = holdState{last: now, repeated: held}
	return !held
}

// expired removes and returns the controls whose hold window has lapsed at now,
// in core.Controls order.
func (h *holdTracker) expired(now time.Time) []core.Control {
	var released []core.Control
	for _, c := range core.Controls() {
		st, held := h.held[c]
		if !held {
			continue
		}
		window := h.initial
		if st.repeated {
			window = h.repeat
		}
		if now.Sub(st.last) >= window {
			delete(h.held, c)
			released = append(released, c)
		}
	}
	return released
}

// isHeld reports whether c is currently considered pressed.
func (h *holdTracker) isHeld(c core.Control) bool {
	_, held := h.held[c]
	return held
}

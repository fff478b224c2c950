package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// defaultHoldWindow covers the gap between the first key press and the
// terminal's auto-repeat.
const defaultHoldWindow = 120 * time.Millisecond

// heldInput turns key presses into per-tick input frames. Terminals only
// report presses, so movement keys count as held until holdWindow passes
// without a repeat. Other actions fire on the next tick only.
type heldInput struct {
	window time.Duration
	until  map[core.Action]time.Time
	pulses core.InputFrame
}

func newHeldInput(window time.Duration) *heldInput {
	return &heldInput{
		window: window,
		until:  make(map[core.Action]time.Time),
		pulses: core.NewInputFrame(),
	}
}

// Press records a key press at now.
func (h *heldInput) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionUp, core.ActionDown:
		// A press in the other direction ends the previous hold.
		delete(h.until, opposite(a))
		h.until[a] = now.Add(h.window)
	default:
		h.pulses.Set(a)
	}
}

// Frame returns the actions active at now and consumes one-shot actions.
func (h *heldInput) Frame(now time.Time) core.InputFrame {
	frame := h.pulses.Clone()
	h.pulses.Clear()

	for a, until := range h.until {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return frame
}

func opposite(a core.Action) core.Action {
	if a == core.ActionUp {
		return core.ActionDown
	}
	return core.ActionUp
}

package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestHeldInputMovementHold(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHeldInput(120 * time.Millisecond)

	h.Press(core.ActionUp, t0)

	if f := h.Frame(t0.Add(16 * time.Millisecond)); !f.Has(core.ActionUp) {
		t.Error("up should be held right after the press")
	}
	if f := h.Frame(t0.Add(100 * time.Millisecond)); !f.Has(core.ActionUp) {
		t.Error("up should be held inside the window")
	}
	if f := h.Frame(t0.Add(120 * time.Millisecond)); f.Has(core.ActionUp) {
		t.Error("up should be released once the window passes")
	}
}

func TestHeldInputRepeatExtendsHold(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHeldInput(120 * time.Millisecond)

	h.Press(core.ActionDown, t0)
	h.Press(core.ActionDown, t0.Add(100*time.Millisecond))

	if f := h.Frame(t0.Add(200 * time.Millisecond)); !f.Has(core.ActionDown) {
		t.Error("auto-repeat should extend the hold")
	}
}

func TestHeldInputOppositeCancels(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHeldInput(120 * time.Millisecond)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionDown, t0.Add(10*time.Millisecond))

	f := h.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionUp) || !f.Has(core.ActionDown) {
		t.Errorf("frame = %v, expected down only", f.Actions)
	}
}

func TestHeldInputPulsesFireOnce(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHeldInput(120 * time.Millisecond)

	h.Press(core.ActionPause, t0)
	h.Press(core.ActionNone, t0)

	if f := h.Frame(t0); !f.Has(core.ActionPause) || f.Has(core.ActionNone) {
		t.Errorf("first frame = %v, expected pause", f.Actions)
	}
	if f := h.Frame(t0); f.Has(core.ActionPause) {
		t.Error("pause should only fire on one tick")
	}
}

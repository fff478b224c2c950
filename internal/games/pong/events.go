package pong

import "strings"

// Events is the set of things that happened during one tick.
// Frontends use it for sound and logging; it never drives game logic.
type Events uint8

const (
	EventBorderBounce Events = 1 << iota
	EventPaddleBounce
	EventPointScored
	EventRoundStarted
	EventGameOver
	EventMatchRestarted
)

// Has reports whether all events in e are set.
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// Bounced reports whether the ball bounced off anything this tick.
func (ev Events) Bounced() bool {
	return ev&(EventBorderBounce|EventPaddleBounce) != 0
}

var eventNames = []struct {
	e    Events
	name string
}{
	{EventBorderBounce, "border-bounce"},
	{EventPaddleBounce, "paddle-bounce"},
	{EventPointScored, "point-scored"},
	{EventRoundStarted, "round-started"},
	{EventGameOver, "game-over"},
	{EventMatchRestarted, "match-restarted"},
}

// String lists the set events, separated by '|'.
func (ev Events) String() string {
	if ev == 0 {
		return "none"
	}
	var names []string
	for _, n := range eventNames {
		if ev.Has(n.e) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

package pong

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// funcRand adapts a function to Rand.
type funcRand func(min, max int) int

func (f funcRand) IntRange(min, max int) int { return f(min, max) }

var (
	lowRand  = funcRand(func(min, _ int) int { return min })
	highRand = funcRand(func(_, max int) int { return max })
)

const frame = time.Second / 60

func newTestMatch(rng Rand) *Match {
	return NewMatch(config.DefaultPongConfig(), rng)
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewMatchInitialState(t *testing.T) {
	m := newTestMatch(highRand)
	st := m.State()

	if st.Phase != PhaseRunning {
		t.Errorf("Phase = %v, expected Running", st.Phase)
	}
	if st.Score != (Score{}) {
		t.Errorf("Score = %+v, expected zero", st.Score)
	}
	if st.Player.Pos != core.V(1240, 340) {
		t.Errorf("player paddle at %v, expected (1240, 340)", st.Player.Pos)
	}
	if st.AI.Pos != core.V(20, 340) {
		t.Errorf("ai paddle at %v, expected (20, 340)", st.AI.Pos)
	}
	if st.Ball.Pos != core.V(640, 400) || st.Ball.Radius != 10 {
		t.Errorf("ball = %+v, expected centered with radius 10", st.Ball)
	}
	if st.Ball.Vel != core.V(15, 5) {
		t.Errorf("ball velocity = %v, expected (15, 5)", st.Ball.Vel)
	}

	if v := newTestMatch(lowRand).State().Ball.Vel; v != core.V(-15, -5) {
		t.Errorf("low serve velocity = %v, expected (-15, -5)", v)
	}
}

func TestServeStaysInsideServeBand(t *testing.T) {
	cfg := config.DefaultPongConfig()
	for seed := int64(1); seed <= 200; seed++ {
		m := NewMatch(cfg, NewRand(seed))
		v := m.State().Ball.Vel
		if math.Abs(v.X) != cfg.Ball.Speed {
			t.Fatalf("seed %d: |Vel.X| = %v, expected %v", seed, math.Abs(v.X), cfg.Ball.Speed)
		}
		if math.Abs(v.Y) > float64(cfg.Ball.ServeSlope) || v.Y != math.Trunc(v.Y) {
			t.Fatalf("seed %d: Vel.Y = %v outside integer serve band", seed, v.Y)
		}
	}
}

func TestScoreRequiresBallFullyPastEdge(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Vec2
		vel    core.Vec2
		scorer Side
	}{
		{"left exit scores for player", core.V(5, 400), core.V(-15, 0), SidePlayer},
		{"right exit scores for ai", core.V(1275, 400), core.V(15, 0), SideAI},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMatch(lowRand)
			m.state.Ball.Pos = tc.pos
			m.state.Ball.Vel = tc.vel

			// First tick lands exactly one radius beyond the edge: no point yet
			if ev := m.Tick(input(), frame); ev.Has(EventPointScored) {
				t.Fatalf("scored at x=%v, only exactly radius past the edge", m.State().Ball.Pos.X)
			}
			if m.State().Score != (Score{}) {
				t.Fatalf("score changed early: %+v", m.State().Score)
			}

			ev := m.Tick(input(), frame)
			if !ev.Has(EventPointScored) {
				t.Fatalf("expected point at x=%v", m.State().Ball.Pos.X)
			}

			st := m.State()
			if st.LastScorer != tc.scorer {
				t.Errorf("LastScorer = %v, expected %v", st.LastScorer, tc.scorer)
			}
			want := Score{Player: 1}
			if tc.scorer == SideAI {
				want = Score{AI: 1}
			}
			if st.Score != want {
				t.Errorf("Score = %+v, expected %+v", st.Score, want)
			}
			if st.Phase != PhasePointResetPending || st.ResetRemaining != time.Second {
				t.Errorf("phase = %v remaining = %v, expected pending with 1s", st.Phase, st.ResetRemaining)
			}
		})
	}
}

func TestPaddleContactFlipsOnce(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Paddles.ContactWidth = 20 // deep strip so the ball overlaps for several ticks
	m := NewMatch(cfg, lowRand)
	m.state.Ball.Pos = core.V(1238, 400)
	m.state.Ball.Vel = core.V(2, 0)

	flips := 0
	bounces := 0
	prev := m.State().Ball.Vel.X
	for i := 0; i < 6; i++ {
		ev := m.Tick(input(), frame)
		if ev.Has(EventPaddleBounce) {
			bounces++
		}
		vx := m.State().Ball.Vel.X
		if math.Signbit(vx) != math.Signbit(prev) {
			flips++
		}
		prev = vx
	}

	if flips != 1 || bounces != 1 {
		t.Errorf("flips = %d, bounces = %d, expected exactly one contact", flips, bounces)
	}
	if m.State().Ball.Vel.X != -2 {
		t.Errorf("Vel.X = %v, expected -2", m.State().Ball.Vel.X)
	}
}

func TestPaddleBounceAtCenterReturnsStraight(t *testing.T) {
	m := newTestMatch(lowRand)
	m.state.Ball.Pos = core.V(1225, 400)
	m.state.Ball.Vel = core.V(15, 0)

	ev := m.Tick(input(), frame)
	if !ev.Has(EventPaddleBounce) {
		t.Fatalf("expected paddle bounce, events = %v", ev)
	}
	v := m.State().Ball.Vel
	if v.X != -15 || v.Y != 0 {
		t.Errorf("velocity after center hit = %v, expected (-15, 0)", v)
	}
}

func TestBorderAndPaddleInSameTick(t *testing.T) {
	m := newTestMatch(lowRand)
	m.state.Player.Pos.Y = 10
	m.state.Ball.Pos = core.V(1225, 25)
	m.state.Ball.Vel = core.V(15, -10)

	ev := m.Tick(input(), frame)

	if !ev.Has(EventBorderBounce | EventPaddleBounce) {
		t.Fatalf("expected both border and paddle responses, got %v", ev)
	}
	v := m.State().Ball.Vel
	// Paddle center 70, ball at 15: (55/120) * -15
	if v.X != -15 || math.Abs(v.Y-(-6.875)) > 1e-9 {
		t.Errorf("velocity = %v, expected (-15, -6.875)", v)
	}
}

func TestBorderBounce(t *testing.T) {
	m := newTestMatch(lowRand)
	m.state.Ball.Pos = core.V(640, 782)
	m.state.Ball.Vel = core.V(15, 5)

	ev := m.Tick(input(), frame)
	if ev != EventBorderBounce {
		t.Fatalf("events = %v, expected border-bounce only", ev)
	}
	if v := m.State().Ball.Vel; v != core.V(15, -5) {
		t.Errorf("velocity = %v, expected (15, -5)", v)
	}
}

func TestRunningTickMovesPaddles(t *testing.T) {
	m := newTestMatch(lowRand)
	m.state.Ball.Pos = core.V(640, 700)
	m.state.Ball.Vel = core.V(15, 0)

	m.Tick(input(core.ActionUp), frame)

	st := m.State()
	if st.Player.Pos.Y != 325 {
		t.Errorf("player paddle y = %v, expected 325", st.Player.Pos.Y)
	}
	if st.AI.Pos.Y != 345 {
		t.Errorf("ai paddle y = %v, expected 345 (tracking down)", st.AI.Pos.Y)
	}
	if st.Ball.Pos != core.V(655, 700) {
		t.Errorf("ball at %v, expected (655, 700)", st.Ball.Pos)
	}
}

func TestPointPauseIsTimedSubState(t *testing.T) {
	m := newTestMatch(highRand)
	m.state.Score = Score{Player: 1, AI: 1}
	m.state.Phase = PhasePointResetPending
	m.state.ResetRemaining = time.Second
	m.state.Ball.Pos = core.V(-30, 200)
	m.state.Player.Pos.Y = 100

	ev := m.Tick(input(core.ActionDown), 400*time.Millisecond)
	st := m.State()
	if ev != 0 || st.Phase != PhasePointResetPending {
		t.Fatalf("round started early: events = %v, phase = %v", ev, st.Phase)
	}
	if st.ResetRemaining != 600*time.Millisecond {
		t.Errorf("ResetRemaining = %v, expected 600ms", st.ResetRemaining)
	}
	if st.Player.Pos.Y != 100 || st.Ball.Pos != core.V(-30, 200) {
		t.Error("nothing should move during the point pause")
	}

	ev = m.Tick(input(), 600*time.Millisecond)
	st = m.State()
	if !ev.Has(EventRoundStarted) || st.Phase != PhaseRunning {
		t.Fatalf("expected round start, events = %v, phase = %v", ev, st.Phase)
	}
	if st.Score != (Score{Player: 1, AI: 1}) {
		t.Errorf("score must survive the round reset, got %+v", st.Score)
	}
	if st.Player.Pos.Y != 340 || st.Ball.Pos != core.V(640, 400) || st.Ball.Vel != core.V(15, 5) {
		t.Errorf("round not reset: %+v", st)
	}
}

func TestZeroPointPause(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Match.PointPauseMS = 0
	m := NewMatch(cfg, lowRand)
	m.state.Ball.Pos = core.V(-20, 400)
	m.state.Ball.Vel = core.V(-15, 0)

	if ev := m.Tick(input(), frame); !ev.Has(EventPointScored) {
		t.Fatalf("expected point, got %v", ev)
	}
	if ev := m.Tick(input(), frame); !ev.Has(EventRoundStarted) {
		t.Fatalf("expected immediate round start, got %v", ev)
	}
}

func TestGameOverAtThresholdAndRestart(t *testing.T) {
	m := newTestMatch(lowRand)
	m.state.Score = Score{Player: 3, AI: 1}

	ev := m.Tick(input(), frame)
	st := m.State()
	if ev != EventGameOver || st.Phase != PhaseGameOver || st.Winner != SidePlayer {
		t.Fatalf("expected game over won by player, events = %v, state = %+v", ev, st)
	}

	// Terminal phase ignores gameplay input
	before := m.State()
	for i := 0; i < 10; i++ {
		if ev := m.Tick(input(core.ActionUp, core.ActionPause), frame); ev != 0 {
			t.Fatalf("game over emitted %v without restart", ev)
		}
	}
	if m.State() != before {
		t.Error("state changed during game over")
	}

	ev = m.Tick(input(core.ActionRestart), frame)
	st = m.State()
	if !ev.Has(EventMatchRestarted | EventRoundStarted) {
		t.Errorf("events = %v, expected restart", ev)
	}
	if st.Phase != PhaseRunning || st.Score != (Score{}) || st.Winner != SideNone {
		t.Errorf("restart did not reset the match: %+v", st)
	}
}

func TestConfirmAlsoRestarts(t *testing.T) {
	m := newTestMatch(lowRand)
	m.state.Score = Score{Player: 0, AI: 3}
	m.Tick(input(), frame)
	if m.State().Winner != SideAI {
		t.Fatalf("Winner = %v, expected ai", m.State().Winner)
	}

	m.Tick(input(core.ActionConfirm), frame)
	if m.State().Phase != PhaseRunning {
		t.Errorf("Phase = %v, expected Running after confirm", m.State().Phase)
	}
}

func TestNoGameOverBeforeThreshold(t *testing.T) {
	m := newTestMatch(lowRand)
	m.state.Score = Score{Player: 2, AI: 2}

	for i := 0; i < 5; i++ {
		m.Tick(input(), frame)
		if m.State().Phase == PhaseGameOver {
			t.Fatalf("game over at score %+v", m.State().Score)
		}
	}
}

func TestWinningPointFlow(t *testing.T) {
	m := newTestMatch(lowRand)
	m.state.Score = Score{Player: 2, AI: 1}
	m.state.Ball.Pos = core.V(-20, 400)
	m.state.Ball.Vel = core.V(-15, 0)

	if ev := m.Tick(input(), frame); !ev.Has(EventPointScored) {
		t.Fatalf("expected winning point, got %v", ev)
	}
	if m.State().Phase != PhasePointResetPending {
		t.Fatalf("winning point should still pause, phase = %v", m.State().Phase)
	}

	if ev := m.Tick(input(), time.Second); !ev.Has(EventRoundStarted) {
		t.Fatalf("expected round start after pause, got %v", ev)
	}
	if ev := m.Tick(input(), frame); ev != EventGameOver {
		t.Fatalf("expected game over on the next tick, got %v", ev)
	}
	if st := m.State(); st.Score != (Score{Player: 3, AI: 1}) || st.Winner != SidePlayer {
		t.Errorf("final state = %+v", st)
	}
}

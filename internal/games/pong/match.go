package pong

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Phase is the match state machine's current state.
type Phase int

const (
	PhaseRunning           Phase = iota // Gameplay active
	PhasePointResetPending              // A point was scored, waiting before the next round
	PhaseGameOver                       // One side reached the win score
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhasePointResetPending:
		return "PointResetPending"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Side identifies one of the two players.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return "none"
	}
}

// Score holds both sides' points. It survives rounds and resets with the match.
type Score struct {
	Player int
	AI     int
}

// MatchState is everything that changes during a match.
type MatchState struct {
	Player Paddle // Right side, human controlled
	AI     Paddle // Left side, tracking heuristic
	Ball   Ball
	Score  Score
	Phase  Phase

	// ResetRemaining is the real time left before the next round starts.
	// Only meaningful in PhasePointResetPending.
	ResetRemaining time.Duration

	LastScorer Side
	Winner     Side
}

// Match owns a MatchState and advances it one tick at a time.
type Match struct {
	cfg   config.PongConfig
	rng   Rand
	state MatchState
}

// NewMatch creates a match with zero scores and a freshly served ball.
func NewMatch(cfg config.PongConfig, rng Rand) *Match {
	m := &Match{cfg: cfg, rng: rng}
	m.state = m.newRound(Score{})
	return m
}

// State returns a copy of the current state.
func (m *Match) State() MatchState {
	return m.state
}

// Tick advances the match by one fixed step. elapsed is the real time since
// the previous tick and only drives the pause between points.
func (m *Match) Tick(in core.InputFrame, elapsed time.Duration) Events {
	switch m.state.Phase {
	case PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			m.state = m.newRound(Score{})
			return EventMatchRestarted | EventRoundStarted
		}
		return 0

	case PhasePointResetPending:
		m.state.ResetRemaining -= elapsed
		if m.state.ResetRemaining > 0 {
			return 0
		}
		m.state = m.newRound(m.state.Score)
		return EventRoundStarted
	}

	// The winning point is shown for its whole pause before the match ends.
	if winner := m.winner(); winner != SideNone {
		m.state.Phase = PhaseGameOver
		m.state.Winner = winner
		return EventGameOver
	}

	bounds := m.paddleBounds()
	m.state.Player.ApplyInput(in, m.cfg.Paddles.PlayerStep, bounds)
	m.state.AI.TrackBall(m.state.Ball.Pos.Y, m.cfg.AI.Step, bounds)

	m.state.Ball.Integrate()

	ev := m.collide()
	ev |= m.checkScore()
	return ev
}

// collide runs the four collision checks. Border and paddle responses are
// independent: a ball touching a border and a paddle gets both.
func (m *Match) collide() Events {
	var ev Events
	arena := m.cfg.Arena
	ball := &m.state.Ball
	borderSize := core.V(arena.Width, arena.BorderThickness)

	hitTop := core.IsColliding(core.V(0, 0), borderSize, ball.Pos, ball.Radius)
	hitBottom := core.IsColliding(core.V(0, arena.Height-arena.BorderThickness), borderSize, ball.Pos, ball.Radius)
	if hitTop || hitBottom {
		ball.ReflectOffBorder()
		ev |= EventBorderBounce
	}

	// A paddle only responds to a ball travelling toward it, so each contact
	// flips Vel.X once even if the ball overlaps the strip for several ticks.
	if ball.Vel.X > 0 && m.touches(m.state.Player) {
		ball.BounceOffPaddle(m.state.Player, m.jitter(), m.cfg.Ball.MaxSlope)
		ev |= EventPaddleBounce
	}
	if ball.Vel.X < 0 && m.touches(m.state.AI) {
		ball.BounceOffPaddle(m.state.AI, m.jitter(), m.cfg.Ball.MaxSlope)
		ev |= EventPaddleBounce
	}
	return ev
}

// touches tests the ball against a paddle's contact strip, which starts at
// the paddle origin and is ContactWidth wide.
func (m *Match) touches(p Paddle) bool {
	strip := core.V(m.cfg.Paddles.ContactWidth, p.Size.Y)
	return core.IsColliding(p.Pos, strip, m.state.Ball.Pos, m.state.Ball.Radius)
}

// checkScore awards a point once the ball is entirely past a side edge.
func (m *Match) checkScore() Events {
	ball := m.state.Ball
	var scorer Side
	switch {
	case ball.Pos.X < -ball.Radius:
		m.state.Score.Player++
		scorer = SidePlayer
	case ball.Pos.X > m.cfg.Arena.Width+ball.Radius:
		m.state.Score.AI++
		scorer = SideAI
	default:
		return 0
	}

	m.state.LastScorer = scorer
	m.state.Phase = PhasePointResetPending
	m.state.ResetRemaining = time.Duration(m.cfg.Match.PointPauseMS) * time.Millisecond
	return EventPointScored
}

// winner returns the side that reached the win score, if any.
func (m *Match) winner() Side {
	switch {
	case m.state.Score.Player >= m.cfg.Match.WinScore:
		return SidePlayer
	case m.state.Score.AI >= m.cfg.Match.WinScore:
		return SideAI
	default:
		return SideNone
	}
}

// newRound builds a Running state with centered paddles and a served ball.
func (m *Match) newRound(score Score) MatchState {
	arena := m.cfg.Arena
	paddles := m.cfg.Paddles
	size := core.V(paddles.Width, paddles.Height)
	startY := arena.Height/2 - paddles.Height/2

	return MatchState{
		Player: Paddle{Pos: core.V(arena.Width-paddles.Width-paddles.Offset, startY), Size: size},
		AI:     Paddle{Pos: core.V(paddles.Offset, startY), Size: size},
		Ball: Ball{
			Pos:    core.V(arena.Width/2, arena.Height/2),
			Vel:    m.serveVelocity(),
			Radius: m.cfg.Ball.Radius,
		},
		Score: score,
		Phase: PhaseRunning,
	}
}

// serveVelocity picks a random direction and a small vertical slope.
func (m *Match) serveVelocity() core.Vec2 {
	vx := m.cfg.Ball.Speed
	if m.rng.IntRange(0, 1) == 0 {
		vx = -vx
	}
	serve := m.cfg.Ball.ServeSlope
	return core.V(vx, float64(m.rng.IntRange(-serve, serve)))
}

// jitter samples the bounce angle offset in [0, JitterMax/1000].
func (m *Match) jitter() float64 {
	return float64(m.rng.IntRange(0, m.cfg.Ball.JitterMax)) / 1000.0
}

// paddleBounds returns the allowed range of a paddle's top edge.
func (m *Match) paddleBounds() Bounds {
	arena := m.cfg.Arena
	return Bounds{
		Min: arena.BorderThickness,
		Max: arena.Height - arena.BorderThickness - m.cfg.Paddles.Height,
	}
}

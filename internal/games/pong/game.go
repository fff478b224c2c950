// Package pong implements a two-paddle ball game: the human player controls
// the right paddle against a reactive CPU paddle on the left.
package pong

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Sounds receives fire-and-forget sound requests for tick events.
type Sounds interface {
	PlayBounce()
	PlayScore()
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  core.GameState
	Events Events
}

// Game wraps a Match with the platform-facing concerns: seeding, pause,
// tick counting, match identity and sound hooks.
type Game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig
	match   *Match
	sounds  Sounds

	paused    bool
	tickCount int
	matchID   string
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// SetSounds installs the sound hooks. nil disables sound.
func (g *Game) SetSounds(s Sounds) {
	g.sounds = s
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}

// Reset starts a new match seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.resetWithRand(runtime, NewRand(runtime.Seed))
}

// resetWithRand starts a new match with an explicit randomness source.
func (g *Game) resetWithRand(runtime core.RuntimeConfig, rng Rand) {
	g.runtime = runtime
	g.match = NewMatch(g.cfg, rng)
	g.paused = false
	g.tickCount = 0
	g.matchID = uuid.NewString()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) StepResult {
	over := g.match.State().Phase == PhaseGameOver

	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}
	if g.paused {
		return StepResult{State: g.State()}
	}

	g.tickCount++
	ev := g.match.Tick(in, elapsed)
	if ev.Has(EventMatchRestarted) {
		g.matchID = uuid.NewString()
	}
	g.playSounds(ev)

	return StepResult{State: g.State(), Events: ev}
}

// playSounds forwards tick events to the sound hooks.
func (g *Game) playSounds(ev Events) {
	if g.sounds == nil {
		return
	}
	if ev.Bounced() {
		g.sounds.PlayBounce()
	}
	if ev.Has(EventPointScored) {
		g.sounds.PlayScore()
	}
}

// MatchID returns the identifier of the current match. It changes on restart.
func (g *Game) MatchID() string {
	return g.matchID
}

// State returns the coarse game state for the platform loop.
func (g *Game) State() core.GameState {
	st := g.match.State()
	return core.GameState{
		PlayerScore: st.Score.Player,
		AIScore:     st.Score.AI,
		GameOver:    st.Phase == PhaseGameOver,
		Paused:      g.paused,
	}
}

package pong

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// Snapshot is a read-only copy of everything a frontend needs to draw a frame.
// Coordinates are world units; frontends scale them to their surface.
type Snapshot struct {
	Arena  config.PongArena
	Player Paddle
	AI     Paddle
	Ball   Ball
	Score  Score
	Phase  Phase
	Winner Side

	ResetRemaining time.Duration
	LastScorer     Side

	Paused  bool
	Tick    int
	MatchID string
}

// Snapshot returns the current state for presentation.
func (g *Game) Snapshot() Snapshot {
	st := g.match.State()
	return Snapshot{
		Arena:          g.cfg.Arena,
		Player:         st.Player,
		AI:             st.AI,
		Ball:           st.Ball,
		Score:          st.Score,
		Phase:          st.Phase,
		Winner:         st.Winner,
		ResetRemaining: st.ResetRemaining,
		LastScorer:     st.LastScorer,
		Paused:         g.paused,
		Tick:           g.tickCount,
		MatchID:        g.matchID,
	}
}

// WinnerLabel returns the game-over headline.
func (s Snapshot) WinnerLabel() string {
	switch s.Winner {
	case SidePlayer:
		return "YOU WIN!"
	case SideAI:
		return "CPU WINS!"
	default:
		return ""
	}
}

// PointLabel returns the banner shown while waiting for the next round.
func (s Snapshot) PointLabel() string {
	if s.Phase != PhasePointResetPending {
		return ""
	}
	switch s.LastScorer {
	case SidePlayer:
		return "POINT: YOU"
	case SideAI:
		return "POINT: CPU"
	default:
		return ""
	}
}

// Span is a vertical range in world units.
type Span struct {
	From, To float64
}

// NetDashes returns the dashes of the center line, top to bottom.
func (s Snapshot) NetDashes() []Span {
	dash, gap := s.Arena.DashSize, s.Arena.DashSpace
	if dash <= 0 {
		return []Span{{From: 0, To: s.Arena.Height}}
	}
	gap = max(gap, 0)

	var spans []Span
	for y := 0.0; y < s.Arena.Height; y += dash + gap {
		spans = append(spans, Span{From: y, To: min(y+dash, s.Arena.Height)})
	}
	return spans
}

package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle is an axis-aligned paddle. Pos is the top-left corner.
type Paddle struct {
	Pos  core.Vec2
	Size core.Vec2
}

// CenterY returns the paddle's vertical center.
func (p Paddle) CenterY() float64 {
	return p.Pos.Y + p.Size.Y/2
}

// Bounds is the allowed range for a paddle's top edge: from the inside of the
// top border to the point where the bottom edge touches the bottom border.
type Bounds struct {
	Min, Max float64
}

// MoveDown moves the paddle down by step, shortening the step so the paddle
// lands exactly on the boundary instead of passing it.
func (p *Paddle) MoveDown(step float64, b Bounds) {
	p.Pos.Y = core.ClampF(p.Pos.Y+step, b.Min, b.Max)
}

// MoveUp moves the paddle up by step, landing exactly on the boundary.
func (p *Paddle) MoveUp(step float64, b Bounds) {
	p.Pos.Y = core.ClampF(p.Pos.Y-step, b.Min, b.Max)
}

// ApplyInput moves the player's paddle for the held actions. Down is applied
// before up; holding both cancels out away from the walls.
func (p *Paddle) ApplyInput(in core.InputFrame, step float64, b Bounds) {
	if in.Has(core.ActionDown) {
		p.MoveDown(step, b)
	}
	if in.Has(core.ActionUp) {
		p.MoveUp(step, b)
	}
}

// TrackBall is the opponent heuristic: step toward the ball when it is beyond
// either paddle edge, hold otherwise. There is no lookahead.
func (p *Paddle) TrackBall(ballY, step float64, b Bounds) {
	switch {
	case ballY > p.Pos.Y+p.Size.Y:
		p.MoveDown(step, b)
	case ballY < p.Pos.Y:
		p.MoveUp(step, b)
	}
}

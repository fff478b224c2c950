package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Ball is the moving ball. Vel is the per-tick displacement ("slope"): the sign
// of Vel.X is the direction of travel, its magnitude the constant ball speed.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Integrate advances the ball by one fixed tick.
func (b *Ball) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// ReflectOffBorder reverses vertical travel. The position is not corrected, so
// a fast ball may sit inside a border for a tick.
func (b *Ball) ReflectOffBorder() {
	b.Vel.Y = -b.Vel.Y
}

// BounceOffPaddle reverses horizontal travel and sets the vertical slope from
// where the ball met the paddle.
func (b *Ball) BounceOffPaddle(p Paddle, jitter, maxSlope float64) {
	b.Vel.Y = BounceAngle(p, b.Pos, jitter, maxSlope)
	b.Vel.X = -b.Vel.X
}

// BounceAngle returns the new vertical slope after a paddle hit.
//
// The slope grows with the distance between the hit point and the paddle's
// vertical center: a hit above center sends the ball upward, below center
// downward. jitter is a small non-negative offset that biases the result
// toward upward travel.
func BounceAngle(p Paddle, ballPos core.Vec2, jitter, maxSlope float64) float64 {
	offset := (p.CenterY() - ballPos.Y) / p.Size.Y
	return (offset + jitter) * -maxSlope
}

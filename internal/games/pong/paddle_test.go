package pong

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// bounds for the default 800 high arena with 10 unit borders and 120 unit paddles
var testBounds = Bounds{Min: 10, Max: 670}

func paddleAt(y float64) Paddle {
	return Paddle{Pos: core.V(1240, y), Size: core.V(20, 120)}
}

func TestPaddleMoveExactBoundary(t *testing.T) {
	tests := []struct {
		name     string
		startY   float64
		down     bool
		step     float64
		expected float64
	}{
		{"full step down", 300, true, 15, 315},
		{"short step lands on bottom", 660, true, 15, 670},
		{"at bottom stays", 670, true, 15, 670},
		{"full step up", 300, false, 15, 285},
		{"short step lands on top", 20, false, 15, 10},
		{"at top stays", 10, false, 15, 10},
		{"huge step lands on bottom", 11, true, 5000, 670},
		{"huge step lands on top", 669, false, 5000, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := paddleAt(tc.startY)
			if tc.down {
				p.MoveDown(tc.step, testBounds)
			} else {
				p.MoveUp(tc.step, testBounds)
			}
			if p.Pos.Y != tc.expected {
				t.Errorf("Pos.Y = %v, expected %v", p.Pos.Y, tc.expected)
			}
		})
	}
}

func TestPaddleApplyInput(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		startY   float64
		expected float64
	}{
		{"no input", nil, 340, 340},
		{"up", []core.Action{core.ActionUp}, 340, 325},
		{"down", []core.Action{core.ActionDown}, 340, 355},
		{"both cancel", []core.Action{core.ActionUp, core.ActionDown}, 340, 340},
		{"both at bottom moves up", []core.Action{core.ActionUp, core.ActionDown}, 670, 655},
		{"unrelated action", []core.Action{core.ActionPause}, 340, 340},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := core.NewInputFrame()
			for _, a := range tc.actions {
				in.Set(a)
			}
			p := paddleAt(tc.startY)
			p.ApplyInput(in, 15, testBounds)
			if p.Pos.Y != tc.expected {
				t.Errorf("Pos.Y = %v, expected %v", p.Pos.Y, tc.expected)
			}
		})
	}
}

func TestPaddleTrackBall(t *testing.T) {
	tests := []struct {
		name     string
		ballY    float64
		startY   float64
		expected float64
	}{
		{"ball below far edge", 500, 340, 345},
		{"ball above near edge", 300, 340, 335},
		{"ball level with paddle", 400, 340, 340},
		{"ball exactly on near edge holds", 340, 340, 340},
		{"ball exactly on far edge holds", 460, 340, 340},
		{"ball below, paddle near bottom", 790, 668, 670},
		{"ball above, paddle near top", 0, 12, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := paddleAt(tc.startY)
			p.TrackBall(tc.ballY, 5, testBounds)
			if p.Pos.Y != tc.expected {
				t.Errorf("Pos.Y = %v, expected %v", p.Pos.Y, tc.expected)
			}
		})
	}
}

func TestPaddleNeverLeavesBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	steps := []float64{1, 5, 15, 37.5, 200, 1000}

	for _, step := range steps {
		p := paddleAt(340)
		for i := 0; i < 2000; i++ {
			in := core.NewInputFrame()
			switch rng.Intn(4) {
			case 0:
				in.Set(core.ActionUp)
			case 1:
				in.Set(core.ActionDown)
			case 2:
				in.Set(core.ActionUp)
				in.Set(core.ActionDown)
			}
			if rng.Intn(2) == 0 {
				p.ApplyInput(in, step, testBounds)
			} else {
				p.TrackBall(rng.Float64()*800, step, testBounds)
			}

			if p.Pos.Y < testBounds.Min || p.Pos.Y > testBounds.Max {
				t.Fatalf("step %v, iteration %d: paddle at %v outside [%v, %v]",
					step, i, p.Pos.Y, testBounds.Min, testBounds.Max)
			}
		}
	}
}

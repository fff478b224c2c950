package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Smallest screen the arena is drawn on.
const (
	minArenaWidth  = 24
	minArenaHeight = 8
)

const (
	runeBorder = '▀'
	runeFloor  = '▄'
	runeNet    = '│'
	runePaddle = '█'
	runeBall   = '●'
)

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(s *core.Screen, arena config.PongArena) viewport {
	return viewport{
		sx: float64(s.Width()) / arena.Width,
		sy: float64(s.Height()) / arena.Height,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// span converts a world length to cells, never less than one.
func (v viewport) span(length, scale float64) int {
	return core.Max(1, int(math.Round(length*scale)))
}

// DrawArena draws a snapshot onto the screen, scaled to fit.
func DrawArena(s *core.Screen, snap pong.Snapshot) {
	s.Clear()

	if s.Width() < minArenaWidth || s.Height() < minArenaHeight {
		s.DrawTextCentered(s.Height()/2, "terminal too small")
		return
	}

	v := newViewport(s, snap.Arena)
	w, h := s.Width(), s.Height()

	s.DrawHLine(0, 0, w, runeBorder, core.ColorGray)
	s.DrawHLine(0, h-1, w, runeFloor, core.ColorGray)

	netX := v.col(snap.Arena.Width / 2)
	dash := v.span(snap.Arena.DashSize, v.sy)
	gap := v.span(snap.Arena.DashSpace, v.sy)
	s.DrawDashedVLine(netX, 1, h-2, dash, gap, runeNet, core.ColorGray)

	drawScores(s, netX, snap.Score)
	drawPaddle(s, v, snap.AI, core.ColorBrightMagenta)
	drawPaddle(s, v, snap.Player, core.ColorBrightCyan)

	if snap.Phase == pong.PhaseRunning {
		bx, by := v.col(snap.Ball.Pos.X), v.row(snap.Ball.Pos.Y)
		by = core.Clamp(by, 1, h-2)
		if bx >= 0 && bx < w {
			s.SetColored(bx, by, runeBall, core.ColorBrightYellow)
		}
	}

	switch {
	case snap.Phase == pong.PhaseGameOver:
		drawGameOver(s, snap)
	case snap.Phase == pong.PhasePointResetPending:
		drawBanner(s, snap.PointLabel(), core.ColorYellow)
	case snap.Paused:
		drawBanner(s, "PAUSED", core.ColorBrightWhite)
	}
}

// drawScores puts the CPU score left of the net and the player score right.
func drawScores(s *core.Screen, netX int, score pong.Score) {
	ai := fmt.Sprintf("%d", score.AI)
	player := fmt.Sprintf("%d", score.Player)
	s.DrawTextColored(netX-3-len(ai), 1, ai, core.ColorWhite)
	s.DrawTextColored(netX+3, 1, player, core.ColorWhite)
}

func drawPaddle(s *core.Screen, v viewport, p pong.Paddle, c core.Color) {
	r := core.NewRect(
		v.col(p.Pos.X),
		v.row(p.Pos.Y),
		v.span(p.Size.X, v.sx),
		v.span(p.Size.Y, v.sy),
	)
	// Keep the paddle off the border rows.
	r.Y = core.Clamp(r.Y, 1, s.Height()-1-r.H)
	r.X = core.Clamp(r.X, 0, s.Width()-r.W)
	s.DrawRectColored(r, runePaddle, c)
}

func drawBanner(s *core.Screen, text string, c core.Color) {
	if text == "" {
		return
	}
	y := s.Height() / 2
	x := (s.Width() - len([]rune(text))) / 2
	s.DrawTextColored(x, y, text, c)
}

func drawGameOver(s *core.Screen, snap pong.Snapshot) {
	lines := []string{
		snap.WinnerLabel(),
		fmt.Sprintf("%d : %d", snap.Score.AI, snap.Score.Player),
		"r / enter: play again",
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((s.Width()-boxW)/2, (s.Height()-boxH)/2, boxW, boxH)

	s.DrawRect(box, ' ')
	s.DrawBox(box)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
			if snap.Winner == pong.SideAI {
				c = core.ColorRed
			}
		}
		x := box.X + (boxW-len([]rune(l)))/2
		s.DrawTextColored(x, box.Y+1+i, l, c)
	}
}

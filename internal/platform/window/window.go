// Package window runs the game in a desktop window on Ebiten, drawn at the
// arena's native resolution.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// debugGlyph is the size of one ebitenutil debug font cell.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

var (
	colorBackground = color.Black
	colorForeground = color.White
	colorBanner     = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
)

// keyBindings maps held keys to movement. J moves down, K moves up.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:   {ebiten.KeyK, ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown: {ebiten.KeyJ, ebiten.KeyS, ebiten.KeyArrowDown},
}

// pressBindings fire once per key press.
var pressBindings = map[core.Action][]ebiten.Key{
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeySpace},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionQuit:    {ebiten.KeyQ, ebiten.KeyEscape},
}

// Window implements ebiten.Game for a match.
type Window struct {
	game    *pong.Game
	runtime core.RuntimeConfig
	logger  *log.Logger
}

// New creates a window frontend for the game. The game is reset on creation.
func New(game *pong.Game, runtime core.RuntimeConfig, logger *log.Logger) *Window {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	game.Reset(runtime)
	return &Window{game: game, runtime: runtime, logger: logger}
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	in := readInput()
	if in.Has(core.ActionQuit) {
		w.logger.Info("quit", "match", w.game.MatchID())
		return ebiten.Termination
	}

	res := w.game.Step(in, time.Second/time.Duration(ebiten.TPS()))
	switch {
	case res.Events.Has(pong.EventMatchRestarted):
		w.logger.Info("match started", "match", w.game.MatchID())
	case res.Events.Has(pong.EventGameOver):
		w.logger.Info("game over",
			"match", w.game.MatchID(),
			"player", res.State.PlayerScore,
			"cpu", res.State.AIScore)
	case res.Events.Has(pong.EventPointScored):
		w.logger.Debug("point", "player", res.State.PlayerScore, "cpu", res.State.AIScore)
	}
	return nil
}

func readInput() core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				in.Set(action)
			}
		}
	}
	for action, keys := range pressBindings {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Set(action)
			}
		}
	}
	return in
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	arena := snap.Arena
	width := float32(arena.Width)
	border := float32(arena.BorderThickness)

	screen.Fill(colorBackground)

	vector.DrawFilledRect(screen, 0, 0, width, border, colorForeground, false)
	vector.DrawFilledRect(screen, 0, float32(arena.Height)-border, width, border, colorForeground, false)

	netX := width / 2
	for _, d := range snap.NetDashes() {
		vector.StrokeLine(screen, netX, float32(d.From), netX, float32(d.To), 1, colorForeground, false)
	}

	drawPaddle(screen, snap.AI)
	drawPaddle(screen, snap.Player)

	if snap.Phase == pong.PhaseRunning {
		b := snap.Ball
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), colorForeground, true)
	}

	top := int(arena.BorderThickness) + debugGlyphH
	ebitenutil.DebugPrintAt(screen, fmt.Sprint(snap.Score.AI), int(netX)-4*debugGlyphW, top)
	ebitenutil.DebugPrintAt(screen, fmt.Sprint(snap.Score.Player), int(netX)+3*debugGlyphW, top)

	switch {
	case snap.Phase == pong.PhaseGameOver:
		drawBanner(screen, snap.WinnerLabel()+"\n\nR / ENTER: PLAY AGAIN")
	case snap.Phase == pong.PhasePointResetPending:
		drawBanner(screen, snap.PointLabel())
	case snap.Paused:
		drawBanner(screen, "PAUSED")
	}
}

func drawPaddle(screen *ebiten.Image, p pong.Paddle) {
	vector.DrawFilledRect(screen,
		float32(p.Pos.X), float32(p.Pos.Y),
		float32(p.Size.X), float32(p.Size.Y),
		colorForeground, false)
}

// drawBanner prints text centered on a solid plate.
func drawBanner(screen *ebiten.Image, text string) {
	if text == "" {
		return
	}
	lines, cols := 1, 0
	cur := 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		cols = max(cols, cur)
	}

	b := screen.Bounds()
	tw, th := cols*debugGlyphW, lines*debugGlyphH
	x, y := (b.Dx()-tw)/2, (b.Dy()-th)/2
	vector.DrawFilledRect(screen, float32(x-12), float32(y-8), float32(tw+24), float32(th+16), colorBanner, false)
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

// Layout keeps the logical screen at the arena size; Ebiten scales it to
// the window.
func (w *Window) Layout(_, _ int) (int, int) {
	arena := w.game.Config().Arena
	return int(arena.Width), int(arena.Height)
}

// Run opens the window and blocks until it is closed.
func Run(game *pong.Game, runtime core.RuntimeConfig, logger *log.Logger) error {
	w := New(game, runtime, logger)
	arena := game.Config().Arena

	ebiten.SetWindowSize(int(arena.Width), int(arena.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.runtime.TickRate)

	logger.Info("match started", "match", game.MatchID(), "seed", w.runtime.Seed)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

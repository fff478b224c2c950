package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

const defaultFrontend = "tui"

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play a match",
	Long: `Start a match against the CPU. The frontend defaults to the terminal.

Controls:
  K/W/Up     - Move paddle up
  J/S/Down   - Move paddle down
  P          - Pause
  R/Enter    - New match (after game over)
  Q/Esc      - Quit

Difficulty options:
  easy   - Slower CPU paddle
  normal - Default speed
  hard   - Faster CPU paddle, still slower than yours

Examples:
  pong play
  pong play window
  pong play --difficulty hard
  pong play --seed 42 --log-file pong.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := defaultFrontend
	if len(args) == 1 {
		id = args[0]
	}
	return playMatch(id, runtimeConfig())
}

// playMatch loads the config, sets up logging and audio, and runs one
// frontend until the player quits.
func playMatch(id string, runtime core.RuntimeConfig) (err error) {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown frontend %q\nRun 'pong list' to see available frontends", id)
	}
	fe, err := registry.Create(id)
	if err != nil {
		return err
	}

	w, closeLog, err := openLogOutput(flagLogFile, fe.OwnsTerminal())
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closeLog()) }()

	logger, err := newLogger(w, flagLogLevel)
	if err != nil {
		return err
	}

	gc, err := loadGameConfig()
	if err != nil {
		return err
	}
	cfg := gc.Config
	logger.Info("config loaded", "source", gc.Source, "difficulty", gc.Preset, "ai_step", cfg.AI.Step)

	game := pong.New(cfg)
	sounds, closeSounds := setupAudio(cfg.Audio, logger)
	defer closeSounds()
	game.SetSounds(sounds)

	env := registry.Env{
		Game:    game,
		Runtime: runtime,
		Logger:  logger,
	}
	if err := fe.Run(env); err != nil {
		return fmt.Errorf("%s: %w", fe.ID(), err)
	}
	return nil
}

// runtimeConfig builds the runtime settings from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// setupAudio opens the speaker when sound is enabled. The game runs muted
// if the device cannot be opened.
func setupAudio(cfg config.PongAudio, logger *log.Logger) (pong.Sounds, func()) {
	if flagMute || !cfg.Enabled {
		return audio.Nop{}, func() {}
	}

	sm := audio.NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing muted", "error", err)
		return audio.Nop{}, func() {}
	}
	return sm, sm.Close
}

// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pong/internal/config"
)

const sampleRate = beep.SampleRate(44100)

const (
	bounceFreq     = 880.0
	bounceDuration = 40 * time.Millisecond

	scoreHighFreq = 660.0
	scoreLowFreq  = 440.0
	scoreNote     = 120 * time.Millisecond
)

// SoundManager plays bounce and score cues. It is safe for concurrent use
// and silently drops cues until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a manager for the given audio settings.
func NewSoundManager(cfg config.PongAudio) *SoundManager {
	return &SoundManager{
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it again after success is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops all cues.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayBounce plays a short blip.
func (sm *SoundManager) PlayBounce() {
	sm.play(bounceCue(sm.volume))
}

// PlayScore plays a falling two-note cue.
func (sm *SoundManager) PlayScore() {
	sm.play(scoreCue(sm.volume))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func bounceCue(volume float64) beep.Streamer {
	return tone(bounceFreq, bounceDuration, volume)
}

func scoreCue(volume float64) beep.Streamer {
	high := tone(scoreHighFreq, scoreNote, volume)
	low := tone(scoreLowFreq, scoreNote, volume)
	if high == nil || low == nil {
		return nil
	}
	return beep.Seq(high, low)
}

// tone returns a sine wave of the given length, or nil if the frequency
// cannot be generated at the sample rate.
func tone(freq float64, d time.Duration, volume float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return withVolume(beep.Take(sampleRate.N(d), sine), volume)
}

// withVolume scales a streamer linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Nop discards all cues. It is used when audio is disabled or unavailable.
type Nop struct{}

func (Nop) PlayBounce() {}
func (Nop) PlayScore()  {}

package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration, matching the
// embedded defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: PongArena{
			Width:           1280,
			Height:          800,
			BorderThickness: 10,
			DashSize:        10,
			DashSpace:       10,
		},
		Paddles: PongPaddles{
			Width:        20,
			Height:       120,
			Offset:       20,
			ContactWidth: 2,
			PlayerStep:   15,
		},
		Ball: PongBall{
			Radius:     10,
			Speed:      15,
			MaxSlope:   15,
			ServeSlope: 5,
			JitterMax:  50,
		},
		AI: PongAI{
			Step: 5,
		},
		Match: PongMatch{
			WinScore:     3,
			PointPauseMS: 1000,
		},
		Audio: PongAudio{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}

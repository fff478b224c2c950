// Package config provides YAML-based game configuration loading and
// difficulty presets for the pong game.
package config

// PongConfig contains all tunable parameters of the game. Distances are in
// world units (the default arena is 1280x800), speeds in units per tick.
type PongConfig struct {
	Arena   PongArena   `yaml:"arena"`
	Paddles PongPaddles `yaml:"paddles"`
	Ball    PongBall    `yaml:"ball"`
	AI      PongAI      `yaml:"ai"`
	Match   PongMatch   `yaml:"match"`
	Audio   PongAudio   `yaml:"audio"`
}

// PongArena defines the playfield.
type PongArena struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	BorderThickness float64 `yaml:"border_thickness"`
	DashSize        float64 `yaml:"dash_size"`
	DashSpace       float64 `yaml:"dash_space"`
}

// PongPaddles defines both paddles and the player's movement step.
type PongPaddles struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Offset       float64 `yaml:"offset"`        // Distance from the side edge
	ContactWidth float64 `yaml:"contact_width"` // Width of the collision strip at the paddle origin
	PlayerStep   float64 `yaml:"player_step"`
}

// PongBall defines ball size and speed.
type PongBall struct {
	Radius     float64 `yaml:"radius"`
	Speed      float64 `yaml:"speed"`       // Horizontal speed, constant for the whole match
	MaxSlope   float64 `yaml:"max_slope"`   // Scale of the paddle bounce angle
	ServeSlope int     `yaml:"serve_slope"` // Vertical slope band at the start of a round
	JitterMax  int     `yaml:"jitter_max"`  // Bounce jitter upper bound, in thousandths
}

// PongAI defines the opponent's tracking speed.
type PongAI struct {
	Step float64 `yaml:"step"`
}

// PongMatch defines scoring rules.
type PongMatch struct {
	WinScore     int `yaml:"win_score"`
	PointPauseMS int `yaml:"point_pause_ms"`
}

// PongAudio defines sound effect settings.
type PongAudio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Relative volume, 0 = silent, 1 = full
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadPong when no file was found.
const SourceEmbedded = "embedded"

// LoadPong loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.pong/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are applied on top of the defaults, so partial files are allowed.
func LoadPong(customPath string) (PongConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parsePong(data)
		if err != nil {
			return PongConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{"configs/pong.yaml"}
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parsePong(data)
		if err != nil {
			return PongConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := parsePong(DefaultYAML())
	if err != nil {
		return DefaultPongConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parsePong decodes YAML over the defaults and validates the result.
func parsePong(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PongConfig{}, err
	}
	return cfg, nil
}

// MarshalPong encodes a configuration as YAML.
func MarshalPong(cfg PongConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable game.
func (c PongConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, errors.New("arena width and height must be positive"))
	}
	if c.Arena.BorderThickness < 0 {
		errs = append(errs, errors.New("arena border_thickness must not be negative"))
	}
	if c.Paddles.Width <= 0 || c.Paddles.Height <= 0 || c.Paddles.ContactWidth <= 0 {
		errs = append(errs, errors.New("paddle width, height and contact_width must be positive"))
	}
	if c.Paddles.Height > c.Arena.Height-2*c.Arena.BorderThickness {
		errs = append(errs, errors.New("paddle height does not fit between the borders"))
	}
	if c.Paddles.PlayerStep <= 0 || c.AI.Step <= 0 {
		errs = append(errs, errors.New("paddle player_step and ai step must be positive"))
	}
	if c.AI.Step >= c.Paddles.PlayerStep {
		errs = append(errs, fmt.Errorf("ai step %g must be below player_step %g", c.AI.Step, c.Paddles.PlayerStep))
	}
	if c.Ball.Radius <= 0 || c.Ball.Speed <= 0 || c.Ball.MaxSlope <= 0 {
		errs = append(errs, errors.New("ball radius, speed and max_slope must be positive"))
	}
	if c.Ball.ServeSlope < 0 || float64(c.Ball.ServeSlope) >= c.Ball.MaxSlope {
		errs = append(errs, errors.New("ball serve_slope must be in [0, max_slope)"))
	}
	if c.Ball.JitterMax < 0 {
		errs = append(errs, errors.New("ball jitter_max must not be negative"))
	}
	if c.Match.WinScore <= 0 {
		errs = append(errs, errors.New("match win_score must be positive"))
	}
	if c.Match.PointPauseMS < 0 {
		errs = append(errs, errors.New("match point_pause_ms must not be negative"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, errors.New("audio volume must be in [0, 1]"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", filename)
}

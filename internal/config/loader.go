package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPaperPlane loads the paper plane configuration.
// Search order: customPath -> ~/.paperplane/configs/paperplane.yaml -> ./configs/paperplane.yaml -> embedded default
//
// Every source is decoded on top of DefaultPaperPlaneConfig, so a partial
// YAML file only overrides the keys it sets.
func LoadPaperPlane(customPath string) (PaperPlaneConfig, error) {
	cfg := DefaultPaperPlaneConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("paperplane.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultPaperPlaneConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "paperplane.yaml")); err == nil {
		candidate := DefaultPaperPlaneConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPaperPlaneYAML, &cfg); err != nil {
		return DefaultPaperPlaneConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paperplane", "configs", filename)
}

// ApplyPaperPlanePreset modifies the config based on a difficulty preset.
func ApplyPaperPlanePreset(cfg *PaperPlaneConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Base = 0.8
		cfg.Difficulty.PerLevel = 0.07
		cfg.Difficulty.Max = 2.2
		cfg.Physics.GroundSpeed = 10
	case DifficultyNormal:
		cfg.Difficulty.Base = 1.0
		cfg.Difficulty.PerLevel = 0.1
		cfg.Difficulty.Max = 3.0
	case DifficultyHard:
		cfg.Difficulty.Base = 1.3
		cfg.Difficulty.PerLevel = 0.12
		cfg.Difficulty.Max = 3.5
		cfg.Physics.GroundSpeed = 6
	}
}

// Validate checks the values the simulation relies on.
func (c PaperPlaneConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Playfield.GroundMargin < 0 || c.Playfield.GroundMargin >= c.Playfield.Height {
		errs = append(errs, fmt.Errorf("ground_margin %v out of range", c.Playfield.GroundMargin))
	}
	if c.Physics.AirResistance <= 0 || c.Physics.AirResistance >= 1 {
		errs = append(errs, fmt.Errorf("air_resistance must be in (0, 1), got %v", c.Physics.AirResistance))
	}
	if c.Physics.GroundSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ground_speed must be positive, got %v", c.Physics.GroundSpeed))
	}
	if c.Generator.MaxLevels < 1 {
		errs = append(errs, fmt.Errorf("max_levels must be at least 1, got %d", c.Generator.MaxLevels))
	}
	if c.Generator.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max_attempts must be at least 1, got %d", c.Generator.MaxAttempts))
	}
	if c.Crash.Particles < 0 {
		errs = append(errs, fmt.Errorf("crash particles must not be negative, got %d", c.Crash.Particles))
	}
	if c.Crash.Shrink <= 0 || c.Crash.Shrink >= 1 {
		errs = append(errs, fmt.Errorf("crash shrink must be in (0, 1), got %v", c.Crash.Shrink))
	}
	if c.Transition.AlphaStep <= 0 {
		errs = append(errs, fmt.Errorf("transition alpha_step must be positive, got %v", c.Transition.AlphaStep))
	}

	return errors.Join(errs...)
}

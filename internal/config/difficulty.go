package config

import "math"

// DifficultyManager maps a level number to the difficulty scalar used by the
// level generator and controls.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the difficulty scalar for a 1-based level number:
// min(base + (level-1)*perLevel, max). With progression disabled it is base.
func (d *DifficultyManager) Level(level int) float64 {
	base := d.cfg.Base
	if base <= 0 {
		base = 1
	}
	if !d.cfg.Enabled || level <= 1 {
		return base
	}

	v := base + float64(level-1)*d.cfg.PerLevel
	if d.cfg.Max > 0 {
		v = math.Min(v, d.cfg.Max)
	}
	return v
}

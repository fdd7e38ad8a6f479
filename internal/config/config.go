// Package config provides YAML-based game configuration loading and
// difficulty management for the paper plane game.
package config

// PaperPlaneConfig contains all configuration for the paper plane game.
// Distances are in world units (the playfield is 1280x720 by default) and
// rates are per simulation tick.
type PaperPlaneConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Plane      PlaneConfig      `yaml:"plane"`
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Controls   ControlsConfig   `yaml:"controls"`
	Generator  GeneratorConfig  `yaml:"generator"`
	TimeLimit  TimeLimitConfig  `yaml:"time_limit"`
	Transition TransitionConfig `yaml:"transition"`
	Crash      CrashConfig      `yaml:"crash"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the integrator constants.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	AirResistance    float64 `yaml:"air_resistance"`    // Velocity multiplier per tick, must be < 1
	ZoneForceScale   float64 `yaml:"zone_force_scale"`  // Fraction of a zone's force applied per tick
	TurbulenceRange  float64 `yaml:"turbulence_range"`  // Turbulence radius as a multiple of blade radius
	TurbulenceScale  float64 `yaml:"turbulence_scale"`  // Force per unit of windmill speed
	TurbulenceJitter float64 `yaml:"turbulence_jitter"` // Random jitter as a fraction of the force
	GroundSpeed      float64 `yaml:"ground_speed"`      // Impact speed above which the plane crashes
	BounceDamping    float64 `yaml:"bounce_damping"`
	MaxSpeed         float64 `yaml:"max_speed"`      // 0 disables the speed clamp
	AnimationStep    float64 `yaml:"animation_step"` // Shared animation clock advance per tick
}

// PlaneConfig defines the plane's spawn point and hitbox.
type PlaneConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayfieldConfig defines the world dimensions.
type PlayfieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"` // Ground line sits this far above the bottom edge
}

// ControlsConfig defines how player gestures become wind and impulses.
type ControlsConfig struct {
	WindStrength    float64 `yaml:"wind_strength"`    // Keyboard wind, scaled by difficulty
	GustImpulse     float64 `yaml:"gust_impulse"`     // Mouse click impulse
	TapImpulse      float64 `yaml:"tap_impulse"`      // Touch tap impulse
	DragSensitivity float64 `yaml:"drag_sensitivity"` // Drag delta to target wind
	DragSmoothing   float64 `yaml:"drag_smoothing"`   // Exponential smoothing toward the target
	MaxDragWind     float64 `yaml:"max_drag_wind"`
	ReleaseDecay    float64 `yaml:"release_decay"` // Wind multiplier per tick after a drag ends
	ReleaseEpsilon  float64 `yaml:"release_epsilon"`
	KeyReleaseTicks int     `yaml:"key_release_ticks"` // Terminal key-up emulation
}

// GeneratorConfig defines procedural level generation parameters.
type GeneratorConfig struct {
	MaxLevels       int     `yaml:"max_levels"`
	Stars           int     `yaml:"stars"`
	MaxAttempts     int     `yaml:"max_attempts"`
	StarMinDist     float64 `yaml:"star_min_dist"`
	WindmillMinDist float64 `yaml:"windmill_min_dist"`
	BalloonMinDist  float64 `yaml:"balloon_min_dist"`
	ZoneMinDist     float64 `yaml:"zone_min_dist"`
	MaxWindmills    int     `yaml:"max_windmills"`
	MaxBalloons     int     `yaml:"max_balloons"`
	MaxZones        int     `yaml:"max_zones"`
	GoalOrbit       float64 `yaml:"goal_orbit"` // Radius of the circle the goal moves on
	GoalRadius      float64 `yaml:"goal_radius"`
	GoalGlow        float64 `yaml:"goal_glow"`
	StarValue       int     `yaml:"star_value"`
}

// TimeLimitConfig defines the optional per-level time limit.
type TimeLimitConfig struct {
	Enabled     bool    `yaml:"enabled"`
	FromLevel   int     `yaml:"from_level"` // First level with a limit
	BaseSeconds float64 `yaml:"base_seconds"`
	PerLevel    float64 `yaml:"per_level"`
	MinSeconds  float64 `yaml:"min_seconds"`
}

// TransitionConfig defines the level-complete fade sequence.
type TransitionConfig struct {
	AlphaStep float64 `yaml:"alpha_step"`
	HoldTicks int     `yaml:"hold_ticks"`
}

// CrashConfig defines the crash sequence and its particle burst.
type CrashConfig struct {
	DelayTicks      int     `yaml:"delay_ticks"` // Ticks between crash and game over
	Particles       int     `yaml:"particles"`
	Spread          float64 `yaml:"spread"` // Velocity range per axis, centered on zero
	MinSize         float64 `yaml:"min_size"`
	SizeRange       float64 `yaml:"size_range"`
	ParticleGravity float64 `yaml:"particle_gravity"`
	Shrink          float64 `yaml:"shrink"`
	RemoveBelow     float64 `yaml:"remove_below"`
}

// DifficultyConfig defines the per-level difficulty ramp.
// Difficulty scales windmill speed, wind-zone force and keyboard wind.
type DifficultyConfig struct {
	Enabled  bool    `yaml:"enabled"` // When false every level uses Base
	Base     float64 `yaml:"base"`
	PerLevel float64 `yaml:"per_level"`
	Max      float64 `yaml:"max"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

package config

import (
	_ "embed"
)

//go:embed defaults/paperplane.yaml
var defaultPaperPlaneYAML []byte

// DefaultPaperPlaneYAML returns the embedded default configuration document.
func DefaultPaperPlaneYAML() []byte {
	return defaultPaperPlaneYAML
}

// DefaultPaperPlaneConfig returns the default paper plane configuration.
func DefaultPaperPlaneConfig() PaperPlaneConfig {
	return PaperPlaneConfig{
		Physics: PhysicsConfig{
			Gravity:          0.2,
			AirResistance:    0.98,
			ZoneForceScale:   0.1,
			TurbulenceRange:  1.5,
			TurbulenceScale:  15,
			TurbulenceJitter: 0.5,
			GroundSpeed:      8,
			BounceDamping:    0.5,
			MaxSpeed:         0,
			AnimationStep:    0.05,
		},
		Plane: PlaneConfig{
			StartX: 100,
			StartY: 200,
			Width:  30,
			Height: 20,
		},
		Playfield: PlayfieldConfig{
			Width:        1280,
			Height:       720,
			GroundMargin: 50,
		},
		Controls: ControlsConfig{
			WindStrength:    0.5,
			GustImpulse:     5,
			TapImpulse:      2,
			DragSensitivity: 0.008,
			DragSmoothing:   0.08,
			MaxDragWind:     1.0,
			ReleaseDecay:    0.8,
			ReleaseEpsilon:  0.01,
			KeyReleaseTicks: 8,
		},
		Generator: GeneratorConfig{
			MaxLevels:       30,
			Stars:           3,
			MaxAttempts:     50,
			StarMinDist:     100,
			WindmillMinDist: 150,
			BalloonMinDist:  100,
			ZoneMinDist:     100,
			MaxWindmills:    5,
			MaxBalloons:     4,
			MaxZones:        6,
			GoalOrbit:       200,
			GoalRadius:      30,
			GoalGlow:        20,
			StarValue:       100,
		},
		TimeLimit: TimeLimitConfig{
			Enabled:     false,
			FromLevel:   5,
			BaseSeconds: 90,
			PerLevel:    1.5,
			MinSeconds:  30,
		},
		Transition: TransitionConfig{
			AlphaStep: 0.02,
			HoldTicks: 60,
		},
		Crash: CrashConfig{
			DelayTicks:      6,
			Particles:       30,
			Spread:          15,
			MinSize:         3,
			SizeRange:       8,
			ParticleGravity: 0.5,
			Shrink:          0.95,
			RemoveBelow:     0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:  true,
			Base:     1.0,
			PerLevel: 0.1,
			Max:      3.0,
		},
	}
}

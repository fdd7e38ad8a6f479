package paperplane

import (
	"math/rand"

	"github.com/vovakirdan/paper-plane/internal/config"
	"github.com/vovakirdan/paper-plane/internal/core"
)

// Particle is one fragment of the crash burst.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Size  float64
	Color core.Color
}

// particleColors are the two paper shades a burst is drawn from.
var particleColors = [2]core.Color{core.ColorBrightWhite, core.ColorGray}

// ParticleSystem owns the crash burst.
type ParticleSystem struct {
	cfg       config.CrashConfig
	particles []Particle
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.CrashConfig) *ParticleSystem {
	return &ParticleSystem{cfg: cfg}
}

// Burst spawns the configured number of particles at pos.
func (ps *ParticleSystem) Burst(pos core.Vec2, rng *rand.Rand) {
	for range ps.cfg.Particles {
		ps.particles = append(ps.particles, Particle{
			Pos: pos,
			Vel: core.V(
				(rng.Float64()-0.5)*ps.cfg.Spread,
				(rng.Float64()-0.5)*ps.cfg.Spread,
			),
			Size:  rng.Float64()*ps.cfg.SizeRange + ps.cfg.MinSize,
			Color: particleColors[rng.Intn(len(particleColors))],
		})
	}
}

// Update moves, drops and shrinks every particle, then removes the ones that
// shrank below the threshold.
func (ps *ParticleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y += ps.cfg.ParticleGravity
		p.Size *= ps.cfg.Shrink
		if p.Size > ps.cfg.RemoveBelow {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Particles returns a copy of the live particles.
func (ps *ParticleSystem) Particles() []Particle {
	out := make([]Particle, len(ps.particles))
	copy(out, ps.particles)
	return out
}

// Clear removes all particles.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

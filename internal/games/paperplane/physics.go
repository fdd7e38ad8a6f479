package paperplane

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/paper-plane/internal/config"
	"github.com/vovakirdan/paper-plane/internal/core"
)

// Plane is the player's paper plane. Pos is the top-left of its hitbox.
type Plane struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Width  float64
	Height float64
}

// Center returns the middle of the plane's hitbox.
func (p Plane) Center() core.Vec2 {
	return core.V(p.Pos.X+p.Width/2, p.Pos.Y+p.Height/2)
}

// Heading returns the direction of travel in radians (0 when at rest).
func (p Plane) Heading() float64 {
	if p.Vel.X == 0 && p.Vel.Y == 0 {
		return 0
	}
	return p.Vel.Angle()
}

// Wind is the player-driven wind vector. Strength is the magnitude a
// direction key applies on its axis.
type Wind struct {
	X, Y     float64
	Strength float64
}

// Vec returns the wind as a vector.
func (w Wind) Vec() core.Vec2 {
	return core.V(w.X, w.Y)
}

// Integrator advances the plane's velocity one tick at a time.
type Integrator struct {
	phys config.PhysicsConfig
	rng  *rand.Rand // Turbulence jitter
}

// NewIntegrator creates an integrator using rng for turbulence jitter.
func NewIntegrator(phys config.PhysicsConfig, rng *rand.Rand) *Integrator {
	return &Integrator{phys: phys, rng: rng}
}

// Step applies all per-tick forces to the plane's velocity, in order:
// wind, gravity, air resistance, wind zones, windmill turbulence and the
// optional speed clamp. Position is not changed.
func (in *Integrator) Step(p *Plane, w Wind, obstacles []Obstacle, zones []WindZone, tick int) {
	in.ApplyWind(p, w)
	in.ApplyGravity(p)
	in.ApplyDrag(p)
	in.ApplyZones(p, zones, tick)
	in.ApplyTurbulence(p, obstacles)
	in.ClampSpeed(p)
}

// ApplyWind adds the wind vector to the velocity.
func (in *Integrator) ApplyWind(p *Plane, w Wind) {
	p.Vel.X += w.X
	p.Vel.Y += w.Y
}

// ApplyGravity pulls the plane down.
func (in *Integrator) ApplyGravity(p *Plane) {
	p.Vel.Y += in.phys.Gravity
}

// ApplyDrag scales velocity by the air-resistance factor.
func (in *Integrator) ApplyDrag(p *Plane) {
	p.Vel = p.Vel.Scale(in.phys.AirResistance)
}

// ApplyZones adds a fraction of each containing zone's force.
// Membership is tested on the plane position, not its center.
func (in *Integrator) ApplyZones(p *Plane, zones []WindZone, tick int) {
	for _, z := range zones {
		if InZone(p.Pos, z) {
			p.Vel = p.Vel.Add(z.ForceAt(tick).Scale(in.phys.ZoneForceScale))
		}
	}
}

// ApplyTurbulence pushes the plane sideways near spinning windmills.
// The push is perpendicular to the rotor angle and fades linearly to zero
// at TurbulenceRange blade radii.
func (in *Integrator) ApplyTurbulence(p *Plane, obstacles []Obstacle) {
	for _, o := range obstacles {
		w, ok := o.(*Windmill)
		if !ok {
			continue
		}
		turbR := w.Radius * in.phys.TurbulenceRange
		if turbR <= 0 {
			continue
		}
		d := p.Pos.Dist(w.Pos)
		if d >= turbR {
			continue
		}

		force := (1 - d/turbR) * w.Speed * in.phys.TurbulenceScale
		push := core.FromAngle(w.Rotation+math.Pi/2, force)
		p.Vel = p.Vel.Add(push)

		if in.rng != nil && in.phys.TurbulenceJitter > 0 {
			j := force * in.phys.TurbulenceJitter
			p.Vel.X += (in.rng.Float64() - 0.5) * j
			p.Vel.Y += (in.rng.Float64() - 0.5) * j
		}
	}
}

// ClampSpeed limits the speed to MaxSpeed when it is positive.
func (in *Integrator) ClampSpeed(p *Plane) {
	if in.phys.MaxSpeed <= 0 {
		return
	}
	if s := p.Vel.Len(); s > in.phys.MaxSpeed {
		p.Vel = p.Vel.Scale(in.phys.MaxSpeed / s)
	}
}

// Move advances the position by the velocity.
func (p *Plane) Move() {
	p.Pos = p.Pos.Add(p.Vel)
}

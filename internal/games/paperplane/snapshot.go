package paperplane

import (
	"math"

	"github.com/vovakirdan/paper-plane/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Mutating it has no effect on the session.
type Snapshot struct {
	Tick       uint64
	Generation uint64
	State      State
	Paused     bool
	Won        bool

	Level     int
	MaxLevels int
	TimeLeft  float64 // -1 when the level is untimed

	Plane     Plane
	Heading   float64
	Wind      Wind
	Stars     []Star
	Obstacles []Obstacle
	Zones     []WindZone
	Forces    []core.Vec2 // Current force of each zone
	Goal      Goal
	Score     Score

	CrashActive bool
	CrashCause  CrashCause
	Particles   []Particle

	Transition TransitionPhase
	Alpha      float64
}

// Snapshot captures the current frame.
func (s *Session) Snapshot() Snapshot {
	forces := make([]core.Vec2, len(s.zones))
	for i, z := range s.zones {
		forces[i] = z.ForceAt(s.levelTicks)
	}

	return Snapshot{
		Tick:       s.tick,
		Generation: s.generation,
		State:      s.state,
		Paused:     s.paused,
		Won:        s.Won(),

		Level:     s.level.Number,
		MaxLevels: s.cfg.Generator.MaxLevels,
		TimeLeft:  s.TimeLeft(),

		Plane:     s.plane,
		Heading:   s.plane.Heading(),
		Wind:      s.wind,
		Stars:     s.Stars(),
		Obstacles: s.Obstacles(),
		Zones:     s.WindZones(),
		Forces:    forces,
		Goal:      s.goal,
		Score:     s.score,

		CrashActive: s.crash.Active,
		CrashCause:  s.crash.Cause,
		Particles:   s.particles.Particles(),

		Transition: s.transition.Phase,
		Alpha:      s.transition.Alpha,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = mix(h, uint64(snap.Level))         //#nosec G115 -- hash computation
	h = mix(h, uint64(snap.Score.Current)) //#nosec G115 -- hash computation
	h = mix(h, uint64(len(snap.State)))    //#nosec G115 -- hash computation
	h = mixF(h, snap.Plane.Pos.X, snap.Plane.Pos.Y, snap.Plane.Vel.X, snap.Plane.Vel.Y)
	h = mixF(h, snap.Wind.X, snap.Wind.Y)

	for _, st := range snap.Stars {
		h = mixF(h, st.Pos.X, st.Pos.Y, st.CurrentY)
		if st.Collected {
			h = mix(h, 1)
		}
	}
	for _, o := range snap.Obstacles {
		switch o := o.(type) {
		case *Windmill:
			h = mixF(h, o.Pos.X, o.Pos.Y, o.Radius, o.Rotation, o.Speed)
		case *Balloon:
			h = mixF(h, o.Pos.X, o.Pos.Y, o.Radius, o.Phase)
		}
	}
	for _, z := range snap.Zones {
		h = mixF(h, z.Rect.X, z.Rect.Y, z.Rect.W, z.Rect.H, z.Force.X, z.Force.Y)
	}
	for _, p := range snap.Particles {
		h = mixF(h, p.Pos.X, p.Pos.Y, p.Size)
	}
	h = mixF(h, snap.Goal.Pos.X, snap.Goal.Pos.Y)
	h = mix(h, uint64(snap.Transition)) //#nosec G115 -- hash computation
	return h
}

func mix(h, v uint64) uint64 {
	return h*31 + v
}

func mixF(h uint64, vs ...float64) uint64 {
	for _, v := range vs {
		h = mix(h, math.Float64bits(v))
	}
	return h
}

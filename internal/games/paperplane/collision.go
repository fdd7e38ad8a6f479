package paperplane

import (
	"math"

	"github.com/vovakirdan/paper-plane/internal/core"
)

// Collision thresholds in world units.
const (
	starPickupRadius = 25.0
	goalMargin       = 20.0
	balloonMargin    = 15.0
	bladeTolerance   = 0.2 // Radians either side of a blade
)

// Bounds is the playable area. The plane crashes into the walls or the ground
// when it hits them faster than GroundSpeed on that axis.
type Bounds struct {
	Left, Right float64
	Bottom      float64 // Ground line
	GroundSpeed float64
	Damping     float64 // Wall bounce keeps this fraction of the speed
}

// CrashCause records what ended a run.
type CrashCause int

const (
	CauseNone CrashCause = iota
	CauseObstacle
	CauseWall
	CauseGround
	CauseTimeout
)

func (c CrashCause) String() string {
	switch c {
	case CauseObstacle:
		return "obstacle"
	case CauseWall:
		return "wall"
	case CauseGround:
		return "ground"
	case CauseTimeout:
		return "timeout"
	default:
		return "none"
	}
}

// StarHit reports whether a plane centered at c picks up s.
func StarHit(c core.Vec2, s Star) bool {
	return c.Dist(core.V(s.Pos.X, s.CurrentY)) < starPickupRadius
}

// CollectStars marks every uncollected star within reach as collected and
// returns how many were picked up. Already collected stars are skipped, so
// calling it twice in one tick awards nothing extra.
func CollectStars(c core.Vec2, stars []Star) int {
	n := 0
	for i := range stars {
		if stars[i].Collected {
			continue
		}
		if StarHit(c, stars[i]) {
			stars[i].Collected = true
			n++
		}
	}
	return n
}

// GoalReached reports whether a plane centered at c has arrived at g.
func GoalReached(c core.Vec2, g Goal) bool {
	return c.Dist(g.Pos) < g.Radius+goalMargin
}

// HitsObstacle reports whether a plane centered at c touches o.
func HitsObstacle(c core.Vec2, o Obstacle) bool {
	switch o := o.(type) {
	case *Windmill:
		return windmillHit(c, o)
	case *Balloon:
		return balloonHit(c, o)
	}
	return false
}

// FirstObstacleHit returns the first obstacle the plane touches, or nil.
func FirstObstacleHit(c core.Vec2, obstacles []Obstacle) Obstacle {
	for _, o := range obstacles {
		if HitsObstacle(c, o) {
			return o
		}
	}
	return nil
}

// windmillHit only counts contact with a blade, not the gaps between them.
func windmillHit(c core.Vec2, w *Windmill) bool {
	if c.Dist(w.Pos) >= w.Radius {
		return false
	}
	rel := c.Sub(w.Pos).Angle() - w.Rotation
	for i := range 3 {
		blade := float64(i) * 2 * math.Pi / 3
		if angleDiff(rel, blade) <= bladeTolerance {
			return true
		}
	}
	return false
}

func balloonHit(c core.Vec2, b *Balloon) bool {
	if c.Dist(b.Pos) < b.Radius+balloonMargin {
		return true
	}
	return b.Basket().ContainsPoint(c)
}

// angleDiff returns the smallest absolute difference between two angles.
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// InZone reports whether pos is inside the zone's rectangle.
func InZone(pos core.Vec2, z WindZone) bool {
	return z.Rect.ContainsPoint(pos)
}

// ImpactCrash checks the plane against the walls and ground before it moves.
// Touching a boundary at exactly GroundSpeed is survivable.
func ImpactCrash(p Plane, b Bounds) CrashCause {
	if p.Pos.Y >= b.Bottom && math.Abs(p.Vel.Y) > b.GroundSpeed {
		return CauseGround
	}
	if (p.Pos.X <= b.Left || p.Pos.X >= b.Right) && math.Abs(p.Vel.X) > b.GroundSpeed {
		return CauseWall
	}
	return CauseNone
}

// ResolveBounds settles the plane after it has moved: fast contacts crash,
// slow wall contacts bounce and slow ground contacts land.
func ResolveBounds(p *Plane, b Bounds) CrashCause {
	if p.Pos.X < b.Left || p.Pos.X > b.Right {
		if math.Abs(p.Vel.X) > b.GroundSpeed {
			return CauseWall
		}
		p.Pos.X = core.ClampF(p.Pos.X, b.Left, b.Right)
		p.Vel.X *= -b.Damping
	}

	if p.Pos.Y >= b.Bottom {
		if math.Abs(p.Vel.Y) > b.GroundSpeed {
			return CauseGround
		}
		p.Pos.Y = b.Bottom
		p.Vel.Y = 0
	}
	return CauseNone
}

package paperplane

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/paper-plane/internal/config"
	"github.com/vovakirdan/paper-plane/internal/core"
)

// Star is a collectible. Collected only ever goes from false to true.
type Star struct {
	Pos       core.Vec2 // Anchor position
	CurrentY  float64   // Bobbing y, derived from the shared animation clock
	Collected bool
}

// Goal is the level exit.
type Goal struct {
	Pos       core.Vec2
	Radius    float64
	BaseGlow  float64
	Glow      float64 // Never negative
	Completed bool
}

// WindZone is a static rectangle that pushes the plane while it is inside.
type WindZone struct {
	Rect        core.RectF
	Force       core.Vec2
	Visible     bool
	Oscillating bool
	Frequency   float64 // Radians per tick of the oscillation
}

// ForceAt returns the zone force at the given tick of the level.
// Oscillating zones swing their force up to 45 degrees either way and
// breathe between half and full strength.
func (z WindZone) ForceAt(tick int) core.Vec2 {
	if !z.Oscillating || z.Frequency == 0 {
		return z.Force
	}
	t := float64(tick) * z.Frequency
	scale := 0.75 + 0.25*math.Cos(t)
	return z.Force.Rotate(math.Sin(t) * math.Pi / 4).Scale(scale)
}

// LevelConfig is the generated layout of one level.
type LevelConfig struct {
	Number       int
	Difficulty   float64
	Stars        []core.Vec2
	Goal         core.Vec2
	GoalRadius   float64
	GoalGlow     float64
	WindStrength float64
	Obstacles    []Obstacle
	WindZones    []WindZone
	TimeLimit    float64 // Seconds, 0 when the level is untimed
}

// Timed reports whether the level has a time limit.
func (l LevelConfig) Timed() bool {
	return l.TimeLimit > 0
}

// Counts is the number of each generated entity kind for a level.
type Counts struct {
	Stars     int
	Windmills int
	Balloons  int
	Zones     int
}

// CountsFor returns the entity counts for a 1-based level number.
func CountsFor(level int, gen config.GeneratorConfig) Counts {
	return Counts{
		Stars:     gen.Stars,
		Windmills: min(level/3, gen.MaxWindmills),
		Balloons:  min(max(level-1, 0)/4, gen.MaxBalloons),
		Zones:     min(max(level-1, 0)/2, gen.MaxZones),
	}
}

// GoalPosition places the goal on a circle around the playfield center.
// The angle steps a quarter turn per level so the goal cycles through all
// four quadrants.
func GoalPosition(level int, cfg config.PaperPlaneConfig) core.Vec2 {
	center := core.V(cfg.Playfield.Width/2, cfg.Playfield.Height/2)
	angle := float64(level%4) * math.Pi / 2
	return center.Add(core.FromAngle(angle, cfg.Generator.GoalOrbit))
}

// TimeLimitFor returns the time limit in seconds, or 0 if the level is untimed.
func TimeLimitFor(level int, tl config.TimeLimitConfig) float64 {
	if !tl.Enabled || level < tl.FromLevel {
		return 0
	}
	return math.Max(tl.BaseSeconds-float64(level)*tl.PerLevel, tl.MinSeconds)
}

// Generator builds levels from a seeded random source.
type Generator struct {
	cfg        config.PaperPlaneConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// NewGenerator creates a level generator that draws from rng.
func NewGenerator(cfg config.PaperPlaneConfig, rng *rand.Rand) *Generator {
	return &Generator{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rng,
	}
}

// Difficulty returns the difficulty scalar for a level.
func (g *Generator) Difficulty(level int) float64 {
	return g.difficulty.Level(level)
}

// Generate produces the layout for a 1-based level number.
// It always terminates: every placement is capped at MaxAttempts draws.
func (g *Generator) Generate(level int) LevelConfig {
	if level < 1 {
		level = 1
	}
	gen := g.cfg.Generator
	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height
	difficulty := g.Difficulty(level)
	counts := CountsFor(level, gen)

	lc := LevelConfig{
		Number:       level,
		Difficulty:   difficulty,
		Goal:         GoalPosition(level, g.cfg),
		GoalRadius:   gen.GoalRadius,
		GoalGlow:     gen.GoalGlow,
		WindStrength: g.cfg.Controls.WindStrength * difficulty,
		TimeLimit:    TimeLimitFor(level, g.cfg.TimeLimit),
	}

	// Stars
	placed := make([]core.Vec2, 0, counts.Stars)
	for range counts.Stars {
		p := g.place(area{200, 50, w - 400, h - 150}, gen.StarMinDist, placed)
		placed = append(placed, p)
	}
	lc.Stars = placed

	// Windmills
	placed = make([]core.Vec2, 0, counts.Windmills)
	for range counts.Windmills {
		p := g.place(area{200, 100, w - 400, h - 200}, gen.WindmillMinDist, placed)
		placed = append(placed, p)

		speed := (0.02 + g.rng.Float64()*0.02) * difficulty
		if g.rng.Float64() < 0.5 {
			speed = -speed
		}
		lc.Obstacles = append(lc.Obstacles, &Windmill{
			Pos:    p,
			Radius: 70 + g.rng.Float64()*40,
			Speed:  speed,
		})
	}

	// Balloons
	placed = make([]core.Vec2, 0, counts.Balloons)
	for range counts.Balloons {
		p := g.place(area{150, 100, w - 300, h - 300}, gen.BalloonMinDist, placed)
		placed = append(placed, p)

		lc.Obstacles = append(lc.Obstacles, &Balloon{
			Pos:       p,
			Radius:    25 + g.rng.Float64()*15,
			Amplitude: 80 + g.rng.Float64()*60,
			Frequency: 0.02 + g.rng.Float64()*0.02,
			Phase:     g.rng.Float64() * 2 * math.Pi,
		})
	}

	// Wind zones
	placed = make([]core.Vec2, 0, counts.Zones)
	for range counts.Zones {
		p := g.place(area{100, 50, w - 300, h - 200}, gen.ZoneMinDist, placed)
		placed = append(placed, p)

		lc.WindZones = append(lc.WindZones, WindZone{
			Rect: core.RectF{
				X: p.X,
				Y: p.Y,
				W: 100 + g.rng.Float64()*150,
				H: 100 + g.rng.Float64()*150,
			},
			Force: core.V(
				(g.rng.Float64()*2-1)*2*difficulty,
				(g.rng.Float64()*2-1)*2*difficulty,
			),
			Visible:     true,
			Oscillating: g.rng.Float64() > 0.5,
			Frequency:   0.005 + g.rng.Float64()*0.015,
		})
	}

	return lc
}

// area is a placement rectangle: origin plus extent.
type area struct {
	x, y, w, h float64
}

// place draws candidates uniformly from a until one is farther than minDist
// from every point in existing. After MaxAttempts draws the last candidate
// is accepted as is.
func (g *Generator) place(a area, minDist float64, existing []core.Vec2) core.Vec2 {
	// Degenerate playfields collapse the range onto its origin.
	w, h := math.Max(a.w, 0), math.Max(a.h, 0)
	attempts := max(g.cfg.Generator.MaxAttempts, 1)

	var candidate core.Vec2
	for range attempts {
		candidate = core.V(a.x+g.rng.Float64()*w, a.y+g.rng.Float64()*h)
		if farFromAll(candidate, existing, minDist) {
			return candidate
		}
	}
	return candidate
}

func farFromAll(p core.Vec2, others []core.Vec2, minDist float64) bool {
	for _, o := range others {
		if p.Dist(o) <= minDist {
			return false
		}
	}
	return true
}

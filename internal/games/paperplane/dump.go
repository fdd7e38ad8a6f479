package paperplane

import (
	"fmt"

	"github.com/vovakirdan/paper-plane/internal/config"
)

// Point is a YAML-friendly position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ObstacleDoc describes one obstacle in a level dump.
type ObstacleDoc struct {
	Kind      string  `yaml:"kind"`
	At        Point   `yaml:"at"`
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed,omitempty"`
	Amplitude float64 `yaml:"amplitude,omitempty"`
	Frequency float64 `yaml:"frequency,omitempty"`
}

// ZoneDoc describes one wind zone in a level dump.
type ZoneDoc struct {
	At          Point   `yaml:"at"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Force       Point   `yaml:"force"`
	Visible     bool    `yaml:"visible"`
	Oscillating bool    `yaml:"oscillating"`
	Frequency   float64 `yaml:"frequency,omitempty"`
}

// LevelDocument is the printable form of a generated level.
type LevelDocument struct {
	Level        int           `yaml:"level"`
	Seed         int64         `yaml:"seed"`
	Difficulty   float64       `yaml:"difficulty"`
	WindStrength float64       `yaml:"wind_strength"`
	TimeLimit    float64       `yaml:"time_limit,omitempty"`
	Goal         Point         `yaml:"goal"`
	GoalRadius   float64       `yaml:"goal_radius"`
	Stars        []Point       `yaml:"stars"`
	Obstacles    []ObstacleDoc `yaml:"obstacles"`
	Zones        []ZoneDoc     `yaml:"wind_zones"`
	Hash         string        `yaml:"hash"`
}

// DumpLevel returns the layout a fresh run with the given seed meets at
// level n, along with the hash of the session snapshot at that point.
func DumpLevel(cfg config.PaperPlaneConfig, seed int64, n int) (LevelDocument, error) {
	if n < 1 || n > cfg.Generator.MaxLevels {
		return LevelDocument{}, fmt.Errorf("level %d out of range 1..%d", n, cfg.Generator.MaxLevels)
	}

	s := NewSession(cfg, seed, 60)
	for i := 2; i <= n; i++ {
		s.InitLevel(i)
	}
	lvl := s.Level()
	snap := s.Snapshot()

	doc := LevelDocument{
		Level:        lvl.Number,
		Seed:         seed,
		Difficulty:   lvl.Difficulty,
		WindStrength: lvl.WindStrength,
		TimeLimit:    lvl.TimeLimit,
		Goal:         Point{lvl.Goal.X, lvl.Goal.Y},
		GoalRadius:   lvl.GoalRadius,
		Hash:         fmt.Sprintf("%016x", snap.Hash()),
	}
	for _, p := range lvl.Stars {
		doc.Stars = append(doc.Stars, Point{p.X, p.Y})
	}
	for _, o := range lvl.Obstacles {
		switch o := o.(type) {
		case *Windmill:
			doc.Obstacles = append(doc.Obstacles, ObstacleDoc{
				Kind:   "windmill",
				At:     Point{o.Pos.X, o.Pos.Y},
				Radius: o.Radius,
				Speed:  o.Speed,
			})
		case *Balloon:
			doc.Obstacles = append(doc.Obstacles, ObstacleDoc{
				Kind:      "balloon",
				At:        Point{o.Pos.X, o.Pos.Y},
				Radius:    o.Radius,
				Amplitude: o.Amplitude,
				Frequency: o.Frequency,
			})
		}
	}
	for _, z := range lvl.WindZones {
		doc.Zones = append(doc.Zones, ZoneDoc{
			At:          Point{z.Rect.X, z.Rect.Y},
			Width:       z.Rect.W,
			Height:      z.Rect.H,
			Force:       Point{z.Force.X, z.Force.Y},
			Visible:     z.Visible,
			Oscillating: z.Oscillating,
			Frequency:   z.Frequency,
		})
	}
	return doc, nil
}

package paperplane

import (
	"math"

	"github.com/vovakirdan/paper-plane/internal/core"
)

// Balloon basket geometry, relative to the balloon center.
const (
	basketWidth  = 20.0
	basketHeight = 15.0
)

// Obstacle is either a *Windmill or a *Balloon.
// The unexported marker keeps the set closed so type switches stay exhaustive.
type Obstacle interface {
	Center() core.Vec2
	isObstacle()
}

// Windmill is a three-bladed rotor. Its blades hit the plane; the gaps do not.
type Windmill struct {
	Pos      core.Vec2
	Radius   float64 // Blade length
	Rotation float64 // Radians, advanced by Speed every tick
	Speed    float64 // Signed angular velocity, radians per tick
}

// Balloon bobs vertically and carries a basket below it.
type Balloon struct {
	Pos       core.Vec2
	Radius    float64
	Amplitude float64
	Frequency float64 // Phase advance per tick
	Phase     float64
}

func (*Windmill) isObstacle() {}
func (*Balloon) isObstacle()  {}

// Center returns the rotor hub.
func (w *Windmill) Center() core.Vec2 { return w.Pos }

// Center returns the balloon center.
func (b *Balloon) Center() core.Vec2 { return b.Pos }

// BladeAngles returns the current angles of the three blades.
func (w *Windmill) BladeAngles() [3]float64 {
	var out [3]float64
	for i := range out {
		out[i] = w.Rotation + float64(i)*2*math.Pi/3
	}
	return out
}

// Basket returns the basket rectangle hanging under the balloon.
func (b *Balloon) Basket() core.RectF {
	return core.RectF{
		X: b.Pos.X - basketWidth/2,
		Y: b.Pos.Y + b.Radius,
		W: basketWidth,
		H: basketHeight,
	}
}

// advanceObstacle moves an obstacle's animated fields forward one tick.
func advanceObstacle(o Obstacle) {
	switch o := o.(type) {
	case *Windmill:
		o.Rotation += o.Speed
	case *Balloon:
		o.Phase += o.Frequency
		o.Pos.Y += math.Sin(o.Phase) * o.Amplitude * 0.01
	}
}

// cloneObstacle returns a deep copy so level data stays pristine while the
// session animates its own instances.
func cloneObstacle(o Obstacle) Obstacle {
	switch o := o.(type) {
	case *Windmill:
		c := *o
		return &c
	case *Balloon:
		c := *o
		return &c
	}
	return nil
}

func cloneObstacles(src []Obstacle) []Obstacle {
	out := make([]Obstacle, 0, len(src))
	for _, o := range src {
		if c := cloneObstacle(o); c != nil {
			out = append(out, c)
		}
	}
	return out
}

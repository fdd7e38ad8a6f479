package paperplane

import (
	"math"

	"github.com/vovakirdan/paper-plane/internal/config"
	"github.com/vovakirdan/paper-plane/internal/core"
)

// Controls turns player gestures into wind changes and velocity impulses.
type Controls struct {
	cfg       config.ControlsConfig
	field     config.PlayfieldConfig
	releasing bool // Wind is decaying after a drag ended
}

// NewControls creates a controls mapper for the given playfield.
func NewControls(cfg config.ControlsConfig, field config.PlayfieldConfig) *Controls {
	return &Controls{cfg: cfg, field: field}
}

// Reset forgets any in-progress gesture.
func (c *Controls) Reset() {
	c.releasing = false
}

// Apply handles one tick of input. Key presses and releases set or clear
// one wind axis; pointer taps give the plane an impulse toward the pointer;
// drags steer the wind smoothly; a drag release lets the wind die down.
func (c *Controls) Apply(in core.InputFrame, p *Plane, w *Wind) {
	// Releases first so a press in the same tick wins.
	if in.WasReleased(core.ActionLeft) || in.WasReleased(core.ActionRight) {
		w.X = 0
	}
	if in.WasReleased(core.ActionUp) || in.WasReleased(core.ActionDown) {
		w.Y = 0
	}

	if in.Has(core.ActionLeft) {
		w.X = -w.Strength
		c.releasing = false
	}
	if in.Has(core.ActionRight) {
		w.X = w.Strength
		c.releasing = false
	}
	if in.Has(core.ActionUp) {
		w.Y = -w.Strength
		c.releasing = false
	}
	if in.Has(core.ActionDown) {
		w.Y = w.Strength
		c.releasing = false
	}

	if in.Pointer != nil {
		c.applyPointer(*in.Pointer, p, w)
	}

	if c.releasing {
		c.decay(w)
	}
}

func (c *Controls) applyPointer(ptr core.Pointer, p *Plane, w *Wind) {
	switch ptr.Kind {
	case core.PointerTap:
		target := core.V(ptr.X*c.field.Width, ptr.Y*c.field.Height)
		impulse := c.cfg.TapImpulse
		if ptr.Primary {
			impulse = c.cfg.GustImpulse
		}
		p.Vel = p.Vel.Add(Gust(p.Center(), target, impulse))

	case core.PointerDrag:
		c.releasing = false
		delta := core.V(ptr.DX*c.field.Width, ptr.DY*c.field.Height)
		target := delta.Scale(c.cfg.DragSensitivity)
		w.X += (target.X - w.X) * c.cfg.DragSmoothing
		w.Y += (target.Y - w.Y) * c.cfg.DragSmoothing
		w.X = core.ClampF(w.X, -c.cfg.MaxDragWind, c.cfg.MaxDragWind)
		w.Y = core.ClampF(w.Y, -c.cfg.MaxDragWind, c.cfg.MaxDragWind)

	case core.PointerRelease:
		c.releasing = true
	}
}

// decay shrinks the wind until both axes are negligible, then zeroes it.
func (c *Controls) decay(w *Wind) {
	w.X *= c.cfg.ReleaseDecay
	w.Y *= c.cfg.ReleaseDecay
	if math.Abs(w.X) < c.cfg.ReleaseEpsilon && math.Abs(w.Y) < c.cfg.ReleaseEpsilon {
		w.X, w.Y = 0, 0
		c.releasing = false
	}
}

// Gust returns an impulse of the given magnitude from `from` toward `to`.
// A pointer exactly on the plane produces no impulse.
func Gust(from, to core.Vec2, magnitude float64) core.Vec2 {
	return to.Sub(from).Normalize().Scale(magnitude)
}

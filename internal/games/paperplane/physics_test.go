package paperplane

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/paper-plane/internal/config"
	"github.com/vovakirdan/paper-plane/internal/core"
)

// calmPhysics has no gravity and no drag, so single forces can be observed.
func calmPhysics() config.PhysicsConfig {
	phys := config.DefaultPaperPlaneConfig().Physics
	phys.Gravity = 0
	phys.AirResistance = 1
	return phys
}

func approxVec(a, b core.Vec2) bool {
	return a.Dist(b) < 1e-9
}

func TestIntegratorAirResistance(t *testing.T) {
	phys := config.DefaultPaperPlaneConfig().Physics
	phys.Gravity = 0
	in := NewIntegrator(phys, nil)

	p := Plane{Vel: core.V(10, -5)}
	prev := p.Vel.Len()
	for i := range 50 {
		in.Step(&p, Wind{}, nil, nil, i)
		if p.Vel.Len() >= prev {
			t.Fatalf("tick %d: speed %v did not contract from %v", i, p.Vel.Len(), prev)
		}
		prev = p.Vel.Len()
	}

	want := core.V(10, -5).Scale(math.Pow(0.98, 50))
	if !approxVec(p.Vel, want) {
		t.Errorf("Vel = %v, expected %v", p.Vel, want)
	}
}

func TestIntegratorOrder(t *testing.T) {
	in := NewIntegrator(config.DefaultPaperPlaneConfig().Physics, nil)
	p := Plane{}

	in.Step(&p, Wind{X: 1}, nil, nil, 0)

	// Wind and gravity land before drag scales them.
	want := core.V(0.98, 0.2*0.98)
	if !approxVec(p.Vel, want) {
		t.Errorf("Vel = %v, expected %v", p.Vel, want)
	}
	if p.Pos != (core.Vec2{}) {
		t.Errorf("Step moved the plane to %v", p.Pos)
	}
}

func TestIntegratorZones(t *testing.T) {
	in := NewIntegrator(calmPhysics(), nil)
	zone := WindZone{Rect: core.RectF{X: 100, Y: 100, W: 100, H: 100}, Force: core.V(2, -1)}

	tests := []struct {
		name string
		pos  core.Vec2
		want core.Vec2
	}{
		{"inside", core.V(150, 150), core.V(0.2, -0.1)},
		{"on edge", core.V(100, 100), core.V(0.2, -0.1)},
		{"outside", core.V(250, 150), core.V(0, 0)},
		// The center would be inside, but membership uses the position.
		{"center inside only", core.V(90, 150), core.V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Plane{Pos: tt.pos, Width: 30, Height: 20}
			in.Step(&p, Wind{}, nil, []WindZone{zone}, 0)
			if !approxVec(p.Vel, tt.want) {
				t.Errorf("Vel = %v, expected %v", p.Vel, tt.want)
			}
		})
	}
}

func TestIntegratorTurbulence(t *testing.T) {
	in := NewIntegrator(calmPhysics(), nil)
	mill := &Windmill{Pos: core.V(400, 300), Radius: 70, Speed: 0.03}

	p := Plane{Pos: core.V(400, 335)}
	in.Step(&p, Wind{}, []Obstacle{mill}, nil, 0)

	// d = 35 of a 105 range: (1 - 1/3) * 0.03 * 15 along rotation + 90 degrees.
	want := core.V(0, 0.3)
	if !approxVec(p.Vel, want) {
		t.Errorf("Vel = %v, expected %v", p.Vel, want)
	}

	far := Plane{Pos: core.V(400, 500)}
	in.Step(&far, Wind{}, []Obstacle{mill}, nil, 0)
	if far.Vel != (core.Vec2{}) {
		t.Errorf("Vel out of range = %v, expected zero", far.Vel)
	}
}

func TestIntegratorTurbulenceJitterBounded(t *testing.T) {
	in := NewIntegrator(calmPhysics(), rand.New(rand.NewSource(3)))
	mill := &Windmill{Pos: core.V(400, 300), Radius: 70, Speed: 0.03}

	for range 100 {
		p := Plane{Pos: core.V(400, 335)}
		in.Step(&p, Wind{}, []Obstacle{mill}, nil, 0)

		// Jitter is at most a quarter of the 0.3 push on each axis.
		if math.Abs(p.Vel.X) > 0.075+1e-9 || math.Abs(p.Vel.Y-0.3) > 0.075+1e-9 {
			t.Fatalf("Vel = %v, jitter out of bounds", p.Vel)
		}
	}
}

func TestIntegratorClampSpeed(t *testing.T) {
	phys := calmPhysics()
	phys.MaxSpeed = 5
	in := NewIntegrator(phys, nil)

	p := Plane{Vel: core.V(30, 40)}
	in.Step(&p, Wind{}, nil, nil, 0)
	if !approxVec(p.Vel, core.V(3, 4)) {
		t.Errorf("Vel = %v, expected (3, 4)", p.Vel)
	}
}

func TestPlaneHeading(t *testing.T) {
	if h := (Plane{}).Heading(); h != 0 {
		t.Errorf("Heading at rest = %v, expected 0", h)
	}
	if h := (Plane{Vel: core.V(0, 1)}).Heading(); math.Abs(h-math.Pi/2) > 1e-12 {
		t.Errorf("Heading down = %v, expected pi/2", h)
	}
}

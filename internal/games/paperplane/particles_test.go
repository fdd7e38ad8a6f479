package paperplane

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/paper-plane/internal/config"
	"github.com/vovakirdan/paper-plane/internal/core"
)

func TestParticleBurst(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig().Crash
	ps := NewParticleSystem(cfg)
	origin := core.V(300, 400)

	ps.Burst(origin, rand.New(rand.NewSource(5)))

	if ps.Len() != 30 {
		t.Fatalf("Len = %d, expected 30", ps.Len())
	}
	for i, p := range ps.Particles() {
		if p.Pos != origin {
			t.Errorf("particle %d at %v, expected %v", i, p.Pos, origin)
		}
		if math.Abs(p.Vel.X) > 7.5 || math.Abs(p.Vel.Y) > 7.5 {
			t.Errorf("particle %d velocity %v outside [-7.5, 7.5]", i, p.Vel)
		}
		if p.Size < 3 || p.Size >= 11 {
			t.Errorf("particle %d size %v outside [3, 11)", i, p.Size)
		}
		if p.Color != core.ColorBrightWhite && p.Color != core.ColorGray {
			t.Errorf("particle %d color %v is not a paper shade", i, p.Color)
		}
	}
}

func TestParticlesDecay(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig().Crash
	ps := NewParticleSystem(cfg)
	ps.Burst(core.V(0, 0), rand.New(rand.NewSource(9)))

	prev := ps.Len()
	ticks := 0
	for ps.Len() > 0 && ticks < 100 {
		ps.Update()
		if ps.Len() > prev {
			t.Fatalf("tick %d: particle count grew from %d to %d", ticks, prev, ps.Len())
		}
		prev = ps.Len()
		ticks++
	}

	// Largest size 11 falls below 0.5 after 61 shrinks of 0.95.
	if ps.Len() != 0 {
		t.Errorf("%d particles left after %d ticks", ps.Len(), ticks)
	}
	if ticks > 61 {
		t.Errorf("particles took %d ticks to clear, expected at most 61", ticks)
	}
}

func TestParticlesUpdateEmpty(t *testing.T) {
	ps := NewParticleSystem(config.DefaultPaperPlaneConfig().Crash)
	ps.Update()
	if ps.Len() != 0 {
		t.Errorf("Len = %d, expected 0", ps.Len())
	}
}

func TestParticlesCopy(t *testing.T) {
	ps := NewParticleSystem(config.DefaultPaperPlaneConfig().Crash)
	ps.Burst(core.V(0, 0), rand.New(rand.NewSource(1)))

	out := ps.Particles()
	out[0].Size = 1000
	if ps.Particles()[0].Size == 1000 {
		t.Error("Particles returned the live slice")
	}
}

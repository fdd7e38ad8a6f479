package paperplane

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/paper-plane/internal/config"
	"github.com/vovakirdan/paper-plane/internal/core"
)

func newPlayingSession(cfg config.PaperPlaneConfig) *Session {
	s := NewSession(cfg, 42, 60)
	s.Start()
	return s
}

// clearLevel empties the level so tests can place exactly what they need.
func clearLevel(s *Session) {
	s.stars = nil
	s.obstacles = nil
	s.zones = nil
	s.goal.Pos = core.V(-1000, -1000)
}

func countEvents(events []core.Event, e core.Event) int {
	n := 0
	for _, got := range events {
		if got == e {
			n++
		}
	}
	return n
}

func TestSessionIntro(t *testing.T) {
	s := NewSession(config.DefaultPaperPlaneConfig(), 1, 60)
	start := s.Plane()

	s.Update(core.NewInputFrame())
	if s.State() != StateIntro {
		t.Fatalf("State = %v, expected %v", s.State(), StateIntro)
	}
	if s.Plane() != start {
		t.Errorf("plane moved during intro: %v", s.Plane())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	s.Update(in)
	if s.State() != StatePlaying {
		t.Errorf("State = %v, expected %v", s.State(), StatePlaying)
	}
}

func TestInitLevelMatchesGenerator(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	s := NewSession(cfg, 42, 60)
	lc := NewGenerator(cfg, rand.New(rand.NewSource(42))).Generate(1)

	if !reflect.DeepEqual(s.Level(), lc) {
		t.Fatal("session level differs from generator output for the same seed")
	}

	stars := s.Stars()
	if len(stars) != len(lc.Stars) {
		t.Fatalf("stars = %d, expected %d", len(stars), len(lc.Stars))
	}
	for i, st := range stars {
		if st.Pos != lc.Stars[i] || st.CurrentY != lc.Stars[i].Y || st.Collected {
			t.Errorf("star %d = %+v, expected fresh star at %v", i, st, lc.Stars[i])
		}
	}
	if !reflect.DeepEqual(s.Obstacles(), cloneObstacles(lc.Obstacles)) {
		t.Error("obstacles differ from generator output")
	}
	if !reflect.DeepEqual(s.WindZones(), append([]WindZone(nil), lc.WindZones...)) {
		t.Error("wind zones differ from generator output")
	}
	if s.Score().Total != 300 {
		t.Errorf("Total = %d, expected 300", s.Score().Total)
	}
}

func TestSessionThreeStarSweep(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	cfg.Physics.Gravity = 0
	s := newPlayingSession(cfg)
	clearLevel(s)

	positions := []core.Vec2{core.V(300, 300), core.V(500, 250), core.V(700, 350)}
	for _, p := range positions {
		s.stars = append(s.stars, Star{Pos: p, CurrentY: p.Y})
	}

	collected := 0
	for _, p := range positions {
		s.plane.Pos = p.Sub(core.V(s.plane.Width/2, s.plane.Height/2))
		s.plane.Vel = core.Vec2{}
		collected += countEvents(s.Update(core.NewInputFrame()), core.EventStarCollect)
	}

	if collected != 3 {
		t.Errorf("starCollect events = %d, expected 3", collected)
	}
	if s.Score().Current != 300 {
		t.Errorf("Current = %d, expected 300", s.Score().Current)
	}
	if s.Score().Current > s.Score().Total {
		t.Errorf("Current %d exceeds Total %d", s.Score().Current, s.Score().Total)
	}
	for i, st := range s.Stars() {
		if !st.Collected {
			t.Errorf("star %d not collected", i)
		}
	}

	// A second pass awards nothing.
	s.plane.Pos = positions[0].Sub(core.V(s.plane.Width/2, s.plane.Height/2))
	s.Update(core.NewInputFrame())
	if s.Score().Current != 300 {
		t.Errorf("Current after second pass = %d, expected 300", s.Score().Current)
	}
}

func TestSessionWindmillScenario(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	s := newPlayingSession(cfg)
	clearLevel(s)
	mill := &Windmill{Pos: core.V(400, 300), Radius: 70, Speed: 0.03}
	s.obstacles = []Obstacle{mill}

	turbR := mill.Radius * cfg.Physics.TurbulenceRange
	for range 200 {
		s.Update(core.NewInputFrame())
		if s.Plane().Vel.Len() > 50 {
			t.Fatalf("speed %v grew without bound", s.Plane().Vel.Len())
		}
	}

	landed := s.Plane().Pos.Y == s.Bounds().Bottom
	escaped := s.Plane().Pos.Dist(mill.Pos) >= turbR
	if !s.CrashActive() && !landed && !escaped {
		t.Errorf("plane at %v neither crashed, landed nor left the turbulence", s.Plane().Pos)
	}
}

func TestSessionRotationOncePerUpdate(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	cfg.Physics.Gravity = 0
	s := newPlayingSession(cfg)
	clearLevel(s)
	s.obstacles = []Obstacle{&Windmill{Pos: core.V(400, 300), Radius: 70, Speed: 0.03}}

	for range 200 {
		s.Update(core.NewInputFrame())
	}

	mill := s.Obstacles()[0].(*Windmill)
	if math.Abs(mill.Rotation-6.0) > 1e-9 {
		t.Errorf("Rotation = %v, expected 6.0", mill.Rotation)
	}

	mill.Rotation = 100
	if s.Obstacles()[0].(*Windmill).Rotation == 100 {
		t.Error("Obstacles returned live obstacles")
	}
}

func TestSessionGroundCrash(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	s := newPlayingSession(cfg)
	clearLevel(s)
	s.plane.Pos = core.V(300, s.Bounds().Bottom)
	s.plane.Vel = core.V(0, 20)
	before := s.Plane().Pos

	events := s.Update(core.NewInputFrame())
	if countEvents(events, core.EventCrash) != 1 {
		t.Fatalf("events = %v, expected one crash", events)
	}
	if !s.CrashActive() || s.CrashCause() != CauseGround {
		t.Fatalf("crash = %v/%v, expected active ground crash", s.CrashActive(), s.CrashCause())
	}
	if s.Plane().Pos != before {
		t.Errorf("plane moved to %v after crashing, expected %v", s.Plane().Pos, before)
	}
	if s.ParticleCount() != cfg.Crash.Particles {
		t.Errorf("ParticleCount = %d, expected %d", s.ParticleCount(), cfg.Crash.Particles)
	}

	// Re-entry does not spawn a second burst.
	s.initiateCrash(CauseObstacle)
	if s.CrashCause() != CauseGround || s.ParticleCount() != cfg.Crash.Particles {
		t.Errorf("second initiateCrash changed cause to %v and particles to %d", s.CrashCause(), s.ParticleCount())
	}

	gameOvers := 0
	for i := 1; i <= cfg.Crash.DelayTicks; i++ {
		ev := s.Update(core.NewInputFrame())
		gameOvers += countEvents(ev, core.EventGameOver)
		if i < cfg.Crash.DelayTicks && s.State() != StatePlaying {
			t.Fatalf("tick %d: State = %v before the crash delay elapsed", i, s.State())
		}
	}
	if s.State() != StateGameOver || gameOvers != 1 {
		t.Fatalf("State = %v with %d gameOver events, expected gameOver once", s.State(), gameOvers)
	}
	if !s.Finished() {
		t.Error("Finished = false after game over")
	}

	for range 100 {
		if ev := s.Update(core.NewInputFrame()); len(ev) != 0 {
			t.Fatalf("events after game over: %v", ev)
		}
	}
	if s.ParticleCount() != 0 {
		t.Errorf("ParticleCount = %d, expected particles to have decayed", s.ParticleCount())
	}
}

func TestSessionRestartDuringCrash(t *testing.T) {
	s := newPlayingSession(config.DefaultPaperPlaneConfig())
	clearLevel(s)
	s.plane.Pos = core.V(300, s.Bounds().Bottom)
	s.plane.Vel = core.V(0, 20)
	s.Update(core.NewInputFrame())
	if !s.CrashActive() {
		t.Fatal("expected a crash")
	}

	s.Restart()

	if s.CrashActive() || s.ParticleCount() != 0 {
		t.Errorf("crash survived restart: active=%v particles=%d", s.CrashActive(), s.ParticleCount())
	}
	if s.Generation() != 1 {
		t.Errorf("Generation = %d, expected 1", s.Generation())
	}
	for range 10 {
		if ev := s.Update(core.NewInputFrame()); countEvents(ev, core.EventGameOver) > 0 {
			t.Fatal("stale crash finished after restart")
		}
	}
	if s.State() != StatePlaying {
		t.Errorf("State = %v, expected %v", s.State(), StatePlaying)
	}
}

// reachGoal clears the level, puts the goal on the plane and runs one tick.
func reachGoal(s *Session) []core.Event {
	clearLevel(s)
	s.goal.Pos = s.plane.Center()
	return s.Update(core.NewInputFrame())
}

func TestSessionLevelTransition(t *testing.T) {
	s := newPlayingSession(config.DefaultPaperPlaneConfig())
	s.score.Current = 200

	events := reachGoal(s)
	if countEvents(events, core.EventLevelComplete) != 1 {
		t.Fatalf("events = %v, expected levelComplete", events)
	}
	tr := s.Transition()
	if s.State() != StateCompleted || !tr.Active() {
		t.Fatalf("State = %v, transition active = %v", s.State(), tr.Active())
	}
	if !s.Goal().Completed {
		t.Fatal("goal not completed")
	}

	ticks := 0
	for s.State() != StatePlaying && ticks < 1000 {
		if s.Level().Number == 1 && !s.Goal().Completed {
			t.Fatal("goal completion reverted before the next level loaded")
		}
		s.Update(core.NewInputFrame())
		ticks++
	}

	if s.State() != StatePlaying {
		t.Fatalf("transition did not finish after %d ticks", ticks)
	}
	if s.Level().Number != 2 {
		t.Errorf("Level = %d, expected 2", s.Level().Number)
	}
	if s.Score().Current != 200 || s.Score().LevelStart != 200 {
		t.Errorf("score = %+v, expected current and level start 200", s.Score())
	}
	if s.Score().Total != 300 {
		t.Errorf("Total = %d, expected 300", s.Score().Total)
	}
	if s.Score().LevelEarned() != 0 {
		t.Errorf("LevelEarned = %d on a fresh level, expected 0", s.Score().LevelEarned())
	}
	start := core.V(100, 200)
	if s.Plane().Pos != start {
		t.Errorf("plane at %v, expected start %v", s.Plane().Pos, start)
	}
}

func TestSessionRestartDuringTransition(t *testing.T) {
	s := newPlayingSession(config.DefaultPaperPlaneConfig())
	reachGoal(s)
	for range 10 {
		s.Update(core.NewInputFrame())
	}

	s.Restart()

	if tr := s.Transition(); tr.Active() {
		t.Errorf("transition still in phase %v after restart", tr.Phase)
	}
	if s.State() != StatePlaying || s.Level().Number != 1 {
		t.Errorf("State = %v level %d, expected playing level 1", s.State(), s.Level().Number)
	}
	for range 200 {
		s.Update(core.NewInputFrame())
		if s.Level().Number != 1 {
			t.Fatal("cancelled transition loaded the next level")
		}
	}
}

func TestSessionFinalLevel(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	s := newPlayingSession(cfg)
	s.InitLevel(cfg.Generator.MaxLevels)

	reachGoal(s)

	if !s.Won() || !s.Finished() {
		t.Fatalf("Won = %v Finished = %v, expected both", s.Won(), s.Finished())
	}
	for range 100 {
		s.Update(core.NewInputFrame())
	}
	if !s.Goal().Completed || s.State() != StateCompleted {
		t.Errorf("final state changed: goal %v state %v", s.Goal().Completed, s.State())
	}
}

func TestSessionTimeout(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	cfg.TimeLimit = config.TimeLimitConfig{Enabled: true, FromLevel: 1, BaseSeconds: 1, MinSeconds: 0}
	s := NewSession(cfg, 3, 10)
	s.Start()
	clearLevel(s)

	if s.TimeLeft() != 1 {
		t.Fatalf("TimeLeft = %v, expected 1", s.TimeLeft())
	}
	for i := 0; i < 30 && !s.CrashActive(); i++ {
		s.Update(core.NewInputFrame())
	}
	if s.CrashCause() != CauseTimeout {
		t.Errorf("CrashCause = %v, expected %v", s.CrashCause(), CauseTimeout)
	}
	if s.TimeLeft() != 0 {
		t.Errorf("TimeLeft = %v, expected 0", s.TimeLeft())
	}
}

func TestSessionUntimed(t *testing.T) {
	s := NewSession(config.DefaultPaperPlaneConfig(), 3, 60)
	if s.TimeLeft() != -1 {
		t.Errorf("TimeLeft = %v, expected -1", s.TimeLeft())
	}
}

func TestSessionPause(t *testing.T) {
	s := newPlayingSession(config.DefaultPaperPlaneConfig())
	clearLevel(s)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	s.Update(pause)
	if !s.Paused() {
		t.Fatal("Paused = false after pause")
	}

	frozen := s.Snapshot()
	for range 20 {
		s.Update(core.NewInputFrame())
	}
	after := s.Snapshot()
	if frozen.Hash() != after.Hash() {
		t.Error("simulation advanced while paused")
	}

	s.Update(pause)
	if s.Paused() {
		t.Error("Paused = true after second pause")
	}
}

func TestSessionHighScore(t *testing.T) {
	s := newPlayingSession(config.DefaultPaperPlaneConfig())
	s.SetPlayer("ace")
	s.SetHighScore(100, "old")
	clearLevel(s)

	s.stars = []Star{{Pos: s.plane.Center(), CurrentY: s.plane.Center().Y}}
	s.Update(core.NewInputFrame())

	if s.HighScoreDirty() {
		t.Error("HighScoreDirty at a tie")
	}

	s.stars = append(s.stars, Star{Pos: s.plane.Center(), CurrentY: s.plane.Center().Y})
	s.Update(core.NewInputFrame())

	sc := s.Score()
	if sc.Highest != 200 || sc.Holder != "ace" || !s.HighScoreDirty() {
		t.Errorf("high score = %d by %q dirty=%v, expected 200 by ace", sc.Highest, sc.Holder, s.HighScoreDirty())
	}
	s.MarkHighScoreSaved()
	if s.HighScoreDirty() {
		t.Error("HighScoreDirty after MarkHighScoreSaved")
	}

	s.Restart()
	if s.Score().Highest != 200 || s.Score().Current != 0 {
		t.Errorf("after restart score = %+v, expected highest 200 and current 0", s.Score())
	}
}

func TestSessionGlowNeverNegative(t *testing.T) {
	cfg := config.DefaultPaperPlaneConfig()
	cfg.Generator.GoalGlow = 2
	cfg.Physics.Gravity = 0
	s := newPlayingSession(cfg)
	clearLevel(s)

	for range 300 {
		s.Update(core.NewInputFrame())
		if s.Goal().Glow < 0 {
			t.Fatalf("Glow = %v", s.Goal().Glow)
		}
	}
}

func TestSessionDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%40 < 10:
			inputs[i].Set(core.ActionUp)
		case i%40 == 10:
			inputs[i].Release(core.ActionUp)
		case i%50 == 25:
			inputs[i].SetPointer(core.Pointer{Kind: core.PointerTap, X: 0.8, Y: 0.3, Primary: true})
		}
	}

	run := func(seed int64) Snapshot {
		cfg := config.DefaultPaperPlaneConfig()
		s := NewSession(cfg, seed, 60)
		s.InitLevel(7)
		for _, in := range inputs {
			s.Update(in)
		}
		return s.Snapshot()
	}

	a, b := run(11), run(11)
	if a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if a.Tick != b.Tick || a.Score != b.Score {
		t.Errorf("Determinism failed: tick %d/%d score %+v/%+v", a.Tick, b.Tick, a.Score, b.Score)
	}

	if c := run(12); c.Hash() == a.Hash() {
		t.Error("different seeds produced identical snapshots")
	}
}

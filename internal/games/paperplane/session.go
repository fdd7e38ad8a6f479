package paperplane

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/paper-plane/internal/config"
	"github.com/vovakirdan/paper-plane/internal/core"
)

// State is the top-level game state.
type State string

const (
	StateIntro     State = "intro"     // Waiting for the first input
	StatePlaying   State = "playing"   // Plane in flight (possibly crashing)
	StateCompleted State = "completed" // Goal reached, transition running or game won
	StateGameOver  State = "gameOver"  // Crash finalized
)

const (
	starBob          = 10.0 // Star bob amplitude
	glowSwing        = 10.0 // Goal glow amplitude
	scoreDisplayStep = 5
)

// fxSeedSalt separates the effects stream from the level stream so that
// turbulence and particles never shift level layouts.
const fxSeedSalt = 0x5eed_f00d

// crashState is the crash sub-state. It is orthogonal to State.
type crashState struct {
	Active     bool
	Cause      CrashCause
	elapsed    int
	generation uint64
}

// Session is the pure simulation of one player's run. It performs no I/O:
// inputs come in through Update and everything observable goes out through
// Snapshot and the returned events.
type Session struct {
	cfg      config.PaperPlaneConfig
	tickRate int

	gen       *Generator
	integ     *Integrator
	controls  *Controls
	particles *ParticleSystem
	fxRNG     *rand.Rand

	level      LevelConfig // Pristine generator output for the current level
	plane      Plane
	wind       Wind
	stars      []Star
	obstacles  []Obstacle
	zones      []WindZone
	goal       Goal
	score      Score
	crash      crashState
	transition Transition

	state      State
	paused     bool
	clock      float64 // Shared animation clock
	tick       uint64  // Ticks since the session was created
	levelTicks int
	generation uint64 // Bumped on restart; stale crash or transition work checks it

	player    string
	highDirty bool

	events []core.Event
}

// NewSession creates a session at level 1 in the intro state.
func NewSession(cfg config.PaperPlaneConfig, seed int64, tickRate int) *Session {
	if tickRate <= 0 {
		tickRate = 60
	}
	s := &Session{
		cfg:        cfg,
		tickRate:   tickRate,
		gen:        NewGenerator(cfg, rand.New(rand.NewSource(seed))),
		fxRNG:      rand.New(rand.NewSource(seed ^ fxSeedSalt)),
		controls:   NewControls(cfg.Controls, cfg.Playfield),
		particles:  NewParticleSystem(cfg.Crash),
		transition: NewTransition(cfg.Transition.AlphaStep, cfg.Transition.HoldTicks),
		state:      StateIntro,
		player:     DefaultPlayerName,
	}
	s.integ = NewIntegrator(cfg.Physics, s.fxRNG)
	s.InitLevel(1)
	return s
}

// SetPlayer sets the name recorded as high-score holder.
func (s *Session) SetPlayer(name string) {
	s.player = SanitizeName(name)
}

// SetHighScore seeds the persisted best score.
func (s *Session) SetHighScore(score int, holder string) {
	s.score.Highest = score
	s.score.Holder = holder
}

// Start leaves the intro.
func (s *Session) Start() {
	if s.state == StateIntro {
		s.state = StatePlaying
	}
}

// Restart begins a new run at level 1. Any crash or transition in flight is
// abandoned; the best score survives.
func (s *Session) Restart() {
	s.generation++
	s.transition.Cancel()
	s.score = Score{Highest: s.score.Highest, Holder: s.score.Holder}
	s.paused = false
	s.state = StatePlaying
	s.InitLevel(1)
}

// InitLevel loads a freshly generated level. The score carries over.
func (s *Session) InitLevel(n int) {
	s.level = s.gen.Generate(n)

	s.plane = Plane{
		Pos:    core.V(s.cfg.Plane.StartX, s.cfg.Plane.StartY),
		Width:  s.cfg.Plane.Width,
		Height: s.cfg.Plane.Height,
	}
	s.wind = Wind{Strength: s.level.WindStrength}
	s.controls.Reset()
	s.crash = crashState{}
	s.particles.Clear()

	s.stars = make([]Star, len(s.level.Stars))
	for i, p := range s.level.Stars {
		s.stars[i] = Star{Pos: p, CurrentY: p.Y}
	}
	s.obstacles = cloneObstacles(s.level.Obstacles)
	s.zones = append([]WindZone(nil), s.level.WindZones...)
	s.goal = Goal{
		Pos:      s.level.Goal,
		Radius:   s.level.GoalRadius,
		BaseGlow: s.level.GoalGlow,
		Glow:     s.level.GoalGlow,
	}

	s.score.Total = len(s.stars) * s.cfg.Generator.StarValue
	s.score.LevelStart = s.score.Current
	s.score.Display = s.score.Current
	s.levelTicks = 0
}

// Update advances the simulation one tick and returns the events it emitted.
func (s *Session) Update(in core.InputFrame) []core.Event {
	s.events = nil

	if in.Has(core.ActionPause) && s.state == StatePlaying && !s.crash.Active {
		s.paused = !s.paused
	}
	if s.paused {
		return nil
	}
	s.tick++

	switch s.state {
	case StateIntro:
		if !in.Empty() {
			s.Start()
		}
	case StatePlaying:
		if s.crash.Active {
			s.particles.Update()
			s.advanceCrash()
			break
		}
		s.fly(in)
	case StateCompleted:
		s.score.animate(scoreDisplayStep)
		s.advanceTransition()
	case StateGameOver:
		if s.crash.Active {
			s.particles.Update()
		}
	}

	return s.events
}

// fly is one tick of normal play.
func (s *Session) fly(in core.InputFrame) {
	s.controls.Apply(in, &s.plane, &s.wind)

	s.clock += s.cfg.Physics.AnimationStep
	for i := range s.stars {
		if !s.stars[i].Collected {
			s.stars[i].CurrentY = s.stars[i].Pos.Y + math.Sin(s.clock)*starBob
		}
	}
	for range CollectStars(s.plane.Center(), s.stars) {
		s.score.Current += s.cfg.Generator.StarValue
		s.emit(core.EventStarCollect)
	}

	s.integ.Step(&s.plane, s.wind, s.obstacles, s.zones, s.levelTicks)

	if FirstObstacleHit(s.plane.Center(), s.obstacles) != nil {
		s.initiateCrash(CauseObstacle)
		return
	}
	bounds := s.Bounds()
	if cause := ImpactCrash(s.plane, bounds); cause != CauseNone {
		s.initiateCrash(cause)
		return
	}

	s.plane.Move()
	if cause := ResolveBounds(&s.plane, bounds); cause != CauseNone {
		s.initiateCrash(cause)
		return
	}

	s.goal.Glow = math.Max(0, s.goal.BaseGlow+math.Sin(s.clock)*glowSwing)
	if !s.goal.Completed && GoalReached(s.plane.Center(), s.goal) {
		s.goal.Completed = true
		s.state = StateCompleted
		s.completeLevel()
	}

	s.score.animate(scoreDisplayStep)
	s.updateHighScore()

	for _, o := range s.obstacles {
		advanceObstacle(o)
	}

	s.levelTicks++
	if s.state == StatePlaying && s.level.Timed() && s.Elapsed() > s.level.TimeLimit {
		s.initiateCrash(CauseTimeout)
	}
}

// completeLevel starts the transition to the next level, or ends the game
// when the last level was cleared.
func (s *Session) completeLevel() {
	s.emit(core.EventLevelComplete)
	s.updateHighScore()
	if s.level.Number < s.cfg.Generator.MaxLevels {
		s.score.LevelStart = s.score.Current
		s.transition.Start(s.generation)
	}
}

func (s *Session) advanceTransition() {
	switch s.transition.Advance(s.generation) {
	case SignalLoadNext:
		s.InitLevel(s.level.Number + 1)
	case SignalDone:
		s.state = StatePlaying
	}
}

// initiateCrash starts the crash sequence. Re-entry while a crash is already
// active does nothing.
func (s *Session) initiateCrash(cause CrashCause) {
	if s.crash.Active {
		return
	}
	s.crash = crashState{Active: true, Cause: cause, generation: s.generation}
	s.particles.Burst(s.plane.Pos, s.fxRNG)
	s.emit(core.EventCrash)
}

// advanceCrash counts down the delay between the crash and game over.
func (s *Session) advanceCrash() {
	if s.crash.generation != s.generation {
		s.crash = crashState{}
		return
	}
	s.crash.elapsed++
	if s.crash.elapsed < s.cfg.Crash.DelayTicks {
		return
	}
	s.state = StateGameOver
	s.updateHighScore()
	s.emit(core.EventGameOver)
}

func (s *Session) updateHighScore() {
	if s.score.Current > s.score.Highest {
		s.score.Highest = s.score.Current
		s.score.Holder = s.player
		s.highDirty = true
	}
}

func (s *Session) emit(e core.Event) {
	s.events = append(s.events, e)
}

// Bounds returns the playable area for the current configuration.
func (s *Session) Bounds() Bounds {
	return Bounds{
		Left:        0,
		Right:       s.cfg.Playfield.Width,
		Bottom:      s.cfg.Playfield.Height - s.cfg.Playfield.GroundMargin,
		GroundSpeed: s.cfg.Physics.GroundSpeed,
		Damping:     s.cfg.Physics.BounceDamping,
	}
}

// Elapsed returns the seconds spent on the current level.
func (s *Session) Elapsed() float64 {
	return float64(s.levelTicks) / float64(s.tickRate)
}

// TimeLeft returns the seconds left on a timed level, or -1 when untimed.
func (s *Session) TimeLeft() float64 {
	if !s.level.Timed() {
		return -1
	}
	return math.Max(0, s.level.TimeLimit-s.Elapsed())
}

// Won reports whether the final level has been cleared.
func (s *Session) Won() bool {
	return s.state == StateCompleted && !s.transition.Active() &&
		s.level.Number >= s.cfg.Generator.MaxLevels
}

// Finished reports whether the run has ended, by crash or by winning.
func (s *Session) Finished() bool {
	return s.state == StateGameOver || s.Won()
}

// HighScoreDirty reports whether the best score changed since the last
// MarkHighScoreSaved.
func (s *Session) HighScoreDirty() bool {
	return s.highDirty
}

// MarkHighScoreSaved clears the dirty flag after persisting.
func (s *Session) MarkHighScoreSaved() {
	s.highDirty = false
}

// State returns the top-level state.
func (s *Session) State() State {
	return s.state
}

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Level returns the generated configuration of the current level.
func (s *Session) Level() LevelConfig {
	return s.level
}

// Plane returns the plane.
func (s *Session) Plane() Plane {
	return s.plane
}

// Wind returns the player-controlled wind.
func (s *Session) Wind() Wind {
	return s.wind
}

// Goal returns the goal.
func (s *Session) Goal() Goal {
	return s.goal
}

// Score returns the score.
func (s *Session) Score() Score {
	return s.score
}

// CrashActive reports whether a crash sequence is running or finished.
func (s *Session) CrashActive() bool {
	return s.crash.Active
}

// CrashCause returns why the plane crashed.
func (s *Session) CrashCause() CrashCause {
	return s.crash.Cause
}

// Transition returns the level transition.
func (s *Session) Transition() Transition {
	return s.transition
}

// Generation returns the restart counter.
func (s *Session) Generation() uint64 {
	return s.generation
}

// ParticleCount returns the number of live crash particles.
func (s *Session) ParticleCount() int {
	return s.particles.Len()
}

// Stars returns a copy of the stars.
func (s *Session) Stars() []Star {
	return append([]Star(nil), s.stars...)
}

// Obstacles returns copies of the live obstacles.
func (s *Session) Obstacles() []Obstacle {
	return cloneObstacles(s.obstacles)
}

// WindZones returns a copy of the wind zones.
func (s *Session) WindZones() []WindZone {
	return append([]WindZone(nil), s.zones...)
}

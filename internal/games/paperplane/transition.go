package paperplane

// TransitionPhase is a step of the level-complete fade sequence.
type TransitionPhase int

const (
	PhaseIdle            TransitionPhase = iota
	PhaseFadeInComplete                  // "Level Complete" fades in
	PhaseHoldComplete                    // ... stays fully visible
	PhaseFadeOutComplete                 // ... fades out, then the next level loads
	PhaseFadeInTitle                     // Level title fades in
	PhaseHoldTitle                       // ... stays fully visible
	PhaseFadeOutTitle                    // ... fades out, then play resumes
)

func (p TransitionPhase) String() string {
	switch p {
	case PhaseFadeInComplete:
		return "fadeInComplete"
	case PhaseHoldComplete:
		return "holdComplete"
	case PhaseFadeOutComplete:
		return "fadeOutComplete"
	case PhaseFadeInTitle:
		return "fadeInTitle"
	case PhaseHoldTitle:
		return "holdTitle"
	case PhaseFadeOutTitle:
		return "fadeOutTitle"
	default:
		return "idle"
	}
}

// TransitionSignal tells the session what to do after a transition tick.
type TransitionSignal int

const (
	SignalNone     TransitionSignal = iota
	SignalLoadNext                  // Initialize the next level now
	SignalDone                      // Resume play
)

// Transition is the level-complete fade sequence as an explicit state machine.
// It is bound to the session generation it started in and goes idle if
// advanced under any other generation.
type Transition struct {
	Phase TransitionPhase
	Alpha float64

	step       float64
	holdTicks  int
	held       int
	generation uint64
}

// NewTransition creates an idle transition.
func NewTransition(alphaStep float64, holdTicks int) Transition {
	return Transition{step: alphaStep, holdTicks: holdTicks}
}

// Start begins the sequence for the given session generation.
func (t *Transition) Start(generation uint64) {
	t.Phase = PhaseFadeInComplete
	t.Alpha = 0
	t.held = 0
	t.generation = generation
}

// Cancel returns the transition to idle.
func (t *Transition) Cancel() {
	t.Phase = PhaseIdle
	t.Alpha = 0
	t.held = 0
}

// Active reports whether a sequence is running.
func (t *Transition) Active() bool {
	return t.Phase != PhaseIdle
}

// Advance moves the sequence forward one tick.
func (t *Transition) Advance(generation uint64) TransitionSignal {
	if !t.Active() {
		return SignalNone
	}
	if generation != t.generation {
		t.Cancel()
		return SignalNone
	}

	switch t.Phase {
	case PhaseFadeInComplete, PhaseFadeInTitle:
		t.Alpha += t.step
		if t.Alpha >= 1 {
			t.Alpha = 1
			t.held = 0
			t.Phase++
		}
	case PhaseHoldComplete, PhaseHoldTitle:
		t.held++
		if t.held >= t.holdTicks {
			t.Phase++
		}
	case PhaseFadeOutComplete:
		t.Alpha -= t.step
		if t.Alpha <= 0 {
			t.Alpha = 0
			t.Phase = PhaseFadeInTitle
			return SignalLoadNext
		}
	case PhaseFadeOutTitle:
		t.Alpha -= t.step
		if t.Alpha <= 0 {
			t.Cancel()
			return SignalDone
		}
	}
	return SignalNone
}

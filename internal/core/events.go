package core

// Event is a named cue emitted by a game during a tick.
// The platform maps events to sounds or log lines; games never wait on them.
type Event string

const (
	EventCrash         Event = "crash"
	EventGameOver      Event = "gameOver"
	EventLevelComplete Event = "levelComplete"
	EventStarCollect   Event = "starCollect"
)

package paperplane

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/paper-plane/internal/core"
)

// Profile keys in the key-value store.
const (
	KeyPlayerName   = "player_name"
	KeySoundEnabled = "sound_enabled"
	keyHighScore    = "high_score"
	keyHolder       = "high_score_holder"
)

// DefaultPlayerName is used when no name has been stored.
const DefaultPlayerName = "Player"

const maxNameLen = 10

// Score tracks points for the run.
type Score struct {
	Current    int // Points earned, never decreases within a run
	Display    int // Animated toward Current
	Total      int // Points available on the current level
	LevelStart int // Current when the level began
	Highest    int // Best ever, across runs
	Holder     string
}

// LevelEarned returns the points earned on the current level.
func (s Score) LevelEarned() int {
	return s.Current - s.LevelStart
}

// animate moves Display toward Current by step.
func (s *Score) animate(step int) {
	if s.Display < s.Current {
		s.Display = min(s.Display+step, s.Current)
	}
}

// Profile is the persisted per-player state.
type Profile struct {
	Name         string
	SoundEnabled bool
	HighScore    int
	Holder       string
}

// SanitizeName trims a player name to at most ten characters and falls back
// to DefaultPlayerName when nothing is left.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > maxNameLen {
		name = string([]rune(name)[:maxNameLen])
	}
	if name == "" {
		return DefaultPlayerName
	}
	return name
}

// LoadProfile reads the profile for a game variant. Missing or malformed
// values fall back to defaults. A nil store yields the default profile.
func LoadProfile(kv core.KeyValueStore, gameID string) Profile {
	p := Profile{Name: DefaultPlayerName, SoundEnabled: true}
	if kv == nil {
		return p
	}

	if v, ok := kv.Get(KeyPlayerName); ok {
		p.Name = SanitizeName(v)
	}
	if v, ok := kv.Get(KeySoundEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.SoundEnabled = b
		}
	}
	if v, ok := kv.Get(gameID + "." + keyHighScore); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.HighScore = n
		}
	}
	if v, ok := kv.Get(gameID + "." + keyHolder); ok {
		p.Holder = v
	}
	return p
}

// SaveHighScore writes the high score and its holder for a game variant.
func SaveHighScore(kv core.KeyValueStore, gameID string, score int, holder string) error {
	if kv == nil {
		return nil
	}
	if err := kv.Set(gameID+"."+keyHighScore, strconv.Itoa(score)); err != nil {
		return err
	}
	return kv.Set(gameID+"."+keyHolder, holder)
}

// SavePlayerName stores a sanitized player name.
func SavePlayerName(kv core.KeyValueStore, name string) error {
	if kv == nil {
		return nil
	}
	return kv.Set(KeyPlayerName, SanitizeName(name))
}

// Names reads and writes the player name of one profile.
type Names struct {
	kv core.KeyValueStore
}

// NewNames returns a name accessor for the profile stored in kv.
func NewNames(kv core.KeyValueStore) *Names {
	return &Names{kv: kv}
}

// PlayerName returns the stored name or DefaultPlayerName.
func (n *Names) PlayerName() string {
	return LoadProfile(n.kv, "").Name
}

// SetPlayerName stores a sanitized name.
func (n *Names) SetPlayerName(name string) error {
	return SavePlayerName(n.kv, name)
}

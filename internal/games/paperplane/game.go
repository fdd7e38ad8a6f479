package paperplane

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/paper-plane/internal/config"
	"github.com/vovakirdan/paper-plane/internal/core"
	"github.com/vovakirdan/paper-plane/internal/registry"
)

// Variant selects the rule set of a run.
type Variant int

const (
	VariantCampaign Variant = iota // 30 levels, no clock
	VariantTimed                   // Campaign with a per-level time limit
)

const (
	minScreenW = 40
	minScreenH = 16
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// LoadConfig resolves the effective configuration for a variant: file or
// embedded defaults, then the CLI preset, then the variant's own rules.
func LoadConfig(v Variant) config.PaperPlaneConfig {
	cfg, err := config.LoadPaperPlane(configPath)
	if err != nil {
		cfg = config.DefaultPaperPlaneConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPaperPlanePreset(&cfg, difficultyPreset)
	}
	if v == VariantTimed {
		cfg.TimeLimit.Enabled = true
	}
	return cfg
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.PaperPlaneConfig
	session *Session

	kv         core.KeyValueStore
	profile    Profile
	profileErr error // Last failed profile write, until taken

	screenTooSmall bool
}

// New creates a campaign game.
func New() *Game {
	return &Game{variant: VariantCampaign}
}

// NewTimed creates a campaign game with level time limits.
func NewTimed() *Game {
	return &Game{variant: VariantTimed}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantTimed {
		return "paperplane_timed"
	}
	return "paperplane"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantTimed {
		return "Paper Plane (Timed)"
	}
	return "Paper Plane"
}

// UseProfileStore sets the key-value store holding the player profile.
// It takes effect on the next Reset.
func (g *Game) UseProfileStore(kv core.KeyValueStore) {
	g.kv = kv
}

// PlayerName returns the name of the current player.
func (g *Game) PlayerName() string {
	if g.profile.Name == "" {
		return DefaultPlayerName
	}
	return g.profile.Name
}

// SoundEnabled reports whether audio cues should be played.
func (g *Game) SoundEnabled() bool {
	return g.profile.SoundEnabled
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig(g.variant)
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.profile = LoadProfile(g.kv, g.ID())
	g.session = NewSession(g.cfg, runtime.Seed, runtime.TickRate)
	g.session.SetPlayer(g.profile.Name)
	g.session.SetHighScore(g.profile.HighScore, g.profile.Holder)
}

// Resize adapts to a new terminal size without restarting the run. The
// world is scaled to the screen, so only the size check changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < minScreenW || h < minScreenH
}

// TakeProfileError returns the last failed profile write and clears it.
func (g *Game) TakeProfileError() error {
	err := g.profileErr
	g.profileErr = nil
	return err
}

// Session returns the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the effective configuration of the current run.
func (g *Game) Config() config.PaperPlaneConfig {
	return g.cfg
}

// KeyReleaseTicks returns how many ticks without a key repeat count as a
// key release.
func (g *Game) KeyReleaseTicks() int {
	if g.cfg.Controls.KeyReleaseTicks > 0 {
		return g.cfg.Controls.KeyReleaseTicks
	}
	return config.DefaultPaperPlaneConfig().Controls.KeyReleaseTicks
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionMute) {
		g.profile.SoundEnabled = !g.profile.SoundEnabled
		if g.kv != nil {
			if err := g.kv.Set(KeySoundEnabled, strconv.FormatBool(g.profile.SoundEnabled)); err != nil {
				g.profileErr = fmt.Errorf("save sound setting: %w", err)
			}
		}
	}

	if in.Has(core.ActionRestart) && g.session.Finished() {
		g.session.Restart()
		return core.StepResult{State: g.State()}
	}

	res := core.StepResult{Events: g.session.Update(in)}
	res.State = g.State()

	// Records are written as soon as they are set, so quitting mid-level
	// keeps them.
	if g.session.HighScoreDirty() && (res.HasEvent(core.EventStarCollect) ||
		res.HasEvent(core.EventGameOver) || res.HasEvent(core.EventLevelComplete)) {
		sc := g.session.Score()
		if err := SaveHighScore(g.kv, g.ID(), sc.Highest, sc.Holder); err != nil {
			g.profileErr = fmt.Errorf("save high score: %w", err)
		} else {
			g.session.MarkHighScoreSaved()
		}
	}

	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score().Current,
		Level:    g.session.Level().Number,
		GameOver: g.session.Finished(),
		Won:      g.session.Won(),
		Paused:   g.session.Paused(),
	}
}

// Register the games with the registry
func init() {
	registry.Register("paperplane", func() registry.Game {
		return New()
	})
	registry.Register("paperplane_timed", func() registry.Game {
		return NewTimed()
	})
}

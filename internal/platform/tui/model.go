package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paper-plane/internal/core"
	"github.com/vovakirdan/paper-plane/internal/registry"
	"github.com/vovakirdan/paper-plane/internal/storage"
)

// CuePlayer plays audio cues for game events.
type CuePlayer interface {
	PlayAll(events []core.Event)
	SetMuted(muted bool)
}

// ModelOptions holds the optional collaborators of a Model.
type ModelOptions struct {
	Store *storage.Store
	// Profile is the settings namespace holding the player profile.
	// Empty means the game ID.
	Profile  string
	Audio    CuePlayer
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
	// AllowBack lets B or Esc return to the menu once the game is over.
	AllowBack bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	palette    *Palette
	opts       ModelOptions
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       heldKeys
	pointer    pointerTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	tick       int
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for the current run
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Profile == "" {
		opts.Profile = game.ID()
	}

	releaseTicks := 1
	if hk, ok := game.(registry.HeldKeyUser); ok {
		releaseTicks = hk.KeyReleaseTicks()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    NewPalette(opts.Renderer),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       newHeldKeys(releaseTicks),
		pointer:    newPointerTracker(hudRows),
		inputFrame: core.NewInputFrame(),
	}
}

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	if pu, ok := m.game.(registry.ProfileUser); ok {
		pu.UseProfileStore(m.opts.Store.Settings(m.opts.Profile))
	}
	m.game.Reset(m.config)
	m.syncMute()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if p, ok := m.pointer.Map(msg, m.screen.Width(), m.screen.Height()); ok {
			m.inputFrame.SetPointer(p)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("could not save screenshot", "error", err)
		} else {
			m.opts.Logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.opts.AllowBack && m.gameState.GameOver &&
		m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
		m.backToMenu = true
		return m, tea.Quit
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}
	m.inputFrame.Set(action)
	if IsDirection(action) {
		// The press is consumed by the next tick
		m.held.Press(action, m.tick+1)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	m.held.Expire(m.tick, &m.inputFrame)

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if wasOver && !m.gameState.GameOver {
		// Restarted
		m.scoreSaved = false
		m.held.Reset()
	}

	if pe, ok := m.game.(registry.ProfileErrorSource); ok {
		if err := pe.TakeProfileError(); err != nil {
			m.opts.Logger.Warn("could not save profile", "game", m.game.ID(), "error", err)
		}
	}

	m.syncMute()
	for _, e := range result.Events {
		m.opts.Logger.Debug("game event", "game", m.game.ID(), "event", string(e),
			"score", m.gameState.Score, "level", m.gameState.Level)
	}
	if m.opts.Audio != nil {
		m.opts.Audio.PlayAll(result.Events)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// syncMute mirrors the game's sound preference onto the audio player.
func (m Model) syncMute() {
	if m.opts.Audio == nil {
		return
	}
	if pu, ok := m.game.(registry.ProfileUser); ok {
		m.opts.Audio.SetMuted(!pu.SoundEnabled())
	}
}

// saveScore records the finished run in the score history.
func (m Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	player := ""
	if pu, ok := m.game.(registry.ProfileUser); ok {
		player = pu.PlayerName()
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), player, m.gameState.Score, m.gameState.Level); err != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".paperplane", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

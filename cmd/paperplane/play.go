package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paper-plane/internal/audio"
	"github.com/vovakirdan/paper-plane/internal/config"
	"github.com/vovakirdan/paper-plane/internal/core"
	"github.com/vovakirdan/paper-plane/internal/games/paperplane"
	"github.com/vovakirdan/paper-plane/internal/platform/tui"
	"github.com/vovakirdan/paper-plane/internal/registry"
	"github.com/vovakirdan/paper-plane/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start flying the given variant, or the campaign when none is given.

Controls:
  Arrows/WASD   - Blow the wind (held)
  Left click    - Gust toward the pointer
  Right click   - Light gust toward the pointer
  Drag          - Steer the wind smoothly
  Enter/Space   - Start
  P/Esc         - Pause
  M             - Toggle sound
  R             - Restart (after the run ends)
  Ctrl+S        - Screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Gentle ramp, lower ceiling
  normal - Default ramp
  hard   - Starts harder and ramps faster
  fixed  - No progression

Examples:
  paperplane play
  paperplane play paperplane_timed
  paperplane play --difficulty hard --seed 42
  paperplane play --config ./my-plane.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "paperplane"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'paperplane list' to see them", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger := newLogger("paperplane")
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	player := newAudio(logger)
	defer player.Close()

	return tui.Run(game, runtimeConfig(), tui.ModelOptions{
		Store:   store,
		Profile: localProfile,
		Audio:   player,
		Logger:  logger,
	})
}

// applyGameFlags checks --config and --difficulty and hands them to the
// game package.
func applyGameFlags() error {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
	}
	if flagConfig != "" {
		if _, err := config.LoadPaperPlane(flagConfig); err != nil {
			return err
		}
	}
	paperplane.SetConfigPath(flagConfig)
	paperplane.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the game to the local terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newAudio opens the speaker. A player that failed to start stays silent.
func newAudio(logger *log.Logger) *audio.Player {
	player := audio.NewPlayer(flagVolume)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	return player
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paper-plane/internal/games/paperplane"
	"github.com/vovakirdan/paper-plane/internal/platform/tui"
	"github.com/vovakirdan/paper-plane/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to fly.
After a run ends, press B to return to the menu. Q leaves a run at
any time.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  N            - Change pilot name
  Tab          - Flight log
  Q            - Quit

Examples:
  paperplane menu
  paperplane menu --fps 30
  paperplane menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger := newLogger("paperplane")
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	player := newAudio(logger)
	defer player.Close()

	names := paperplane.NewNames(store.Settings(localProfile))
	cfg := runtimeConfig()
	lastGame := ""

	for {
		menuResult, err := tui.RunMenu(names, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, lastGame, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		lastGame = menuResult.GameID

		// Fresh seed per run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg, tui.ModelOptions{
			Store:     store,
			Profile:   localProfile,
			Audio:     player,
			Logger:    logger,
			AllowBack: true,
		}); err != nil {
			return err
		}
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paper-plane/internal/games/paperplane"
	"github.com/vovakirdan/paper-plane/internal/storage"
)

var nameCmd = &cobra.Command{
	Use:   "name [player]",
	Short: "Show or set the local pilot name",
	Long: `Without arguments, print the local pilot name. With a name, store it.
Names are trimmed to ten characters.

Examples:
  paperplane name
  paperplane name "Red Baron"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runName,
}

func runName(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	names := paperplane.NewNames(store.Settings(localProfile))
	if len(args) > 0 {
		if err := names.SetPlayerName(strings.Join(args, " ")); err != nil {
			return err
		}
	}
	fmt.Println(names.PlayerName())
	return nil
}

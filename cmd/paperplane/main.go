// paperplane is a terminal build of the paper plane gliding game.
//
// Usage:
//
//	paperplane list              - List game variants
//	paperplane play [variant]    - Play a variant (default: paperplane)
//	paperplane menu              - Pick variants interactively
//	paperplane serve             - Start SSH server for remote play
//	paperplane scores [variant]  - Show the flight log of a variant
//	paperplane level <n>         - Print a generated level as YAML
//	paperplane config            - Print the effective config as YAML
//	paperplane name <player>     - Set the local player name
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.paperplane/scores.db)
//	--debug         - Log game events
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the game variants
	_ "github.com/vovakirdan/paper-plane/internal/games/paperplane"
)

// localProfile is the settings namespace of the local player.
const localProfile = "local"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paperplane",
	Short: "Paper Plane - glide through the wind in your terminal",
	Long: `Paper Plane is a gliding game for the terminal. Steer the wind to carry
a paper plane past windmills and balloons, collect stars and reach the
goal on each of 30 generated levels.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View the flight log
  level    - Print a generated level
  config   - Print the effective configuration
  name     - Set your pilot name

Examples:
  paperplane play
  paperplane play paperplane_timed --difficulty hard
  paperplane menu
  paperplane serve --ssh :2222
  paperplane level 12 --seed 42`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.paperplane/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log game events at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(nameCmd)
}

// newLogger creates a stderr logger honoring --debug.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

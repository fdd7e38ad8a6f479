package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/paper-plane/internal/games/paperplane"
)

var flagConfigTimed bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a run would use after the search path,
--difficulty and the variant rules are applied. The output is a valid
config file and can be edited and passed back with --config.

Examples:
  paperplane config > ~/.paperplane/configs/paperplane.yaml
  paperplane config --difficulty hard --timed`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigTimed, "timed", false, "Use the timed variant rules")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	variant := paperplane.VariantCampaign
	if flagConfigTimed {
		variant = paperplane.VariantTimed
	}
	cfg := paperplane.LoadConfig(variant)
	if err := cfg.Validate(); err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/zombie-run/internal/config"
)

var flagShowDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would start with, after the search path
and --difficulty are applied. Redirect the output to create a config file.

Search order:
  --config <path>
  ~/.zombierun/configs/zombies.yaml
  ./configs/zombies.yaml
  built-in defaults

Examples:
  zombierun config
  zombierun config --difficulty hard
  zombierun config --defaults > ~/.zombierun/configs/zombies.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagShowDefaults {
		fmt.Fprint(cmd.OutOrStdout(), string(config.GetDefaultYAML("zombies")))
		return nil
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

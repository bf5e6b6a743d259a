// zombierun is a side-scrolling zombie-avoidance game for the terminal,
// a desktop window, or remote play over SSH.
//
// Usage:
//
//	zombierun play             - Play in the terminal
//	zombierun window           - Play in a desktop window
//	zombierun serve            - Start SSH server for remote play
//	zombierun scores           - Show high scores
//	zombierun config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.zombierun/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-run/internal/config"
	"github.com/vovakirdan/zombie-run/internal/games/zombies"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zombierun",
	Short: "Zombie Run - jump over the zombies, collect the stars",
	Long: `Zombie Run is a side-scroller: zombies walk in from the right and the
player jumps over them. Every zombie that makes it off screen counts as
survived, and every ten survived zombies send a star.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  zombierun play
  zombierun play --difficulty hard
  zombierun window --assets ./sprites
  zombierun serve --ssh :2222
  zombierun scores --interactive`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.zombierun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig reads the game config once so a bad --config fails at
// startup, and points registry-created games at the same file and preset.
func loadGameConfig() (config.ZombiesConfig, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return config.ZombiesConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadZombies(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyZombiesPreset(&cfg, config.ParsePreset(flagDifficulty))

	zombies.SetConfigPath(flagConfig)
	zombies.SetDifficultyPreset(flagDifficulty)
	return cfg, nil
}

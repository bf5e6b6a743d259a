package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-run/internal/assets"
	"github.com/vovakirdan/zombie-run/internal/games/zombies"
	"github.com/vovakirdan/zombie-run/internal/platform/gfx"
	"github.com/vovakirdan/zombie-run/internal/registry"
	"github.com/vovakirdan/zombie-run/internal/storage"
)

var (
	flagAssetsDir string
	flagWidth     int
	flagHeight    int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Zombie Run in a resizable desktop window.

Controls:
  Left/A, Right/D  - Run
  Up/W/Space       - Jump (only from the ground)
  Q/Esc            - Quit

Sprites are drawn from built-in images. --assets points at a directory
whose player, zombie, star and bk images (.png, .jpg) replace them.

Examples:
  zombierun window
  zombierun window --assets ./sprites
  zombierun window --width 1600 --height 800`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	defaults := gfx.DefaultOptions()
	windowCmd.Flags().StringVar(&flagAssetsDir, "assets", "", "Directory with sprite overrides")
	windowCmd.Flags().IntVar(&flagWidth, "width", defaults.Width, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", defaults.Height, "Window height in pixels")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	if _, err := loadGameConfig(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "zombierun")
	if err != nil {
		return err
	}
	defer closeLog()

	catalog := assets.Default()
	if flagAssetsDir != "" {
		if err := catalog.LoadDir(flagAssetsDir); err != nil {
			return err
		}
		logger.Info("loaded asset overrides", "dir", flagAssetsDir)
	}

	game, err := registry.Create(zombies.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	sg, ok := game.(registry.SpriteGame)
	if !ok {
		return fmt.Errorf("game %q cannot be drawn in a window", game.ID())
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	opts := gfx.DefaultOptions()
	if store != nil {
		defer store.Close()
		opts.Scores = store
	}
	opts.Width = flagWidth
	opts.Height = flagHeight
	opts.TickRate = flagFPS
	opts.Assets = catalog
	opts.Logger = logger
	opts.Player = localUser()

	return gfx.Run(sg, opts)
}

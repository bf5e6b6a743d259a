package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombie-run/internal/core"
	"github.com/vovakirdan/zombie-run/internal/games/zombies"
	"github.com/vovakirdan/zombie-run/internal/platform/tui"
	"github.com/vovakirdan/zombie-run/internal/registry"
	"github.com/vovakirdan/zombie-run/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Zombie Run in the current terminal.

Controls:
  Left/A, Right/D  - Run
  Up/W/Space       - Jump (only from the ground)
  Ctrl+S           - Save a text screenshot
  Q/Esc/Ctrl+C     - Quit

After a collision the round restarts by itself two seconds later.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, base speed and spawn rate

Examples:
  zombierun play
  zombierun play --difficulty easy
  zombierun play --config ./my-zombies.yaml
  zombierun play --log-file zombierun.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs only go to --log-file.
	logger, closeLog, err := newLogger(nil, "zombierun")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(zombies.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, cfg, tui.Options{
		Store:     store,
		Logger:    logger,
		Player:    localUser(),
		HoldTicks: gameCfg.Terminal.HoldTicks,
	})
}

// localUser names the player for saved scores.
func localUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

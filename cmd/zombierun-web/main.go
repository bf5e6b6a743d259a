// zombierun-web is the browser build of Zombie Run:
//
//	GOOS=js GOARCH=wasm go build -o zombierun.wasm ./cmd/zombierun-web
//
// It has no score file and logs to the browser console.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-run/internal/config"
	"github.com/vovakirdan/zombie-run/internal/games/zombies"
	"github.com/vovakirdan/zombie-run/internal/platform/gfx"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "zombierun-web",
	})

	// No file system to search; start from the built-in defaults.
	game := zombies.NewWithConfig(config.DefaultZombiesConfig())

	opts := gfx.DefaultOptions()
	opts.Logger = logger
	if err := gfx.Run(game, opts); err != nil {
		logger.Fatal("game stopped", "error", err)
	}
}

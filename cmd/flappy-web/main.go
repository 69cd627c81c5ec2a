// flappy-web runs Flappy Bird on Ebitengine. Built for js/wasm it runs in
// the page served by `arcade web`; built natively it opens a window and
// saves scores to the arcade database.
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/web"
)

const zoom = 3

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy-web",
	})

	game := flappy.New()
	game.Reset(core.RuntimeConfig{TickRate: 60, Seed: time.Now().UnixNano()})

	g := web.NewGame(game)
	closeScores := attachScores(g, game.ID(), logger)
	defer closeScores()

	if err := web.Run(g, game.Title(), zoom); err != nil {
		logger.Fatal("game stopped", "error", err)
	}
}

//go:build js

package main

import (
	"strconv"
	"syscall/js"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/platform/web"
)

// attachScores keeps the best score in the browser's localStorage.
func attachScores(g *web.Game, gameID string, logger *log.Logger) func() {
	storage := js.Global().Get("localStorage")
	if storage.IsUndefined() || storage.IsNull() {
		return func() {}
	}
	key := gameID + ".best"

	if v := storage.Call("getItem", key); v.Type() == js.TypeString {
		if best, err := strconv.Atoi(v.String()); err == nil {
			g.SetHighScore(best)
		}
	}
	g.OnGameOver = func(score int) {
		// Game.Update has already raised its high score when this one beats it
		if score > 0 && score >= g.HighScore() {
			storage.Call("setItem", key, strconv.Itoa(score))
			logger.Debug("new best", "score", score)
		}
	}
	return func() {}
}

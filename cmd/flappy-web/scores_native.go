//go:build !js

package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/platform/web"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

const dbPath = "~/.arcade/scores.db"

// attachScores saves finished runs to the arcade database shared with the
// terminal front end.
func attachScores(g *web.Game, gameID string, logger *log.Logger) func() {
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", dbPath, "error", err)
		return func() {}
	}

	if best, err := store.HighScore(gameID); err == nil {
		g.SetHighScore(best)
	}
	g.OnGameOver = func(score int) {
		if score <= 0 {
			return
		}
		if _, err := store.SaveScore(storage.ScoreEntry{GameID: gameID, Score: score}); err != nil {
			logger.Warn("could not save score", "score", score, "error", err)
		}
	}
	return func() { store.Close() }
}

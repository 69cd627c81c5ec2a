package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Left/Right to change difficulty and
Enter to select. After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard --db ./scores.db`,
	RunE: runMenu,
}

// Separate from play's --difficulty, which defaults to the config's own ramp.
var flagMenuDifficulty string

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagMenuDifficulty, "difficulty", "normal", "Initial difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagMenuDifficulty); err != nil {
		return err
	}
	flappy.SetConfigPath(flagConfig)

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	difficulty := flagMenuDifficulty

	for {
		result, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			return err
		}
		cfg = result.Config
		difficulty = result.Difficulty

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, "flappy", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "error", err)
			continue
		}

		// A fresh seed per game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting game", "game", result.GameID, "difficulty", difficulty)
		err = tui.Run(game, store, cfg, tui.GameOptions{
			Player:     flagPlayer,
			Difficulty: difficulty,
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}

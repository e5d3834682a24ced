package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// applyGameSettings hands the global flags to the platformer package
// before any game is created.
func applyGameSettings() {
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLogger(newLogger("world"))
}

// newLogger creates a stderr logger honouring --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// levelLoader returns the loader selected by --levels-dir.
func levelLoader() *levels.Loader {
	if flagLevelsDir != "" {
		return levels.NewLoader(flagLevelsDir)
	}
	return levels.Embedded()
}

// loadLevels loads every valid level, failing when none is available.
func loadLevels() ([]levels.Level, error) {
	all, err := levelLoader().LoadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	return all, nil
}

// resolveLevel picks a level from --level-file, --level or the first
// available one, and checks its enemy kinds against the tuning.
func resolveLevel(id, file string) (levels.Level, error) {
	var (
		lvl levels.Level
		err error
	)
	switch {
	case file != "":
		lvl, err = levels.NewLoader("").LoadFile(file)
	case id != "":
		lvl, err = levelLoader().LoadByID(id)
	default:
		var all []levels.Level
		all, err = loadLevels()
		if err == nil {
			lvl = all[0]
		}
	}
	if err != nil {
		return levels.Level{}, err
	}

	cfg := platformer.LoadConfig()
	if err := lvl.Validate(cfg.Enemies.Kinds); err != nil {
		return levels.Level{}, err
	}
	return lvl, nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the runs database; the game works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return nil
	}
	return store
}

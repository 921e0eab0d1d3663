package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/applog"
	"github.com/vovakirdan/grid-arcade/internal/assets"
	"github.com/vovakirdan/grid-arcade/internal/audio"
	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/collector"
	"github.com/vovakirdan/grid-arcade/internal/games/tilegrid"
	"github.com/vovakirdan/grid-arcade/internal/games/ultimate"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var (
	flagAssets    string
	flagHighScore string
	flagMute      bool
)

// services is everything a play session needs besides the game itself.
// Each piece is optional and degrades on failure.
type services struct {
	logger  *log.Logger
	logFile io.Closer
	store   *storage.Store
	library *assets.Library
	sounds  *audio.SoundManager
}

// openServices sets up logging, storage, assets and audio. Terminal
// frontends log to a file so output cannot corrupt the screen.
func openServices(withAudio bool) *services {
	s := &services{}

	logger, closer, err := applog.OpenFile(flagLogFile, "arcade", flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger = applog.Discard()
	}
	s.logger = logger
	s.logFile = closer

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
	} else {
		s.store = store
	}

	s.library = assets.Load(flagAssets, config.DefaultGrid().TileSize, logger)

	if withAudio && !flagMute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing silently", "error", err)
		}
		s.library.RegisterSounds(sm)
		s.sounds = sm
	}
	return s
}

// soundPlayer returns the sound manager as an interface value, nil when
// audio is off.
func (s *services) soundPlayer() interface{ Play(string) } {
	if s.sounds == nil {
		return nil
	}
	return s.sounds
}

// Close releases everything in reverse order of opening.
func (s *services) Close() {
	if s.sounds != nil {
		s.sounds.Cleanup()
	}
	if s.library != nil {
		s.library.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// runtimeConfig builds the config games are reset with. The high score
// file is read once here; a corrupt file is logged and treated as zero.
func (s *services) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	high, err := storage.ReadHighScore(flagHighScore)
	if err != nil {
		s.logger.Warn("ignoring high score file", "path", flagHighScore, "error", err)
	}

	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		Assets:    s.library,
		HighScore: high,
	}
}

// configureGames passes --config and --difficulty to the game packages.
// The config path only applies to the named game; an empty id applies the
// difficulty to every game and leaves config paths alone.
func configureGames(gameID, configPath, difficulty string) error {
	if difficulty != "" {
		if _, ok := config.ParsePreset(difficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", difficulty)
		}
	}

	collector.SetDifficultyPreset(difficulty)
	ultimate.SetDifficultyPreset(difficulty)

	switch gameID {
	case "tilegrid":
		tilegrid.SetConfigPath(configPath)
	case "collector":
		collector.SetConfigPath(configPath)
	case "ultimate":
		ultimate.SetConfigPath(configPath)
	}
	return nil
}

// playerName identifies local sessions in the history.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

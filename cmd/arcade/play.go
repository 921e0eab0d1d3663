package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
	"github.com/vovakirdan/grid-arcade/internal/platform/window"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows  - Move (diagonals allowed)
  Enter        - Start from the title screen
  R            - Restart the round (collector)
  Esc/B        - Leave the game
  Q/Ctrl+C     - Quit

Difficulty options (collector, ultimate):
  easy   - Slower enemies, more lives and time
  normal - Configured values
  hard   - Faster enemies, fewer lives, less time, shorter power-ups

Examples:
  arcade play tilegrid
  arcade play ultimate --difficulty hard
  arcade play collector --window
  arcade play ultimate --config ./my-ultimate.yaml --highscore ./best.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open an 800x600 window instead of using the terminal")
	addAssetFlags(playCmd)
}

// addAssetFlags registers the flags shared by every command that runs games.
func addAssetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding sprites (*.png) and sounds (*.wav)")
	cmd.Flags().StringVar(&flagHighScore, "highscore", "highscore.txt", "High score file (read only)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if err := configureGames(gameID, flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	svc := openServices(true)
	cfg := svc.runtimeConfig()

	var runErr error
	if flagWindow {
		runErr = window.Run(game, cfg, window.Options{
			Images: svc.library,
			Sounds: svc.soundPlayer(),
			Store:  svc.store,
			Logger: svc.logger,
			Player: playerName(),
		})
	} else {
		runErr = tui.Run(game, cfg, tui.Options{
			Store:  svc.store,
			Sounds: svc.soundPlayer(),
			Logger: svc.logger,
			Player: playerName(),
		})
	}

	// Close services before potential exit
	svc.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

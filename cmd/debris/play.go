package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voidwake/space-debris/internal/config"
	"github.com/voidwake/space-debris/internal/core"
	"github.com/voidwake/space-debris/internal/games/debris"
	"github.com/voidwake/space-debris/internal/platform/audio"
	"github.com/voidwake/space-debris/internal/platform/tui"
	"github.com/voidwake/space-debris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  W/Up       - Steer up
  S/Down     - Steer down
  1/2/3      - Pick difficulty on the title screen
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Sparse, slow debris
  medium - The standard field (alias: normal)
  hard   - Dense, fast debris

Picking a difficulty on the command line skips the title screen.

Examples:
  debris play
  debris play --difficulty hard
  debris play --config ./my-debris.yaml
  debris play --sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play synthesized sound cues")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Validate the preset before anything opens
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the display buffer
	width, height := 80, 25 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	debris.SetConfigPath(flagConfig)
	debris.SetDifficultyPreset(preset)
	game := debris.New()

	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sound *audio.Player
	if flagSound {
		sound = audio.NewPlayer()
		if initErr := sound.Initialize(); initErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: no audio: %v\n", initErr)
			sound = nil
		}
	}

	runErr := tui.Run(game, store, sound, cfg)

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// debris is a terminal arcade game: steer your ship through incoming
// space debris for as long as you can.
//
// Usage:
//
//	debris play              - Play the game
//	debris scores            - Browse recorded rounds
//	debris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.spacedebris/rounds.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "debris",
	Short: "Space Debris - dodge the junk field in your terminal",
	Long: `Space Debris is a terminal arcade game. Debris drifts in from the
right edge of the screen; steer up and down to stay clear. Every piece
that makes it past you scores a point, and one touch ends the round.

Available commands:
  play     - Play the game
  scores   - Browse recorded rounds
  serve    - Start SSH server for remote play

Examples:
  debris play
  debris play --difficulty hard
  debris scores
  debris serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spacedebris/rounds.db", "Path to rounds database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voidwake/space-debris/internal/platform/tui"
	"github.com/voidwake/space-debris/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Browse recorded rounds",
	Long: `Open the interactive round browser, or print a plain table with --plain.

Without an argument the browser opens on the easy tab; tab/shift-tab
switch difficulties. With --plain, pass a difficulty to print its top
rounds.

Examples:
  debris scores
  debris scores --plain easy
  debris scores --plain hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive browser")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		difficulty := "Easy"
		if len(args) == 1 {
			difficulty = canonicalDifficulty(args[0])
		}
		printRounds(store, difficulty)
		return
	}

	width, height := 80, 25
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// canonicalDifficulty maps a CLI argument to the stored difficulty name.
func canonicalDifficulty(arg string) string {
	switch strings.ToLower(arg) {
	case "easy":
		return "Easy"
	case "medium", "normal":
		return "Medium"
	case "hard":
		return "Hard"
	}
	fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, medium or hard)\n", arg)
	os.Exit(1)
	return ""
}

// printRounds writes a plain-text top-10 table for one difficulty.
func printRounds(store *storage.Store, difficulty string) {
	rounds, err := store.TopRounds(difficulty, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Rounds - %s\n", difficulty)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'debris play' to get on the board!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Ticks", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range rounds {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10d  %s\n", i+1, entry.Score, entry.DurationTicks, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(difficulty); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

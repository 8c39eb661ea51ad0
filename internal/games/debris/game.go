// Package debris implements the space debris dodging game: a player
// marker steers up and down a fixed grid while debris drifts in from the
// right, scoring a point for every piece that passes and ending the
// round on contact.
package debris

import (
	"fmt"

	"github.com/voidwake/space-debris/internal/config"
	"github.com/voidwake/space-debris/internal/core"
)

// Visual characters for rendering
const (
	PlayerGlyph = '>'
	WreckGlyph  = '*'
	DebrisGlyph = '*'
	HeaderRule  = '─'
)

// Difficulty selects a row of the spawn parameter table.
// Undefined only exists before the first round starts.
type Difficulty int

const (
	DifficultyUndefined Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

// String returns a display name for the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Undefined"
	}
}

// gameStatus is the controller's state machine position.
type gameStatus int

const (
	statusTitle gameStatus = iota
	statusRunning
	statusGameOver
)

// Game is the controller: it owns the player, the debris pool, the score
// and the per-difficulty high scores, and drives the title -> running ->
// game-over -> reset transitions one tick at a time.
type Game struct {
	player      Player
	pool        *Pool
	score       int
	highScores  map[Difficulty]int
	difficulty  Difficulty
	seedCounter int64 // Monotonic across rounds so consecutive spawns differ
	status      gameStatus
	paused      bool
	roundTicks  int
	cfg         config.Config
	runtime     core.RuntimeConfig
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets a starting difficulty, skipping the title screen.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "debris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Debris"
}

// Reset initializes or restarts the game. High scores and the seed
// counter survive a reset; everything else returns to its spawn state.
// Without a difficulty preset the game opens on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg

	if g.highScores == nil {
		g.highScores = make(map[Difficulty]int)
	}
	g.pool = NewPool(cfg)
	g.player = NewPlayer(cfg.Grid.Width, cfg.Grid.Height)
	g.score = 0
	g.roundTicks = 0
	g.paused = false
	g.status = statusTitle

	if d, ok := presetDifficulty(difficultyPreset); ok {
		g.difficulty = d
		g.startRound()
	}
}

// presetDifficulty maps a CLI preset to a difficulty tier.
func presetDifficulty(p config.DifficultyPreset) (Difficulty, bool) {
	switch p {
	case config.PresetEasy:
		return DifficultyEasy, true
	case config.PresetMedium:
		return DifficultyMedium, true
	case config.PresetHard:
		return DifficultyHard, true
	}
	return DifficultyUndefined, false
}

// startRound begins a fresh round at the current difficulty: empty pool,
// zero score, player back at its spawn pose and running, spawn countdown
// armed from the difficulty's interval. The seed counter is deliberately
// not reset, keeping spawn sequences distinct across rounds.
func (g *Game) startRound() {
	g.player = NewPlayer(g.cfg.Grid.Width, g.cfg.Grid.Height)
	g.pool.Clear()
	g.pool.Arm(g.params().SpawnInterval)
	g.score = 0
	g.roundTicks = 0
	g.paused = false
	g.status = statusRunning
}

// params returns the spawn parameters for the active difficulty.
func (g *Game) params() config.DifficultyParams {
	switch g.difficulty {
	case DifficultyMedium:
		return g.cfg.Difficulty.Medium
	case DifficultyHard:
		return g.cfg.Difficulty.Hard
	default:
		return g.cfg.Difficulty.Easy
	}
}

// selectedDifficulty extracts a difficulty choice from the input frame.
func selectedDifficulty(in core.InputFrame) (Difficulty, bool) {
	switch {
	case in.Has(core.ActionSelectEasy):
		return DifficultyEasy, true
	case in.Has(core.ActionSelectMed):
		return DifficultyMedium, true
	case in.Has(core.ActionSelectHard):
		return DifficultyHard, true
	}
	return DifficultyUndefined, false
}

// Step advances the game by one tick.
//
// Order within a running tick: a collision from the previous pool pass
// resolves first (velocity zeroed, score folded into the difficulty's
// high score, round over, pool drained), then steering input, player
// motion, the spawn countdown, and finally the pool pass with its inline
// score tally. A tick that ends in a collision therefore never also
// scores debris that crossed the score column after the hit, while
// points earned earlier in the same pass stand.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if g.status != statusRunning {
		if d, ok := selectedDifficulty(in); ok {
			g.difficulty = d
			g.startRound()
			events = append(events, core.EventRoundStart)
		} else if in.Has(core.ActionRestart) && g.status == statusGameOver {
			g.startRound()
			events = append(events, core.EventRoundStart)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.roundTicks++

	if g.player.Status() == PlayerStopped {
		g.player.Halt()
		g.foldHighScore()
		g.status = statusGameOver
		g.pool.TickAll(&g.player) // stopped round drains every debris
		events = append(events, core.EventCollision)
		return core.StepResult{State: g.State(), Events: events}
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown} {
		if in.Has(a) && g.player.Steer(a) {
			events = append(events, core.EventSteer)
		}
	}

	g.player.Advance()

	if g.pool.TickSpawn(g.runtime.Seed+g.seedCounter, g.params()) {
		g.seedCounter++
	}

	if scored := g.pool.TickAll(&g.player); scored > 0 {
		g.score += scored
		events = append(events, core.EventScore)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// foldHighScore records the round score if it beats the difficulty's best.
// High scores only ever increase within the process lifetime.
func (g *Game) foldHighScore() {
	if g.score > g.highScores[g.difficulty] {
		g.highScores[g.difficulty] = g.score
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == statusGameOver,
		Title:    g.status == statusTitle,
		Paused:   g.paused,
	}
}

// Difficulty returns the active difficulty tier.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// HighScore returns the best score reached at the given difficulty this
// process lifetime.
func (g *Game) HighScore(d Difficulty) int {
	return g.highScores[d]
}

// RoundTicks returns the length of the current or last round in ticks.
func (g *Game) RoundTicks() int {
	return g.roundTicks
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawHeader(dst)

	for _, d := range g.pool.Items() {
		dst.SetCell(d.Col, d.Row, DebrisGlyph, d.Color)
	}

	switch g.status {
	case statusTitle:
		g.drawTitleScreen(dst)
	case statusGameOver:
		dst.SetCell(g.player.Col, g.player.Row, WreckGlyph, core.ColorRed)
		g.drawGameOver(dst)
	default:
		dst.SetCell(g.player.Col, g.player.Row, PlayerGlyph, core.ColorWhite)
		if g.paused {
			g.drawMessage(dst, "PAUSED", "Press P to resume")
		}
	}
}

// drawHeader renders the score line and the rule below it.
func (g *Game) drawHeader(dst *core.Screen) {
	w := core.Min(dst.Width(), g.cfg.Grid.Width)

	dst.ClearRow(0)
	if g.status != statusTitle {
		left := fmt.Sprintf(" SCORE %d", g.score)
		right := fmt.Sprintf("BEST %d  %s ", g.highScores[g.difficulty], g.difficulty)
		dst.DrawTextColor(0, 0, left, core.ColorWhite)
		dst.DrawTextColor(w-len(right), 0, right, core.ColorLightGray)
	}
	dst.DrawHLine(0, 1, w, HeaderRule)
}

// drawTitleScreen renders the difficulty picker shown before any round.
func (g *Game) drawTitleScreen(dst *core.Screen) {
	g.drawMessage(dst,
		"S P A C E   D E B R I S",
		"1 Easy   2 Medium   3 Hard")
}

// drawGameOver renders the end-of-round summary.
func (g *Game) drawGameOver(dst *core.Screen) {
	sub := fmt.Sprintf("Score %d  Best %d  |  R retry - 1/2/3 difficulty",
		g.score, g.highScores[g.difficulty])
	g.drawMessage(dst, "GAME OVER", sub)
}

// drawMessage draws a boxed two-line message in the center of the screen.
func (g *Game) drawMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

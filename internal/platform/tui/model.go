package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voidwake/space-debris/internal/core"
	"github.com/voidwake/space-debris/internal/games/debris"
	"github.com/voidwake/space-debris/internal/platform/audio"
	"github.com/voidwake/space-debris/internal/storage"
)

// Model is the Bubble Tea model driving the game loop.
type Model struct {
	game       *debris.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Player
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	roundSaved bool // Whether the finished round has been written to the store
}

// NewModel creates a new Bubble Tea model for the game.
// store and sound may be nil; persistence and audio cues are then skipped.
func NewModel(game *debris.Game, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey coalesces key presses into the input frame for the next tick.
// Holding a key between ticks collapses into a single action.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the display buffer. The playfield itself is fixed
// by the game config; only the surrounding screen changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.playCue(e)
		if e == core.EventRoundStart {
			m.roundSaved = false
		}
	}

	// Record the finished round once
	if m.gameState.GameOver && !m.roundSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRound(m.game.Difficulty().String(), m.gameState.Score, m.game.RoundTicks())
		}
		m.roundSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// playCue forwards a game event to the sound player.
func (m Model) playCue(e core.Event) {
	if m.sound == nil {
		return
	}
	switch e {
	case core.EventSteer:
		m.sound.Steer()
	case core.EventScore:
		m.sound.Score()
	case core.EventCollision:
		m.sound.GameOver()
	case core.EventRoundStart:
		m.sound.RoundStart()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *debris.Game, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

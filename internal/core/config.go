package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for tick timing and deterministic simulation; the
// platform uses the screen dimensions for the terminal buffer.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Base RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  25,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended in a collision
	Title    bool // Whether the title screen is showing (no round yet)
	Paused   bool // Whether the game is paused
}

// Event is a notable occurrence during a tick. The platform layer maps
// events to sound cues; the game core never plays audio itself.
type Event int

const (
	EventSteer      Event = iota + 1 // Player velocity changed
	EventScore                       // One or more debris scored this tick
	EventCollision                   // Player hit debris, round over
	EventRoundStart                  // A new round began
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the game to work with high-level intents rather
// than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - steer up
	ActionDown              // S, Down arrow - steer down
	ActionSelectEasy        // 1 - start a round on easy
	ActionSelectMed         // 2 - start a round on medium
	ActionSelectHard        // 3 - start a round on hard
	ActionRestart           // R - restart with the current difficulty
	ActionPause             // P - pause/unpause a running round
	ActionQuit              // Q, Ctrl+C - exit game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionSelectEasy:
		return "SelectEasy"
	case ActionSelectMed:
		return "SelectMedium"
	case ActionSelectHard:
		return "SelectHard"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered since the previous tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse clicks. Games work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionGuess          // 1-9, 0, -, = or a click on a button
	ActionConfirm        // Enter/Space - dismiss instructions
	ActionRestart        // Y/R - play again after game over
	ActionDecline        // N - leave after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// NoChoice is the Choice value of a frame without a guess.
const NoChoice = -1

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionGuess:
		return "Guess"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionDecline:
		return "Decline"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input delivered to a game in one Step call.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Choice is the index of the guessed button, or NoChoice.
	Choice int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Choice:  NoChoice,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetChoice records a guess for the button at index i.
func (f *InputFrame) SetChoice(i int) {
	f.Set(ActionGuess)
	f.Choice = i
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Choice = NoChoice
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Choice = f.Choice
	return clone
}

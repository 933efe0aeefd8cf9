package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump (normal regime) or flip (flip regime)
	ActionDuck           // Down - reported by hardware controllers, no gameplay effect yet
	ActionConfirm        // Enter - play from the title menu
	ActionRestart        // R - restart after game over
	ActionShop           // Tab - toggle the shop panel
	ActionBuy            // B - buy the alternate skin
	ActionPause          // P - pause/unpause a running game
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionShop:
		return "Shop"
	case ActionBuy:
		return "Buy"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the raw input state during one simulation tick.
// An action present in the frame is held (level high) for that tick.
type InputFrame struct {
	// Actions maps action types to whether they were held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was held this frame.
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

// EdgeLatch turns level-triggered input frames into edge-triggered ones.
// An action fires only on the tick it goes from released to held; holding
// it across ticks fires once.
type EdgeLatch struct {
	prev map[Action]bool
}

// Latch compares in against the previous tick's snapshot and returns a frame
// containing only the actions that were just pressed. The snapshot is then
// replaced by in.
func (l *EdgeLatch) Latch(in InputFrame) InputFrame {
	if l.prev == nil {
		l.prev = make(map[Action]bool)
	}

	pressed := NewInputFrame()
	for a, held := range in.Actions {
		if held && !l.prev[a] {
			pressed.Set(a)
		}
	}

	for a := range l.prev {
		delete(l.prev, a)
	}
	for a, held := range in.Actions {
		if held {
			l.prev[a] = true
		}
	}
	return pressed
}

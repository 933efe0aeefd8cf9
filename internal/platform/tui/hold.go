package tui

import "github.com/vovakirdan/flipdash/internal/core"

// holdWindow is how long a movement key stays held after its last key
// event. It spans the terminal's auto-repeat interval, so a held key reads
// as one continuous press.
const holdWindow = 0.1

// keyHold turns discrete key events for movement actions into levels.
// Terminals report presses and repeats but no releases.
type keyHold struct {
	remaining map[core.Action]float64
}

func newKeyHold() *keyHold {
	return &keyHold{remaining: make(map[core.Action]float64)}
}

// press records a key event. It reports false for actions that are not
// held, which the caller sets for a single tick instead.
func (h *keyHold) press(a core.Action) bool {
	switch a {
	case core.ActionJump, core.ActionDuck:
		h.remaining[a] = holdWindow
		return true
	}
	return false
}

// apply sets every held action in frame and runs the windows down by dt.
func (h *keyHold) apply(frame *core.InputFrame, dt float64) {
	for a, left := range h.remaining {
		frame.Set(a)
		if left -= dt; left <= 0 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = left
		}
	}
}

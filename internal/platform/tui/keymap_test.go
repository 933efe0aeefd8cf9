package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flipdash/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w", runeKey('w'), core.ActionJump, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDuck, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionShop, false},
		{"b", runeKey('b'), core.ActionBuy, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = (%s, %v), want (%s, %v)", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestKeyHoldKeepsRepeatsLatched(t *testing.T) {
	h := newKeyHold()
	var latch core.EdgeLatch
	const dt = 1.0 / 60

	edges := 0
	for tick := 0; tick < 60; tick++ {
		// Auto-repeat delivers a key event every other tick.
		if tick%2 == 0 {
			h.press(core.ActionJump)
		}
		frame := core.NewInputFrame()
		h.apply(&frame, dt)
		if latch.Latch(frame).Has(core.ActionJump) {
			edges++
		}
	}
	if edges != 1 {
		t.Errorf("held key fired %d jump edges, want 1", edges)
	}
}

func TestKeyHoldReleasesAfterWindow(t *testing.T) {
	h := newKeyHold()
	const dt = 1.0 / 60

	h.press(core.ActionJump)
	held := 0
	for tick := 0; tick < 30; tick++ {
		frame := core.NewInputFrame()
		h.apply(&frame, dt)
		if frame.Has(core.ActionJump) {
			held++
		}
	}
	if held < 1 || float64(held)*dt > holdWindow+2*dt {
		t.Errorf("tap held for %d ticks, want about %v s", held, holdWindow)
	}
}

func TestKeyHoldIgnoresOneShotActions(t *testing.T) {
	h := newKeyHold()
	for _, a := range []core.Action{core.ActionConfirm, core.ActionRestart, core.ActionShop, core.ActionBuy, core.ActionPause} {
		if h.press(a) {
			t.Errorf("press(%s) held a one-shot action", a)
		}
	}
	if !h.press(core.ActionDuck) {
		t.Error("duck should be held")
	}
}

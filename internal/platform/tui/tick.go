// Package tui provides the Bubble Tea integration for Flip Dash.
// It owns the terminal loop: it measures tick time, maps keys and serial
// signals to input frames, feeds the simulation and renders its snapshot.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flipdash/internal/config"
)

// maxFrameDelta caps a single tick's dt so a stalled terminal cannot
// teleport spikes through the player.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ConfigMsg carries a reloaded config from the file watcher.
type ConfigMsg config.Config

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForConfig blocks on the watcher channel and delivers the next config.
// A closed channel ends the subscription.
func waitForConfig(updates <-chan config.Config) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return ConfigMsg(cfg)
	}
}

// frameDelta returns the seconds between two ticks. The first tick, a
// clock going backwards and long stalls are all bounded.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		return 1 / float64(tickRate)
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flipdash/internal/config"
	"github.com/vovakirdan/flipdash/internal/core"
	"github.com/vovakirdan/flipdash/internal/game"
	"github.com/vovakirdan/flipdash/internal/storage"
)

type fakeSignals struct {
	jump bool
	down bool
}

func (f *fakeSignals) Drain() (bool, bool) {
	j := f.jump
	f.jump = false
	return j, false
}

func (f *fakeSignals) Available() bool { return !f.down }

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func TestModelPlayAndJump(t *testing.T) {
	g := game.New(config.DefaultConfig(), game.NewRand(1), nil)
	signals := &fakeSignals{}
	m := NewModel(Options{Game: g, Signals: signals}, testRuntime())

	now := time.Unix(0, 0)
	tick := func() {
		now = now.Add(time.Second / 60)
		m = update(t, m, TickMsg(now))
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	tick()
	if g.State() != game.StateRunning {
		t.Fatalf("state = %s, want Running", g.State())
	}

	// A serial jump acts like a key press.
	tick()
	signals.jump = true
	tick()
	if snap := g.Snapshot(); snap.PlayerOnGround {
		t.Error("serial jump did not lift the player")
	}

	if view := m.View(); view == "" {
		t.Error("empty view while running")
	}
}

func TestModelQuit(t *testing.T) {
	g := game.New(config.DefaultConfig(), game.NewRand(1), nil)
	m := NewModel(Options{Game: g}, testRuntime())

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelSavesRunOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := game.New(config.DefaultConfig(), game.NewRand(1), nil)
	m := NewModel(Options{Game: g, Store: store, Difficulty: config.DifficultyHard}, testRuntime())

	// Stand still until a spike ends the run.
	now := time.Unix(0, 0)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 60*30 && g.State() != game.StateGameOver; i++ {
		now = now.Add(time.Second / 60)
		m = update(t, m, TickMsg(now))
	}
	if g.State() != game.StateGameOver {
		t.Fatal("run never ended")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("%d runs saved, want 1", len(runs))
	}
	if runs[0].Preset != "hard" || runs[0].Skin != "Classic" || runs[0].Duration <= 0 {
		t.Errorf("saved run = %+v", runs[0])
	}
	if m.HighScore() != runs[0].Score {
		t.Errorf("HighScore() = %d, want %d", m.HighScore(), runs[0].Score)
	}
}

func TestModelConfigReload(t *testing.T) {
	g := game.New(config.DefaultConfig(), game.NewRand(1), nil)
	updates := make(chan config.Config, 1)
	m := NewModel(Options{Game: g, ConfigUpdates: updates}, testRuntime())

	cfg := config.DefaultConfig()
	cfg.Scoring.Rate = 40
	m = update(t, m, ConfigMsg(cfg))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Unix(0, 0)))
	if g.Config().Scoring.Rate != 40 {
		t.Errorf("rate = %v, want reloaded 40", g.Config().Scoring.Rate)
	}
}

func TestModelConfigReloadKeepsDifficulty(t *testing.T) {
	cfg := config.DefaultConfig()
	config.ApplyPreset(&cfg, config.DifficultyEasy)
	g := game.New(cfg, game.NewRand(1), nil)
	m := NewModel(Options{Game: g, Difficulty: config.DifficultyEasy}, testRuntime())

	// The reloaded file carries the normal spawn window.
	reloaded := config.DefaultConfig()
	reloaded.Obstacles.MinSpawnTime = 1.0
	reloaded.Obstacles.MaxSpawnTime = 3.0
	m = update(t, m, ConfigMsg(reloaded))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Unix(0, 0)))

	got := g.Config().Obstacles
	if got.MinSpawnTime != 1.5 || got.MaxSpawnTime != 3.5 {
		t.Errorf("spawn window after reload = %v..%v, want easy 1.5..3.5", got.MinSpawnTime, got.MaxSpawnTime)
	}
}

func TestPresetLabel(t *testing.T) {
	if got := presetLabel(config.DifficultyEasy); got != "easy" {
		t.Errorf("presetLabel(easy) = %q", got)
	}
	if got := presetLabel(""); got != "custom" {
		t.Errorf("presetLabel(\"\") = %q, want custom", got)
	}
}

func TestModelShowsSerialState(t *testing.T) {
	g := game.New(config.DefaultConfig(), game.NewRand(1), nil)
	signals := &fakeSignals{down: true}
	m := NewModel(Options{Game: g, Signals: signals}, testRuntime())

	if !strings.Contains(m.View(), serialDownLabel) {
		t.Error("disconnected controller not shown")
	}

	signals.down = false
	if strings.Contains(m.View(), serialDownLabel) {
		t.Error("connected controller shown as disconnected")
	}

	keyboardOnly := NewModel(Options{Game: g}, testRuntime())
	if strings.Contains(keyboardOnly.View(), serialDownLabel) {
		t.Error("keyboard-only session shows serial state")
	}
}

func TestModelHeldJumpFiresOnce(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Scoring.FlipThreshold = 0 // Flip regime from the first tick
	g := game.New(cfg, game.NewRand(1), nil)
	m := NewModel(Options{Game: g}, testRuntime())

	now := time.Unix(0, 0)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	now = now.Add(time.Second / 60)
	m = update(t, m, TickMsg(now))

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	flips := 0
	wasFlipped := g.Snapshot().PlayerFlipped
	for i := 0; i < 60; i++ {
		// Auto-repeat every other tick while the key is down.
		if i%2 == 0 {
			m = update(t, m, space)
		}
		now = now.Add(time.Second / 60)
		m = update(t, m, TickMsg(now))
		if f := g.Snapshot().PlayerFlipped; f != wasFlipped {
			flips++
			wasFlipped = f
		}
	}
	if flips != 1 {
		t.Errorf("held jump flipped gravity %d times, want 1", flips)
	}
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flipdash/internal/config"
	"github.com/vovakirdan/flipdash/internal/core"
	"github.com/vovakirdan/flipdash/internal/game"
	"github.com/vovakirdan/flipdash/internal/storage"
)

// SignalSource is a background input device drained once per tick.
type SignalSource interface {
	Drain() (jump, duck bool)
	Available() bool
}

// Options wires the model to its collaborators. Everything except Game
// is optional.
type Options struct {
	Game          *game.Game
	Store         *storage.Store
	Signals       SignalSource
	ConfigUpdates <-chan config.Config
	Logger        *log.Logger
	Difficulty    config.DifficultyPreset // Reapplied to reloaded configs, recorded with each run
}

// Model is the Bubble Tea model running a Flip Dash session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	signals    SignalSource
	updates    <-chan config.Config
	logger     *log.Logger
	difficulty config.DifficultyPreset
	config     core.RuntimeConfig
	keys       *KeyMapper
	holds      *keyHold
	help       help.Model
	inputFrame core.InputFrame
	lastTick   time.Time
	highScore  int
	status     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given options.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	cfg = cfg.Normalized()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       opts.Game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		signals:    opts.Signals,
		updates:    opts.ConfigUpdates,
		logger:     logger,
		difficulty: opts.Difficulty,
		config:     cfg,
		keys:       NewKeyMapper(),
		holds:      newKeyHold(),
		help:       plainHelp(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	if m.store != nil {
		if high, err := m.store.HighScore(); err == nil {
			m.highScore = high
		} else {
			logger.Warn("could not read high score", "error", err)
		}
	}
	return m
}

// plainHelp returns a help model without styling. Its output is drawn
// into screen cells, which carry their own color.
func plainHelp() help.Model {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	return h
}

// Init starts the tick loop and the config subscription.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.updates))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigMsg:
		cfg := config.Config(msg)
		config.ApplyPreset(&cfg, m.difficulty)
		m.game.SetConfig(cfg)
		m.logger.Info("config reloaded; applies on next run")
		m.status = "Config reloaded"
		return m, waitForConfig(m.updates)
	}

	return m, nil
}

// handleKey processes keyboard input. Terminals report presses only:
// movement keys stay held for a short window, every other key counts as
// held for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.holds.press(action) && action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The simulation works in
// world units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	m.holds.apply(&m.inputFrame, dt)
	if m.signals != nil {
		jump, duck := m.signals.Drain()
		if jump {
			m.inputFrame.Set(core.ActionJump)
		}
		if duck {
			m.inputFrame.Set(core.ActionDuck)
		}
	}

	result := m.game.Step(dt, m.inputFrame)
	for _, e := range result.Events {
		m.handleEvent(e)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) handleEvent(e game.Event) {
	switch e.Kind {
	case game.EventGameOver:
		m.saveRun(e)
	case game.EventRunStarted:
		m.status = ""
	case game.EventPurchase:
		switch e.Purchase {
		case game.PurchaseOK:
			m.status = "Skin equipped!"
		case game.PurchaseInsufficientFunds:
			m.status = "Not enough coins"
		}
	}
}

// saveRun records a finished run. Storage failures never stop the game.
func (m *Model) saveRun(e game.Event) {
	score := displayScore(e.Score)
	if score > m.highScore {
		m.highScore = score
	}
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		Score:    score,
		Coins:    e.RunCoins,
		Duration: e.RunTime,
		Preset:   presetLabel(m.difficulty),
		Skin:     m.game.Skin().Name,
	})
	if err != nil {
		m.logger.Error("could not save run", "score", score, "error", err)
	}
}

// presetLabel names the difficulty in run history. Without a preset the
// config file decides the spawn window.
func presetLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "custom"
	}
	return string(p)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".flipdash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flipdash_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.status = "Screenshot saved"
}

func (m Model) draw() {
	Draw(m.screen, m.game.Snapshot(), HUD{
		HighScore:  m.highScore,
		Status:     m.status,
		Help:       m.help.View(m.keys.Keys()),
		SerialDown: m.signals != nil && !m.signals.Available(),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// HighScore returns the best score known to this session.
func (m Model) HighScore() int {
	return m.highScore
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

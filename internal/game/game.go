package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flipdash/internal/config"
	"github.com/vovakirdan/flipdash/internal/core"
)

// StepResult is what a single Step reports back to the driver.
type StepResult struct {
	State  State
	Events []Event
}

// Game is the simulation context. It is owned by one driver and is not
// safe for concurrent use.
type Game struct {
	cfg     config.Config
	pending *config.Config // Applied on the next transition into Running
	rng     Rand
	logger  *log.Logger
	latch   core.EdgeLatch

	state    State
	paused   bool
	shopOpen bool

	player     *Player
	obstacles  *ObstacleSpawner
	coins      *CoinSpawner
	score      *ScoreTracker
	difficulty *config.DifficultyManager

	wallet    Wallet
	skin      Skin
	alternate Skin

	lastScore float64 // Final score of the last finished run
	runTime   float64 // Seconds of running time in the current run
	runCoins  int     // Coins collected in the current run

	events []Event
}

// New creates a game sitting on the title menu. A nil rng falls back to a
// seeded math/rand source, a nil logger discards output.
func New(cfg config.Config, rng Rand, logger *log.Logger) *Game {
	if rng == nil {
		rng = NewRand(1)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		rng:    rng,
		logger: logger,
		state:  StateMenu,
	}
	g.applyConfig(cfg)
	g.skin = skinFrom(cfg.Shop.DefaultSkin)
	g.obstacles = NewObstacleSpawner(g.cfg, rng, g.difficulty)
	g.coins = NewCoinSpawner(g.cfg, rng)
	g.score = NewScoreTracker(g.cfg.Scoring.Rate, g.difficulty)
	return g
}

// applyConfig swaps the tuning. Wallet and the equipped skin are untouched.
func (g *Game) applyConfig(cfg config.Config) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg)
	g.alternate = skinFrom(cfg.Shop.PurchaseSkin)
	if g.obstacles != nil {
		g.obstacles.UpdateConfig(cfg, g.difficulty)
		g.coins.UpdateConfig(cfg)
		g.score = NewScoreTracker(cfg.Scoring.Rate, g.difficulty)
	}
}

// SetConfig queues new tuning. It takes effect on the next play or restart
// so a run never changes rules halfway through.
func (g *Game) SetConfig(cfg config.Config) {
	g.pending = &cfg
	g.logger.Debug("config queued", "state", g.state)
}

// Reseed resets the random source used by the spawners.
func (g *Game) Reseed(seed int64) {
	g.rng.Seed(seed)
}

// Step advances the simulation by dt seconds with the raw input held this tick.
func (g *Game) Step(dt float64, in core.InputFrame) StepResult {
	g.events = nil

	if clean := SanitizeDelta(dt); clean != dt {
		g.logger.Debug("tick skipped", "dt", dt)
		dt = clean
	}

	pressed := g.latch.Latch(in)

	if pressed.Has(core.ActionShop) {
		g.shopOpen = !g.shopOpen
		g.emit(Event{Kind: EventShopToggled, Score: g.score.Score().Value, Coins: g.wallet.Coins})
	}
	if pressed.Has(core.ActionBuy) {
		g.Buy()
	}

	switch g.state {
	case StateMenu:
		if pressed.Has(core.ActionConfirm) {
			g.startRun()
		}
	case StateGameOver:
		if pressed.Has(core.ActionRestart) {
			g.startRun()
		}
	case StateRunning:
		if pressed.Has(core.ActionPause) {
			g.paused = !g.paused
			g.emit(Event{Kind: EventPauseToggled, Score: g.score.Score().Value, Coins: g.wallet.Coins})
		}
		if !g.paused {
			g.tick(dt, pressed.Has(core.ActionJump))
		}
	}

	return StepResult{State: g.state, Events: g.events}
}

// Buy tries to purchase the alternate skin with wallet coins.
func (g *Game) Buy() PurchaseResult {
	res := Buy(&g.wallet, &g.skin, g.alternate, g.cfg.Shop.Cost)
	g.logger.Info("purchase", "result", res, "skin", g.skin.Name, "coins", g.wallet.Coins)
	g.emit(Event{Kind: EventPurchase, Score: g.score.Score().Value, Coins: g.wallet.Coins, Purchase: res})
	return res
}

// startRun enters Running from Menu or GameOver.
func (g *Game) startRun() {
	if g.pending != nil {
		g.applyConfig(*g.pending)
		g.pending = nil
	}

	g.player = newPlayer(g.cfg)
	g.score.Reset()
	g.obstacles.Reset()
	g.coins.Reset()
	g.shopOpen = false
	g.paused = false
	g.runTime = 0
	g.runCoins = 0
	g.state = StateRunning

	g.logger.Info("run started", "coins", g.wallet.Coins, "skin", g.skin.Name)
	g.emit(Event{Kind: EventRunStarted, Coins: g.wallet.Coins})
}

// tick runs one Running step. Every decision in it uses the score
// snapshot taken on entry; the score advances last.
func (g *Game) tick(dt float64, jump bool) {
	snap := g.score.Score()
	regime := RegimeFor(snap.Value, g.cfg.Scoring.FlipThreshold)

	if g.player != nil {
		g.player.update(g.cfg.Physics, regime, jump, dt)
	}
	g.obstacles.Update(dt, snap.Value, snap.Difficulty)
	g.coins.Update(dt, snap.Value)
	g.runTime += dt

	if g.player != nil {
		if i, hit := g.obstacles.FirstHit(g.player.Rect(g.cfg.Player)); hit {
			g.gameOver(g.obstacles.Obstacles()[i])
			return
		}

		if n := g.coins.Collect(g.player.Pos); n > 0 {
			g.wallet.Credit(uint(n))
			g.runCoins += n
			g.logger.Debug("coin collected", "count", n, "coins", g.wallet.Coins)
			g.emit(Event{Kind: EventCoinCollected, Score: snap.Value, Coins: g.wallet.Coins})
		}
	}

	g.score.Advance(dt)
}

// gameOver freezes the score and despawns every obstacle and coin.
func (g *Game) gameOver(hit Obstacle) {
	final := g.score.Score().Value
	g.state = StateGameOver
	g.lastScore = final
	g.obstacles.Clear()
	g.coins.Clear()

	runTime := time.Duration(g.runTime * float64(time.Second))
	g.logger.Info("game over",
		"score", int(final),
		"hit", hit.Kind,
		"run_coins", g.runCoins,
		"duration", runTime.Round(time.Millisecond),
	)
	g.emit(Event{
		Kind:     EventGameOver,
		Score:    final,
		Coins:    g.wallet.Coins,
		RunTime:  runTime,
		RunCoins: g.runCoins,
	})
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// State returns the current top-level state.
func (g *Game) State() State {
	return g.state
}

// Paused reports whether a running game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Wallet returns the current coin balance.
func (g *Game) Wallet() uint {
	return g.wallet.Coins
}

// Skin returns the equipped skin.
func (g *Game) Skin() Skin {
	return g.skin
}

// Config returns the tuning the current run uses.
func (g *Game) Config() config.Config {
	return g.cfg
}

// checkInvariants reports every broken invariant of the simulation.
func (g *Game) checkInvariants() error {
	var errs []error

	switch g.state {
	case StateRunning, StateGameOver:
		if g.player == nil {
			errs = append(errs, fmt.Errorf("no player in state %s", g.state))
		}
	case StateMenu:
		if g.player != nil {
			errs = append(errs, errors.New("player exists on the menu"))
		}
	}

	s := g.score.Score()
	if s.Value < 0 {
		errs = append(errs, fmt.Errorf("negative score %v", s.Value))
	}
	if want := g.difficulty.Level(s.Value); s.Difficulty != want {
		errs = append(errs, fmt.Errorf("difficulty %v, want %v", s.Difficulty, want))
	}
	if g.state == StateGameOver && len(g.obstacles.Obstacles()) > 0 {
		errs = append(errs, errors.New("obstacles left after game over"))
	}

	return errors.Join(errs...)
}

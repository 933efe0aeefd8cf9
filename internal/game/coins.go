package game

import (
	"github.com/vovakirdan/flipdash/internal/config"
	"github.com/vovakirdan/flipdash/internal/core"
)

// Coin is a collectible scrolling with the obstacles.
type Coin struct {
	Pos core.Vec2
}

// CoinSpawner drops coins on a fixed timer once the score unlocks them.
type CoinSpawner struct {
	coins []Coin
	timer Timer
	rng   Rand
	cfg   config.Config
}

// NewCoinSpawner creates a coin spawner with an armed timer.
func NewCoinSpawner(cfg config.Config, rng Rand) *CoinSpawner {
	s := &CoinSpawner{
		coins: make([]Coin, 0, 4),
		rng:   rng,
		cfg:   cfg,
	}
	s.Reset()
	return s
}

// UpdateConfig swaps the tuning used by the next Reset.
func (s *CoinSpawner) UpdateConfig(cfg config.Config) {
	s.cfg = cfg
}

// Reset clears all coins and restarts the timer.
func (s *CoinSpawner) Reset() {
	s.Clear()
	s.timer.Reset(s.cfg.Coins.Interval)
}

// Clear despawns every coin without touching the timer.
func (s *CoinSpawner) Clear() {
	s.coins = s.coins[:0]
}

// Update spawns, scrolls and culls coins. Below the coin threshold the
// timer does not advance at all.
func (s *CoinSpawner) Update(dt, score float64) {
	if score >= s.cfg.Scoring.CoinThreshold && s.timer.Tick(dt) {
		c := s.cfg.Coins
		s.coins = append(s.coins, Coin{
			Pos: core.V(s.rng.Range(c.SpawnMinX, c.SpawnMaxX), c.Y),
		})
	}

	speed := s.cfg.Obstacles.Speed
	for i := range s.coins {
		s.coins[i].Pos.X += speed * dt
	}

	kept := s.coins[:0]
	for _, c := range s.coins {
		if c.Pos.X >= s.cfg.Obstacles.CullX {
			kept = append(kept, c)
		}
	}
	s.coins = kept
}

// Collect removes every coin within the pickup radius of pos and returns
// how many were taken. Removal and counting happen in the same pass.
func (s *CoinSpawner) Collect(pos core.Vec2) int {
	taken := 0
	kept := s.coins[:0]
	for _, c := range s.coins {
		if c.Pos.Dist(pos) < s.cfg.Coins.PickupRadius {
			taken++
			continue
		}
		kept = append(kept, c)
	}
	s.coins = kept
	return taken
}

// Coins returns the live coins. The slice is owned by the spawner.
func (s *CoinSpawner) Coins() []Coin {
	return s.coins
}

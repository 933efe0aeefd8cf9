package game

import "github.com/vovakirdan/flipdash/internal/core"

// World describes the fixed geometry a renderer needs to map world units
// onto its own surface.
type World struct {
	GroundY      float64
	CeilingY     float64
	MinX         float64 // Cull line
	MaxX         float64 // Rightmost spawn edge
	PlayerSize   core.Vec2
	ObstacleSize core.Vec2
	CoinRadius   float64
}

// Snapshot is a read-only copy of everything a render sink shows.
type Snapshot struct {
	State    State
	Paused   bool
	ShopOpen bool
	Regime   Regime

	HasPlayer      bool
	PlayerPos      core.Vec2
	PlayerRotation float64
	PlayerFlipped  bool
	PlayerOnGround bool

	Obstacles []Obstacle
	Coins     []Coin

	Score     Score
	LastScore float64
	Wallet    uint
	Skin      Skin
	ShopSkin  Skin
	ShopCost  uint

	World World
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	score := g.score.Score()
	s := Snapshot{
		State:     g.state,
		Paused:    g.paused,
		ShopOpen:  g.shopOpen,
		Regime:    RegimeFor(score.Value, g.cfg.Scoring.FlipThreshold),
		Obstacles: append([]Obstacle(nil), g.obstacles.Obstacles()...),
		Coins:     append([]Coin(nil), g.coins.Coins()...),
		Score:     score,
		LastScore: g.lastScore,
		Wallet:    g.wallet.Coins,
		Skin:      g.skin,
		ShopSkin:  g.alternate,
		ShopCost:  g.cfg.Shop.Cost,
		World:     g.world(),
	}

	if p := g.player; p != nil {
		s.HasPlayer = true
		s.PlayerPos = p.Pos
		s.PlayerRotation = p.Rotation()
		s.PlayerFlipped = p.Flipped
		s.PlayerOnGround = p.OnGround
	}
	return s
}

func (g *Game) world() World {
	maxX := g.cfg.Obstacles.SpawnMaxX + g.cfg.Obstacles.Width
	if coinMax := g.cfg.Coins.SpawnMaxX; coinMax > maxX {
		maxX = coinMax
	}
	return World{
		GroundY:      g.cfg.Physics.GroundY,
		CeilingY:     g.cfg.Physics.CeilingY,
		MinX:         g.cfg.Obstacles.CullX,
		MaxX:         maxX,
		PlayerSize:   core.V(g.cfg.Player.Width, g.cfg.Player.Height),
		ObstacleSize: core.V(g.cfg.Obstacles.Width, g.cfg.Obstacles.Height),
		CoinRadius:   g.cfg.Coins.PickupRadius,
	}
}

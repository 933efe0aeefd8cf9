package game

import (
	"github.com/vovakirdan/flipdash/internal/config"
	"github.com/vovakirdan/flipdash/internal/core"
)

// ObstacleKind tells floor spikes from ceiling spikes.
type ObstacleKind int

const (
	ObstacleFloor ObstacleKind = iota
	ObstacleCeiling
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	if k == ObstacleCeiling {
		return "Ceiling"
	}
	return "Floor"
}

// Obstacle is a spike scrolling toward the player.
type Obstacle struct {
	Pos  core.Vec2
	Kind ObstacleKind
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect(cfg config.Obstacles) core.Rect {
	return core.RectAt(o.Pos, cfg.Width, cfg.Height)
}

// ObstacleSpawner handles spawning, movement, and removal of spikes.
type ObstacleSpawner struct {
	obstacles  []Obstacle
	timer      Timer
	rng        Rand
	cfg        config.Config
	difficulty *config.DifficultyManager
}

// NewObstacleSpawner creates a spawner with an armed timer.
func NewObstacleSpawner(cfg config.Config, rng Rand, diff *config.DifficultyManager) *ObstacleSpawner {
	s := &ObstacleSpawner{
		obstacles:  make([]Obstacle, 0, 8),
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
	}
	s.Reset()
	return s
}

// UpdateConfig swaps the tuning used by the next Reset.
func (s *ObstacleSpawner) UpdateConfig(cfg config.Config, diff *config.DifficultyManager) {
	s.cfg = cfg
	s.difficulty = diff
}

// Reset clears all obstacles and restarts the spawn timer.
func (s *ObstacleSpawner) Reset() {
	s.Clear()
	s.timer.Reset(s.cfg.Obstacles.InitialInterval)
}

// Clear despawns every obstacle without touching the timer.
func (s *ObstacleSpawner) Clear() {
	s.obstacles = s.obstacles[:0]
}

// Update advances the spawn timer, spawns on fire, then scrolls and culls.
// score is the tick's score snapshot and level its difficulty multiplier.
func (s *ObstacleSpawner) Update(dt, score, level float64) {
	if s.timer.Tick(dt) {
		s.spawn(score, level)
	}

	o := s.cfg.Obstacles
	for i := range s.obstacles {
		s.obstacles[i].Pos.X += o.Speed * dt
	}

	kept := s.obstacles[:0]
	for _, ob := range s.obstacles {
		if ob.Pos.X >= o.CullX {
			kept = append(kept, ob)
		}
	}
	s.obstacles = kept
}

// spawn emits a floor spike and, past the flip threshold, a ceiling spike
// at an independently drawn x. It also schedules the next fire.
func (s *ObstacleSpawner) spawn(score, level float64) {
	o := s.cfg.Obstacles
	base := s.rng.Range(o.MinSpawnTime, o.MaxSpawnTime)
	s.timer.SetDuration(s.difficulty.SpawnInterval(base, level))

	floorX := s.rng.Range(o.SpawnMinX, o.SpawnMaxX)
	ceilingX := s.rng.Range(o.SpawnMinX, o.SpawnMaxX)

	s.obstacles = append(s.obstacles, Obstacle{
		Pos:  core.V(floorX, s.cfg.Physics.GroundY),
		Kind: ObstacleFloor,
	})
	if score >= s.cfg.Scoring.FlipThreshold {
		s.obstacles = append(s.obstacles, Obstacle{
			Pos:  core.V(ceilingX, s.cfg.Physics.CeilingY),
			Kind: ObstacleCeiling,
		})
	}
}

// Obstacles returns the live obstacles. The slice is owned by the spawner.
func (s *ObstacleSpawner) Obstacles() []Obstacle {
	return s.obstacles
}

// Interval returns the current spawn period.
func (s *ObstacleSpawner) Interval() float64 {
	return s.timer.Duration()
}

// FirstHit returns the index of the first obstacle overlapping the player box.
func (s *ObstacleSpawner) FirstHit(player core.Rect) (int, bool) {
	return FirstHit(player, s.obstacles, s.cfg.Obstacles)
}

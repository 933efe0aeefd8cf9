// Package config provides YAML-based tuning for the runner simulation:
// physics constants, spawner parameters, scoring thresholds and the shop.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flipdash/internal/core"
)

// Config contains all tunable parameters of the simulation.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Coins     Coins     `yaml:"coins"`
	Scoring   Scoring   `yaml:"scoring"`
	Shop      Shop      `yaml:"shop"`
}

// Physics defines the world's vertical physics. Units are world units
// and seconds; Y points up.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Acceleration in the normal regime (negative = down)
	JumpVelocity float64 `yaml:"jump_velocity"` // Upward impulse on jump
	FlipSpeed    float64 `yaml:"flip_speed"`    // Travel speed between floor and ceiling
	GroundY      float64 `yaml:"ground_y"`
	CeilingY     float64 `yaml:"ceiling_y"`
}

// Player defines the player's fixed horizontal position and hitbox.
type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Obstacles defines spike spawning and scrolling.
type Obstacles struct {
	Speed           float64 `yaml:"speed"` // Horizontal velocity shared by spikes and coins
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	InitialInterval float64 `yaml:"initial_interval"` // First spawn delay of a run
	MinSpawnTime    float64 `yaml:"min_spawn_time"`
	MaxSpawnTime    float64 `yaml:"max_spawn_time"`
	MinInterval     float64 `yaml:"min_interval"` // Floor for the difficulty-scaled interval
	SpawnMinX       float64 `yaml:"spawn_min_x"`
	SpawnMaxX       float64 `yaml:"spawn_max_x"`
	CullX           float64 `yaml:"cull_x"` // Entities left of this are removed
}

// Coins defines coin spawning and pickup.
type Coins struct {
	Interval     float64 `yaml:"interval"`
	SpawnMinX    float64 `yaml:"spawn_min_x"`
	SpawnMaxX    float64 `yaml:"spawn_max_x"`
	Y            float64 `yaml:"y"`
	PickupRadius float64 `yaml:"pickup_radius"`
}

// Scoring defines score accumulation and the thresholds it unlocks.
type Scoring struct {
	Rate              float64 `yaml:"rate"`               // Points per second while running
	DifficultyDivisor float64 `yaml:"difficulty_divisor"` // difficulty = 1 + score/divisor
	FlipThreshold     float64 `yaml:"flip_threshold"`     // Score at which the flip regime and ceiling spikes start
	CoinThreshold     float64 `yaml:"coin_threshold"`     // Score at which coins start to appear
}

// Shop defines the purchasable skin.
type Shop struct {
	Cost         uint       `yaml:"cost"`
	DefaultSkin  SkinConfig `yaml:"default_skin"`
	PurchaseSkin SkinConfig `yaml:"purchase_skin"`
}

// SkinConfig names a skin and its color (SVG name or hex triplet).
type SkinConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. The empty string keeps the
// loaded config unchanged.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts the base spawn window for a preset.
// The difficulty curve itself is left alone.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.MinSpawnTime = 1.5
		cfg.Obstacles.MaxSpawnTime = 3.5
	case DifficultyNormal:
		cfg.Obstacles.MinSpawnTime = 1.0
		cfg.Obstacles.MaxSpawnTime = 3.0
	case DifficultyHard:
		cfg.Obstacles.MinSpawnTime = 0.8
		cfg.Obstacles.MaxSpawnTime = 2.2
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the config describes a playable game.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Physics.Gravity < 0, "physics.gravity must be negative, got %v", c.Physics.Gravity)
	check(c.Physics.JumpVelocity > 0, "physics.jump_velocity must be positive, got %v", c.Physics.JumpVelocity)
	check(c.Physics.FlipSpeed > 0, "physics.flip_speed must be positive, got %v", c.Physics.FlipSpeed)
	check(c.Physics.CeilingY > c.Physics.GroundY, "physics.ceiling_y must be above ground_y")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Obstacles.Speed < 0, "obstacles.speed must be negative (leftward), got %v", c.Obstacles.Speed)
	check(c.Obstacles.Width > 0 && c.Obstacles.Height > 0, "obstacle size must be positive")
	check(c.Obstacles.InitialInterval > 0, "obstacles.initial_interval must be positive")
	check(c.Obstacles.MinSpawnTime > 0, "obstacles.min_spawn_time must be positive")
	check(c.Obstacles.MaxSpawnTime >= c.Obstacles.MinSpawnTime, "obstacles.max_spawn_time must not be below min_spawn_time")
	check(c.Obstacles.MinInterval > 0, "obstacles.min_interval must be positive")
	check(c.Obstacles.SpawnMaxX >= c.Obstacles.SpawnMinX, "obstacles spawn range is inverted")
	check(c.Obstacles.CullX < c.Obstacles.SpawnMinX, "obstacles.cull_x must be left of the spawn range")
	check(c.Coins.Interval > 0, "coins.interval must be positive")
	check(c.Coins.SpawnMaxX >= c.Coins.SpawnMinX, "coins spawn range is inverted")
	check(c.Coins.PickupRadius > 0, "coins.pickup_radius must be positive")
	check(c.Scoring.Rate > 0, "scoring.rate must be positive")
	check(c.Scoring.DifficultyDivisor > 0, "scoring.difficulty_divisor must be positive")
	check(c.Shop.Cost > 0, "shop.cost must be positive")

	if _, err := core.ParseColor(c.Shop.DefaultSkin.Color); err != nil {
		errs = append(errs, fmt.Errorf("%w: shop.default_skin: %v", ErrInvalid, err))
	}
	if _, err := core.ParseColor(c.Shop.PurchaseSkin.Color); err != nil {
		errs = append(errs, fmt.Errorf("%w: shop.purchase_skin: %v", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

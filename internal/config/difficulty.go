package config

import "math"

// DifficultyManager derives the difficulty multiplier from the score and
// turns base spawn intervals into difficulty-scaled ones.
type DifficultyManager struct {
	divisor     float64
	minInterval float64
}

// NewDifficultyManager creates a difficulty manager from the config.
func NewDifficultyManager(cfg Config) *DifficultyManager {
	divisor := cfg.Scoring.DifficultyDivisor
	if divisor <= 0 {
		divisor = 1 // Prevent division by zero
	}
	return &DifficultyManager{
		divisor:     divisor,
		minInterval: cfg.Obstacles.MinInterval,
	}
}

// Level returns the difficulty multiplier for a score: 1 + score/divisor,
// never below 1.
func (d *DifficultyManager) Level(score float64) float64 {
	if math.IsNaN(score) {
		return 1.0
	}
	return math.Max(1.0, 1.0+score/d.divisor)
}

// SpawnInterval scales a base interval down by the difficulty level and
// floors it at the configured minimum.
func (d *DifficultyManager) SpawnInterval(base, level float64) float64 {
	if level < 1.0 {
		level = 1.0
	}
	return math.Max(d.minInterval, base/level)
}

package game

import "github.com/vovakirdan/flipdash/internal/config"

// Score is the run's accumulated score and the difficulty derived from it.
type Score struct {
	Value      float64
	Difficulty float64
}

// ScoreTracker accumulates score over running time.
type ScoreTracker struct {
	score      Score
	rate       float64
	difficulty *config.DifficultyManager
}

// NewScoreTracker creates a tracker at zero.
func NewScoreTracker(rate float64, diff *config.DifficultyManager) *ScoreTracker {
	t := &ScoreTracker{rate: rate, difficulty: diff}
	t.Reset()
	return t
}

// Advance adds dt seconds of running time.
func (t *ScoreTracker) Advance(dt float64) {
	t.set(t.score.Value + dt*t.rate)
}

// Reset sets the score back to zero and difficulty to 1.
func (t *ScoreTracker) Reset() {
	t.set(0)
}

// Score returns the current score.
func (t *ScoreTracker) Score() Score {
	return t.score
}

func (t *ScoreTracker) set(v float64) {
	t.score = Score{Value: v, Difficulty: t.difficulty.Level(v)}
}

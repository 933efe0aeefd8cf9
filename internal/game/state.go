// Package game implements the Flip Dash simulation: a side-scrolling runner
// where the player jumps over floor spikes and, once the score passes the
// flip threshold, flips between floor and ceiling while collecting coins.
//
// The package is pure simulation. Time, input, randomness and rendering are
// supplied by the caller; Game.Step advances one tick and Game.Snapshot
// exposes read-only state for a render sink.
package game

import "math"

// State is the top-level game state.
type State int

const (
	StateMenu     State = iota // Title screen, waiting for play
	StateRunning               // A run is in progress
	StateGameOver              // The player hit a spike; waiting for restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateRunning:
		return "Running"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Regime selects the player physics mode.
type Regime int

const (
	RegimeNormal Regime = iota // Gravity and jumping
	RegimeFlip                 // Toggle between floor and ceiling
)

// String returns a human-readable name for the regime.
func (r Regime) String() string {
	if r == RegimeFlip {
		return "Flip"
	}
	return "Normal"
}

// RegimeFor returns the regime for a score snapshot. There is no
// hysteresis: the regime is a pure function of the score.
func RegimeFor(score, flipThreshold float64) Regime {
	if score < flipThreshold {
		return RegimeNormal
	}
	return RegimeFlip
}

// SanitizeDelta turns an unusable tick duration (negative, NaN or infinite)
// into zero so a bad clock reading freezes one tick instead of corrupting state.
func SanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}

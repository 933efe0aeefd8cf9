package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/flipdash/internal/config"
	"github.com/vovakirdan/flipdash/internal/core"
)

const (
	eps = 1e-9
	dt  = 1.0 / 60.0
)

// fixedRand always returns the same point of the requested range.
type fixedRand struct {
	frac float64
}

func (r fixedRand) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.frac*(hi-lo)
}

func (fixedRand) Seed(int64) {}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// newRunningGame returns a game that has just left the menu. Spawns land
// at the far right of their windows.
func newRunningGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultConfig(), fixedRand{frac: 0.999}, nil)
	if res := g.Step(dt, frame(core.ActionConfirm)); res.State != StateRunning {
		t.Fatalf("play from menu: state = %s, want Running", res.State)
	}
	return g
}

func hasEvent(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

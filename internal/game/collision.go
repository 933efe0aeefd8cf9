package game

import (
	"github.com/vovakirdan/flipdash/internal/config"
	"github.com/vovakirdan/flipdash/internal/core"
)

// Collides reports whether two boxes overlap. Boxes sharing only an edge
// do not collide.
func Collides(a, b core.Rect) bool {
	return a.Intersects(b)
}

// FirstHit scans obstacles in order and stops at the first one overlapping
// the player box.
func FirstHit(player core.Rect, obstacles []Obstacle, cfg config.Obstacles) (int, bool) {
	for i, ob := range obstacles {
		if Collides(player, ob.Rect(cfg)) {
			return i, true
		}
	}
	return -1, false
}

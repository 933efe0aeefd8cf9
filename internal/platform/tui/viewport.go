package tui

import (
	"math"

	"github.com/vovakirdan/flipdash/internal/game"
)

// Rows reserved outside the playfield.
const (
	hudRows    = 1 // Score line at the top
	footerRows = 1 // Key hints at the bottom
)

// Viewport maps world units onto terminal cells. World Y points up, screen
// rows grow down; the ceiling line and the floor line frame the playfield.
type Viewport struct {
	width, height int
	world         game.World
}

// NewViewport creates a viewport for a screen of the given size.
func NewViewport(width, height int, world game.World) Viewport {
	return Viewport{width: width, height: height, world: world}
}

// CeilingRow is the row of the ceiling line.
func (v Viewport) CeilingRow() int {
	return hudRows
}

// FloorRow is the row of the floor line.
func (v Viewport) FloorRow() int {
	return v.height - footerRows - 1
}

// topRow and groundRow bound where entities are drawn.
func (v Viewport) topRow() int    { return v.CeilingRow() + 1 }
func (v Viewport) groundRow() int { return v.FloorRow() - 1 }

// Col maps a world x to a screen column.
func (v Viewport) Col(x float64) int {
	span := v.world.MaxX - v.world.MinX
	if span <= 0 || v.width <= 1 {
		return 0
	}
	return int(math.Round((x - v.world.MinX) / span * float64(v.width-1)))
}

// Row maps a world y to a screen row: GroundY lands on the row above the
// floor line and CeilingY on the row below the ceiling line.
func (v Viewport) Row(y float64) int {
	span := v.world.CeilingY - v.world.GroundY
	rows := v.groundRow() - v.topRow()
	if span <= 0 || rows <= 0 {
		return v.groundRow()
	}
	frac := (y - v.world.GroundY) / span
	return v.groundRow() - int(math.Round(frac*float64(rows)))
}

// Cols returns how many columns a world width covers, at least one.
func (v Viewport) Cols(w float64) int {
	span := v.world.MaxX - v.world.MinX
	if span <= 0 {
		return 1
	}
	n := int(math.Round(w / span * float64(v.width-1)))
	if n < 1 {
		return 1
	}
	return n
}

package game

import (
	"math"

	"github.com/vovakirdan/flipdash/internal/config"
	"github.com/vovakirdan/flipdash/internal/core"
)

// Player is the runner controlled by the jump input. Its X never changes.
type Player struct {
	Pos      core.Vec2
	Velocity float64 // Vertical velocity, normal regime only
	OnGround bool
	Flipped  bool // Flip regime: heading to (or resting on) the ceiling
}

// newPlayer spawns a player standing on the ground.
func newPlayer(cfg config.Config) *Player {
	return &Player{
		Pos:      core.V(cfg.Player.X, cfg.Physics.GroundY),
		OnGround: true,
	}
}

// Rotation returns the player's visual rotation in radians: a half turn
// while flipped.
func (p *Player) Rotation() float64 {
	if p.Flipped {
		return math.Pi
	}
	return 0
}

// Rect returns the player's collision box.
func (p *Player) Rect(cfg config.Player) core.Rect {
	return core.RectAt(p.Pos, cfg.Width, cfg.Height)
}

// update advances the player one tick. The regime comes from the score
// snapshot the caller took for this tick.
func (p *Player) update(phys config.Physics, regime Regime, jump bool, dt float64) {
	if regime == RegimeFlip {
		p.stepFlip(phys, jump, dt)
		return
	}
	p.stepNormal(phys, jump, dt)
}

// stepNormal is plain projectile motion with a ground clamp.
func (p *Player) stepNormal(phys config.Physics, jump bool, dt float64) {
	if jump && p.OnGround {
		p.Velocity = phys.JumpVelocity
		p.OnGround = false
	}

	p.Velocity += phys.Gravity * dt
	p.Pos.Y += p.Velocity * dt

	if p.Pos.Y <= phys.GroundY {
		p.Pos.Y = phys.GroundY
		p.Velocity = 0
		p.OnGround = true
	}
}

// stepFlip moves the player toward the floor or the ceiling at a fixed
// speed, snapping once the target is within one tick of travel.
func (p *Player) stepFlip(phys config.Physics, jump bool, dt float64) {
	p.Velocity = 0
	if jump {
		p.Flipped = !p.Flipped
	}

	target := phys.GroundY
	if p.Flipped {
		target = phys.CeilingY
	}

	travel := phys.FlipSpeed * dt
	if math.Abs(p.Pos.Y-target) < travel {
		p.Pos.Y = target
	} else if p.Pos.Y < target {
		p.Pos.Y += travel
	} else {
		p.Pos.Y -= travel
	}

	// Resting on either surface counts as grounded for the renderer.
	p.OnGround = p.Pos.Y == target
}

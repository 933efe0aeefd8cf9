package core

// RuntimeConfig contains configuration the platform passes to the game host.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Normalized returns a copy with unusable values replaced by defaults:
// non-positive tick rates and screens too small to draw a playfield.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.ScreenW < 20 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH < 8 {
		c.ScreenH = def.ScreenH
	}
	return c
}

package config

import (
	_ "embed"
)

//go:embed defaults/flipdash.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in tuning. It mirrors defaults/flipdash.yaml
// and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:      -600.0,
			JumpVelocity: 300.0,
			FlipSpeed:    500.0,
			GroundY:      -240.0,
			CeilingY:     240.0,
		},
		Player: Player{
			X:      -200.0,
			Width:  30.0,
			Height: 30.0,
		},
		Obstacles: Obstacles{
			Speed:           -200.0,
			Width:           30.0,
			Height:          30.0,
			InitialInterval: 2.0,
			MinSpawnTime:    1.0,
			MaxSpawnTime:    3.0,
			MinInterval:     0.5,
			SpawnMinX:       350.0,
			SpawnMaxX:       450.0,
			CullX:           -400.0,
		},
		Coins: Coins{
			Interval:     2.0,
			SpawnMinX:    300.0,
			SpawnMaxX:    500.0,
			Y:            0.0,
			PickupRadius: 30.0,
		},
		Scoring: Scoring{
			Rate:              10.0,
			DifficultyDivisor: 500.0,
			FlipThreshold:     100.0,
			CoinThreshold:     100.0,
		},
		Shop: Shop{
			Cost:         1,
			DefaultSkin:  SkinConfig{Name: "Classic", Color: "white"},
			PurchaseSkin: SkinConfig{Name: "Green", Color: "#33cc33"},
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}

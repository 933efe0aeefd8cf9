package game

import "time"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventRunStarted EventKind = iota
	EventGameOver
	EventCoinCollected
	EventPurchase
	EventShopToggled
	EventPauseToggled
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "RunStarted"
	case EventGameOver:
		return "GameOver"
	case EventCoinCollected:
		return "CoinCollected"
	case EventPurchase:
		return "Purchase"
	case EventShopToggled:
		return "ShopToggled"
	case EventPauseToggled:
		return "PauseToggled"
	default:
		return "Unknown"
	}
}

// Event is a signal emitted by Step for the driver (HUD, logging, storage).
type Event struct {
	Kind EventKind
	// Score is the final score for EventGameOver, the current score otherwise.
	Score float64
	// Coins is the wallet balance after the event.
	Coins uint
	// Purchase is set for EventPurchase.
	Purchase PurchaseResult
	// RunTime and RunCoins describe the finished run for EventGameOver.
	RunTime  time.Duration
	RunCoins int
}

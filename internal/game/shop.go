package game

import (
	"github.com/vovakirdan/flipdash/internal/config"
	"github.com/vovakirdan/flipdash/internal/core"
)

// Wallet holds the coins collected during this process. It survives restarts.
type Wallet struct {
	Coins uint
}

// Credit adds n coins.
func (w *Wallet) Credit(n uint) {
	w.Coins += n
}

// Debit takes n coins if the wallet holds enough and reports success.
func (w *Wallet) Debit(n uint) bool {
	if w.Coins < n {
		return false
	}
	w.Coins -= n
	return true
}

// Skin is the player's cosmetic appearance.
type Skin struct {
	Name  string
	Color core.RGBA
}

// skinFrom builds a skin from config. Colors are validated at load time, so
// an unparsable color falls back to the terminal default.
func skinFrom(sc config.SkinConfig) Skin {
	c, err := core.ParseColor(sc.Color)
	if err != nil {
		c = core.ColorDefault
	}
	return Skin{Name: sc.Name, Color: c}
}

// PurchaseResult reports the outcome of a buy action.
type PurchaseResult int

const (
	PurchaseOK PurchaseResult = iota
	PurchaseInsufficientFunds
)

// String returns a human-readable name for the result.
func (r PurchaseResult) String() string {
	switch r {
	case PurchaseOK:
		return "OK"
	case PurchaseInsufficientFunds:
		return "InsufficientFunds"
	default:
		return "Unknown"
	}
}

// Buy charges cost and equips skin. With too few coins nothing changes.
func Buy(w *Wallet, current *Skin, skin Skin, cost uint) PurchaseResult {
	if !w.Debit(cost) {
		return PurchaseInsufficientFunds
	}
	*current = skin
	return PurchaseOK
}

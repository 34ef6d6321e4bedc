package game

import (
	"github.com/ratel-online/chaos/chaos/card"
)

// Playable reports whether candidate may be placed on top. Anything goes on an
// empty pile or on a power card; otherwise color or number must match.
func Playable(candidate card.NumberCard, top card.Card) bool {
	switch top := top.(type) {
	case nil:
		return true
	case card.PowerCard:
		return true
	case card.NumberCard:
		return candidate.Color() == top.Color() || candidate.Number() == top.Number()
	default:
		return false
	}
}

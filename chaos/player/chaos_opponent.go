package player

import (
	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/game"
)

// chaosOpponent plays the first matching number card. Without one it gambles
// on its power cards, each triggering with its own chance, and draws
// otherwise.
type chaosOpponent struct {
	basicOpponent
	random game.Random
}

func NewChaosOpponent(name string, random game.Random) game.Opponent {
	return chaosOpponent{basicOpponent: basicOpponent{name: name}, random: random}
}

func (o chaosOpponent) Choose(view game.OpponentView) game.Action {
	for _, c := range view.Hand {
		if numberCard, ok := c.(card.NumberCard); ok && game.Playable(numberCard, view.Top) {
			return game.PlayNumber(numberCard)
		}
	}
	for _, c := range view.Hand {
		if powerCard, ok := c.(card.PowerCard); ok && o.random.Float64() < powerCard.Power().Chance() {
			return game.PlayPower(powerCard)
		}
	}
	if view.DeckSize > 0 {
		return game.Draw()
	}
	return game.Pass()
}

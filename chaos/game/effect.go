package game

import (
	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/card/power"
)

const addUpAmount = 2

// applyPower runs the effect of a power card the opponent just discarded.
// New hands are computed first and committed together. It reports false when
// the effect had nothing to act on.
func (g *Game) applyPower(powerCard card.PowerCard) bool {
	switch powerCard.Power() {
	case power.Switch:
		playerNumbers := g.playerHand.NumberCards()
		opponentNumbers := g.opponentHand.NumberCards()
		opponentPowers := g.opponentHand.PowerCards()
		// Power cards the player picked up through add up stay in play
		// under the deck rather than following the swap.
		strayPowers := g.playerHand.PowerCards()

		g.playerHand.Replace(opponentNumbers)
		g.opponentHand.Replace(append(playerNumbers, opponentPowers...))
		for _, c := range strayPowers {
			g.deck.PushBottom(c)
		}
		return true
	case power.AddUp:
		if g.deck.Size() < addUpAmount {
			return false
		}
		drawn := g.deck.Draw(addUpAmount)
		g.playerHand.AddCards(drawn...)
		return true
	case power.ColorShuffle:
		g.playerHand.Replace(mapNumberCards(g.playerHand.Cards(), func(c card.NumberCard) card.NumberCard {
			return c.WithColor(color.All[g.random.Intn(len(color.All))])
		}))
		return true
	case power.NumberShuffle:
		g.playerHand.Replace(mapNumberCards(g.playerHand.Cards(), func(c card.NumberCard) card.NumberCard {
			return c.WithNumber(card.MinNumber + g.random.Intn(card.MaxNumber-card.MinNumber+1))
		}))
		return true
	default:
		return false
	}
}

func mapNumberCards(cards []card.Card, transform func(card.NumberCard) card.NumberCard) []card.Card {
	mapped := make([]card.Card, len(cards))
	for i, c := range cards {
		if numberCard, ok := c.(card.NumberCard); ok {
			mapped[i] = transform(numberCard)
		} else {
			mapped[i] = c
		}
	}
	return mapped
}

package game

import (
	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/card/power"
)

const (
	copiesPerNumber = 2
	UniverseSize    = 88
)

// NewUniverse builds the 88 cards of one game in a fixed order: colors, then
// numbers, two copies each, then every power type. IDs are fresh on each call.
func NewUniverse() []card.Card {
	cards := make([]card.Card, 0, UniverseSize)
	for _, cardColor := range color.All {
		cards = append(cards, createNumberCards(cardColor)...)
	}
	cards = append(cards, createPowerCards()...)
	return cards
}

func createNumberCards(cardColor color.Color) []card.Card {
	cards := make([]card.Card, 0, card.MaxNumber*copiesPerNumber)
	for number := card.MinNumber; number <= card.MaxNumber; number++ {
		for i := 0; i < copiesPerNumber; i++ {
			cards = append(cards, card.NewNumberCard(cardColor, number))
		}
	}
	return cards
}

func createPowerCards() []card.Card {
	var cards []card.Card
	for _, powerType := range power.Types {
		for i := 0; i < powerType.Config().Count; i++ {
			cards = append(cards, card.NewPowerCard(powerType))
		}
	}
	return cards
}

// Deck is the draw pile. The last element is the top: Pop and Draw remove
// from there, PushBottom inserts at the other end.
type Deck struct {
	cards []card.Card
}

func NewDeck(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy, bottom first.
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Pop() (card.Card, bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// Draw pops up to amount cards, topmost first.
func (d *Deck) Draw(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		c, ok := d.Pop()
		if !ok {
			break
		}
		cards = append(cards, c)
	}
	return cards
}

func (d *Deck) PushBottom(c card.Card) {
	d.cards = append([]card.Card{c}, d.cards...)
}

// TakeFirst removes the topmost card satisfying match.
func (d *Deck) TakeFirst(match func(card.Card) bool) (card.Card, bool) {
	for i := len(d.cards) - 1; i >= 0; i-- {
		if match(d.cards[i]) {
			found := d.cards[i]
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return found, true
		}
	}
	return nil, false
}

func isNumberCard(c card.Card) bool {
	_, ok := c.(card.NumberCard)
	return ok
}

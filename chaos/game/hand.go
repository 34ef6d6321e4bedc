package game

import (
	"github.com/ratel-online/chaos/chaos/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, HandSize)}
}

func (h *Hand) AddCards(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Get(id string) (card.Card, bool) {
	if i := card.IndexOf(h.cards, id); i >= 0 {
		return h.cards[i], true
	}
	return nil, false
}

// Remove takes the card out of the hand keeping the order of the rest.
func (h *Hand) Remove(id string) (card.Card, bool) {
	i := card.IndexOf(h.cards, id)
	if i < 0 {
		return nil, false
	}
	removed := h.cards[i]
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return removed, true
}

// Replace swaps the whole content of the hand.
func (h *Hand) Replace(cards []card.Card) {
	h.cards = make([]card.Card, len(cards))
	copy(h.cards, cards)
}

func (h *Hand) NumberCards() []card.Card {
	return filter(h.cards, isNumberCard)
}

func (h *Hand) PowerCards() []card.Card {
	return filter(h.cards, func(c card.Card) bool { return !isNumberCard(c) })
}

// PlayableCards returns the number cards that match top, in hand order.
func (h *Hand) PlayableCards(top card.Card) []card.NumberCard {
	var playable []card.NumberCard
	for _, candidate := range h.cards {
		if numberCard, ok := candidate.(card.NumberCard); ok && Playable(numberCard, top) {
			playable = append(playable, numberCard)
		}
	}
	return playable
}

func filter(cards []card.Card, keep func(card.Card) bool) []card.Card {
	kept := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

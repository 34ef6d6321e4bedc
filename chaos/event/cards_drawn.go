package event

import "github.com/ratel-online/chaos/chaos/card"

// CardsDrawnPayload carries the drawn cards only for the human player;
// Cards is nil when the opponent draws.
type CardsDrawnPayload struct {
	PlayerName string
	Opponent   bool
	Count      int
	Cards      []card.Card
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}

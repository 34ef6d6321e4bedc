package event

import "github.com/ratel-online/chaos/chaos/card"

type GameStartedPayload struct {
	Top          card.Card
	PlayerCards  int
	OpponentName string
}

type GameStartedListener interface {
	OnGameStarted(GameStartedPayload)
}

type gameStartedEmitter struct {
	listeners []GameStartedListener
}

func (e *gameStartedEmitter) AddListener(listener GameStartedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *gameStartedEmitter) Emit(payload GameStartedPayload) {
	for _, listener := range e.listeners {
		listener.OnGameStarted(payload)
	}
}

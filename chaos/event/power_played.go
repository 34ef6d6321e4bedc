package event

import "github.com/ratel-online/chaos/chaos/card"

type PowerPlayedPayload struct {
	PlayerName string
	Card       card.PowerCard
	// Effective is false when the effect moved no card (add up on a short deck).
	Effective bool
}

type PowerPlayedListener interface {
	OnPowerPlayed(PowerPlayedPayload)
}

type powerPlayedEmitter struct {
	listeners []PowerPlayedListener
}

func (e *powerPlayedEmitter) AddListener(listener PowerPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *powerPlayedEmitter) Emit(payload PowerPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnPowerPlayed(payload)
	}
}

package event

// Bus groups the emitters of one game. Each game owns its own bus so that
// concurrent tables never hear each other.
type Bus struct {
	GameStarted  *gameStartedEmitter
	CardPlayed   *cardPlayedEmitter
	PowerPlayed  *powerPlayedEmitter
	CardsDrawn   *cardsDrawnEmitter
	PlayerPassed *playerPassedEmitter
	GameOver     *gameOverEmitter
}

func NewBus() *Bus {
	return &Bus{
		GameStarted:  &gameStartedEmitter{},
		CardPlayed:   &cardPlayedEmitter{},
		PowerPlayed:  &powerPlayedEmitter{},
		CardsDrawn:   &cardsDrawnEmitter{},
		PlayerPassed: &playerPassedEmitter{},
		GameOver:     &gameOverEmitter{},
	}
}

// Subscribe registers the listener on every emitter whose listener interface
// it implements and reports how many emitters accepted it.
func (b *Bus) Subscribe(listener interface{}) int {
	subscribed := 0
	if l, ok := listener.(GameStartedListener); ok {
		b.GameStarted.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(PowerPlayedListener); ok {
		b.PowerPlayed.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(GameOverListener); ok {
		b.GameOver.AddListener(l)
		subscribed++
	}
	return subscribed
}

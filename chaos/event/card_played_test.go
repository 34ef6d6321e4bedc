package event_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/card/power"
	"github.com/ratel-online/chaos/chaos/event"
	"github.com/stretchr/testify/require"
)

func TestCardPlayed(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	bus.CardPlayed.AddListener(listenerOne)
	bus.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerName: "You",
			Card:       card.NewNumberCard(color.Blue, 7),
		},
		{
			PlayerName: "Jinx",
			Opponent:   true,
			Card:       card.NewNumberCard(color.Red, 3),
		},
	}

	for _, payload := range payloads {
		bus.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestPowerPlayed(t *testing.T) {
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.PowerPlayed.AddListener(listener)

	payload := event.PowerPlayedPayload{
		PlayerName: "Jinx",
		Card:       card.NewPowerCard(power.AddUp),
		Effective:  false,
	}
	bus.PowerPlayed.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())
}

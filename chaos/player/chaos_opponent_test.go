package player_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/card/power"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/chaos/player"
	"github.com/stretchr/testify/require"
)

func TestChoose(t *testing.T) {
	top := card.NewNumberCard(color.Red, 8)
	redThree := card.NewNumberCard(color.Red, 3)
	greenEight := card.NewNumberCard(color.Green, 8)
	blueFour := card.NewNumberCard(color.Blue, 4)
	switchCard := card.NewPowerCard(power.Switch)
	addUp := card.NewPowerCard(power.AddUp)

	scenarios := []struct {
		description string
		hand        []card.Card
		deckSize    int
		rolls       []float64
		expected    game.Action
	}{
		{
			description: "first_playable_number_card_in_hand_order",
			hand:        []card.Card{blueFour, switchCard, greenEight, redThree},
			deckSize:    10,
			rolls:       []float64{0},
			expected:    game.PlayNumber(greenEight),
		},
		{
			description: "power_card_triggers_below_its_chance",
			hand:        []card.Card{blueFour, switchCard},
			deckSize:    10,
			rolls:       []float64{0.2},
			expected:    game.PlayPower(switchCard),
		},
		{
			description: "power_cards_are_rolled_in_hand_order",
			hand:        []card.Card{addUp, switchCard},
			deckSize:    10,
			rolls:       []float64{0.2},
			expected:    game.PlayPower(switchCard),
		},
		{
			description: "no_match_no_trigger_draws",
			hand:        []card.Card{blueFour, switchCard, addUp},
			deckSize:    10,
			rolls:       []float64{0.99},
			expected:    game.Draw(),
		},
		{
			description: "no_match_no_trigger_empty_deck_passes",
			hand:        []card.Card{blueFour},
			deckSize:    0,
			rolls:       []float64{0.99},
			expected:    game.Pass(),
		},
		{
			description: "empty_hand_draws",
			hand:        nil,
			deckSize:    1,
			expected:    game.Draw(),
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			opponent := player.NewChaosOpponent("Jinx", game.NewScriptedRandom(nil, scenario.rolls))
			action := opponent.Choose(game.OpponentView{
				Hand:     scenario.hand,
				Top:      top,
				DeckSize: scenario.deckSize,
			})
			require.Equal(t, scenario.expected, action)
		})
	}
}

func TestChooseAfterPowerOnTop(t *testing.T) {
	opponent := player.NewChaosOpponent("Jinx", game.NewScriptedRandom(nil, []float64{0.99}))
	blueFour := card.NewNumberCard(color.Blue, 4)

	action := opponent.Choose(game.OpponentView{
		Hand:     []card.Card{card.NewPowerCard(power.ColorShuffle), blueFour},
		Top:      card.NewPowerCard(power.Switch),
		DeckSize: 3,
	})
	require.Equal(t, game.PlayNumber(blueFour), action)
}

func TestNewOpponent(t *testing.T) {
	opponent := player.NewOpponent(game.NewScriptedRandom([]int{9}, nil))
	require.Equal(t, "Jinx", opponent.Name())
}

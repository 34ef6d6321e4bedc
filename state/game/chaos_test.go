package game

import (
	"testing"
	"time"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/chaos/player"
	"github.com/ratel-online/chaos/chaos/table"
	"github.com/ratel-online/chaos/consts"
	"github.com/stretchr/testify/require"
)

func TestHandleInput(t *testing.T) {
	redOne := card.NewNumberCard(color.Red, 1)
	blueSix := card.NewNumberCard(color.Blue, 6)
	newTable := func() *table.Table {
		random := game.NewScriptedRandom(nil, []float64{0.99})
		g := game.Load(game.State{
			Started:      true,
			PlayerHand:   []card.Card{redOne, blueSix},
			OpponentHand: []card.Card{card.NewNumberCard(color.Green, 3)},
			Deck:         []card.Card{card.NewNumberCard(color.Yellow, 4)},
			Discard:      []card.Card{card.NewNumberCard(color.Red, 8)},
		}, player.NewChaosOpponent("Jinx", random), game.WithRandom(random))
		return table.New("test", g, time.Hour)
	}
	labels := map[string]string{"A": redOne.ID(), "B": blueSix.ID()}

	scenarios := []struct {
		description string
		input       string
		expected    error
		phase       game.Phase
	}{
		{description: "play_by_lowercase_label", input: "a", phase: game.PhaseOpponentTurn},
		{description: "play_by_label", input: "A", phase: game.PhaseOpponentTurn},
		{description: "unplayable_card", input: "B", expected: game.ErrInvalidMove, phase: game.PhasePlayerTurn},
		{description: "draw", input: "draw", phase: game.PhaseOpponentTurn},
		{description: "draw_short", input: "D", phase: game.PhaseOpponentTurn},
		{description: "restart", input: "r", phase: game.PhasePlayerTurn},
		{description: "unknown_label", input: "Z", expected: consts.ErrorsInputInvalid, phase: game.PhasePlayerTurn},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			tbl := newTable()
			defer tbl.Close()
			err := handleInput(tbl, scenario.input, labels)
			if scenario.expected == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, scenario.expected)
			}
			require.Equal(t, scenario.phase, tbl.View().Phase)
		})
	}
}

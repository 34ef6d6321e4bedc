package game_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/card/power"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/stretchr/testify/require"
)

func TestNewUniverse(t *testing.T) {
	cards := game.NewUniverse()
	require.Len(t, cards, game.UniverseSize)

	t.Run("has_two_copies_of_each_color_and_number", func(t *testing.T) {
		counts := map[string]int{}
		for _, c := range cards {
			if numberCard, ok := c.(card.NumberCard); ok {
				counts[numberCard.Color().Name()+string(rune('0'+numberCard.Number()))]++
			}
		}
		require.Len(t, counts, 36)
		for key, count := range counts {
			require.Equal(t, 2, count, key)
		}
	})

	t.Run("has_four_cards_of_each_power", func(t *testing.T) {
		counts := map[power.Type]int{}
		for _, c := range cards {
			if powerCard, ok := c.(card.PowerCard); ok {
				counts[powerCard.Power()]++
			}
		}
		require.Equal(t, map[power.Type]int{
			power.Switch:        4,
			power.AddUp:         4,
			power.ColorShuffle:  4,
			power.NumberShuffle: 4,
		}, counts)
	})

	t.Run("ids_are_unique", func(t *testing.T) {
		ids := map[string]bool{}
		for _, c := range cards {
			ids[c.ID()] = true
		}
		require.Len(t, ids, game.UniverseSize)
	})

	t.Run("ids_are_fresh_on_each_call", func(t *testing.T) {
		require.NotEqual(t, cards[0].ID(), game.NewUniverse()[0].ID())
	})
}

func TestDeck(t *testing.T) {
	bottom := card.NewNumberCard(color.Red, 1)
	middle := card.NewPowerCard(power.Switch)
	top := card.NewNumberCard(color.Blue, 2)

	t.Run("pop_returns_the_top_card", func(t *testing.T) {
		deck := game.NewDeck([]card.Card{bottom, middle, top})
		popped, ok := deck.Pop()
		require.True(t, ok)
		require.Equal(t, top, popped)
		require.Equal(t, 2, deck.Size())
	})

	t.Run("pop_on_empty_deck_returns_nothing", func(t *testing.T) {
		deck := game.NewDeck(nil)
		popped, ok := deck.Pop()
		require.False(t, ok)
		require.Nil(t, popped)
		require.True(t, deck.Empty())
	})

	t.Run("draw_stops_when_the_deck_runs_out", func(t *testing.T) {
		deck := game.NewDeck([]card.Card{bottom, middle, top})
		require.Equal(t, []card.Card{top, middle, bottom}, deck.Draw(5))
		require.True(t, deck.Empty())
	})

	t.Run("draw_zero_returns_no_cards", func(t *testing.T) {
		deck := game.NewDeck([]card.Card{bottom})
		require.Empty(t, deck.Draw(0))
		require.Equal(t, 1, deck.Size())
	})

	t.Run("push_bottom_inserts_under_every_card", func(t *testing.T) {
		deck := game.NewDeck([]card.Card{middle, top})
		deck.PushBottom(bottom)
		require.Equal(t, []card.Card{bottom, middle, top}, deck.Cards())
	})

	t.Run("take_first_scans_from_the_top", func(t *testing.T) {
		other := card.NewNumberCard(color.Green, 3)
		deck := game.NewDeck([]card.Card{other, top, middle})
		taken, ok := deck.TakeFirst(func(c card.Card) bool {
			_, isNumber := c.(card.NumberCard)
			return isNumber
		})
		require.True(t, ok)
		require.Equal(t, top, taken)
		require.Equal(t, []card.Card{other, middle}, deck.Cards())
	})

	t.Run("take_first_without_match_leaves_deck_alone", func(t *testing.T) {
		deck := game.NewDeck([]card.Card{middle})
		taken, ok := deck.TakeFirst(func(card.Card) bool { return false })
		require.False(t, ok)
		require.Nil(t, taken)
		require.Equal(t, 1, deck.Size())
	})

	t.Run("cards_returns_a_copy", func(t *testing.T) {
		deck := game.NewDeck([]card.Card{bottom, top})
		cards := deck.Cards()
		cards[0] = middle
		require.Equal(t, []card.Card{bottom, top}, deck.Cards())
	})
}

package game_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/game"
	"github.com/stretchr/testify/require"
)

func TestShuffle(t *testing.T) {
	cards := game.NewUniverse()

	t.Run("keeps_every_card", func(t *testing.T) {
		shuffled := game.Shuffle(cards, game.NewRandom(42))
		require.ElementsMatch(t, cards, shuffled)
	})

	t.Run("does_not_touch_the_input", func(t *testing.T) {
		first := cards[0]
		game.Shuffle(cards, game.NewRandom(7))
		require.Equal(t, first, cards[0])
	})

	t.Run("same_seed_gives_same_order", func(t *testing.T) {
		require.Equal(t, game.Shuffle(cards, game.NewRandom(3)), game.Shuffle(cards, game.NewRandom(3)))
	})

	t.Run("empty_input", func(t *testing.T) {
		require.Empty(t, game.Shuffle(nil, game.NewRandom(1)))
	})
}

func TestScriptedRandom(t *testing.T) {
	random := game.NewScriptedRandom([]int{5, -3}, []float64{0.5})
	require.Equal(t, 1, random.Intn(4))
	require.Equal(t, 3, random.Intn(10))
	require.Equal(t, 0, random.Intn(5))
	require.Equal(t, 0.5, random.Float64())
	require.Equal(t, 0.5, random.Float64())

	empty := game.NewScriptedRandom(nil, nil)
	require.Equal(t, 0, empty.Intn(9))
	require.Equal(t, 0.0, empty.Float64())
}

package game

import "github.com/ratel-online/chaos/chaos/card"

// Shuffle returns a uniformly random permutation of cards (Fisher-Yates).
// The input slice is left untouched.
func Shuffle(cards []card.Card, random Random) []card.Card {
	shuffled := make([]card.Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := random.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

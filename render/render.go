package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/chaos/msg"
	"github.com/ratel-online/chaos/database"
)

const faceDown = "[?]"

func Welcome(player *database.Player) error {
	return player.WriteString(fmt.Sprintf("Hi %s! %s", player.Name, msg.Message.Welcome()))
}

func HomeOptions(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString("1.Play\n")
	buf.WriteString("2.Rules\n")
	return player.WriteString(buf.String())
}

func Rules(player *database.Player) error {
	return player.WriteString(msg.Sprintlns([]string{
		"Each side starts with 5 cards, one card opens the discard pile.",
		"Play a number card matching the top card's color or number, or draw.",
		"You only ever draw number cards. Power cards belong to your opponent:",
		"  Switch         swaps your number cards with theirs",
		"  Add Up         makes you take the top 2 cards of the deck",
		"  Color Shuffle  repaints your number cards",
		"  Number Shuffle renumbers your number cards",
		"Empty your hand while the deck still has cards to win.",
	}))
}

// Card shows a card with its color spelled out for terminals without colors.
func Card(c card.Card) string {
	switch c := c.(type) {
	case card.NumberCard:
		return c.Color().Paintf("[%s %d]", c.Color().Name(), c.Number())
	case card.PowerCard:
		return c.String()
	case nil:
		return "[ ]"
	default:
		return c.String()
	}
}

// Board renders the view and returns the label assigned to each card in the
// player's hand.
func Board(view game.View) (string, map[string]string) {
	labels := map[string]string{}
	playable := map[string]bool{}
	for _, id := range view.Playable {
		playable[id] = true
	}

	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%s: %s (%d cards)\n", view.OpponentName, strings.Repeat(faceDown, view.OpponentHandCount), view.OpponentHandCount))
	buf.WriteString(fmt.Sprintf("Deck: %d cards\n", view.DeckCount))
	buf.WriteString(fmt.Sprintf("Top: %s\n", Card(view.Top)))
	buf.WriteString(fmt.Sprintf("Your cards (%d):\n", len(view.PlayerHand)))
	sequence := runeSequence{}
	for _, c := range view.PlayerHand {
		label := string(sequence.next())
		labels[label] = c.ID()
		mark := ""
		if playable[c.ID()] {
			mark = " *"
		}
		buf.WriteString(fmt.Sprintf("  %s %s%s\n", label, Card(c), mark))
	}
	if view.PlayerTurn() {
		buf.WriteString("Enter a card label to play it (* can be played), d to draw, r to restart, exit to leave\n")
	} else if view.GameOver {
		buf.WriteString("Game over. Enter r to play again, exit to leave\n")
	}
	return buf.String(), labels
}

func Game(player *database.Player, view game.View) (map[string]string, error) {
	board, labels := Board(view)
	return labels, player.WriteString(board)
}

package msg

import (
	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/card/power"
)

var Message = MessageWriter{}

type MessageWriter struct{}

var powerTitles = map[power.Type]string{
	power.Switch:        "Switch",
	power.AddUp:         "Add Up",
	power.ColorShuffle:  "Color Shuffle",
	power.NumberShuffle: "Number Shuffle",
}

func PowerTitle(t power.Type) string {
	if title, ok := powerTitles[t]; ok {
		return title
	}
	return t.String()
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s%s%s CARDS",
		color.Red.Paint("C"),
		color.Yellow.Paint("H"),
		color.Green.Paint("A"),
		color.Blue.Paint("O"),
		color.Red.Paint("S"),
	)
}

func (m MessageWriter) GameStarted(top card.Card) string {
	return Sprintlns([]string{
		"Game started. Your turn.",
		"First card is " + top.String(),
	})
}

func (m MessageWriter) PlayerDrewCard(drawn card.Card, opponentName string) string {
	return Sprintfln("You drew %s. %s's turn.", drawn, opponentName)
}

func (m MessageWriter) PlayerHasNothingToDraw(opponentName string) string {
	return Sprintfln("No more number cards to draw! %s's turn.", opponentName)
}

func (m MessageWriter) PlayerPlayedCard(played card.Card, opponentName string) string {
	return Sprintfln("You played %s. %s's turn.", played, opponentName)
}

func (m MessageWriter) InvalidMove() string {
	return Sprintln("Invalid move. Try another card or draw.")
}

func (m MessageWriter) NotYourTurn(opponentName string) string {
	return Sprintfln("Hold on, it's %s's turn.", opponentName)
}

func (m MessageWriter) OpponentThinking(opponentName string) string {
	return Sprintfln("%s is thinking...", opponentName)
}

func (m MessageWriter) OpponentPlayedCard(opponentName string, played card.Card) string {
	return Sprintfln("%s played %s. Your turn.", opponentName, played)
}

func (m MessageWriter) OpponentUsedPower(opponentName string, played card.PowerCard, effective bool) string {
	title := PowerTitle(played.Power())
	if !effective {
		return Sprintfln("%s used %s, but the deck ran dry. Your turn.", opponentName, title)
	}
	switch played.Power() {
	case power.Switch:
		return Sprintfln("%s used %s! Your number cards were swapped. Your turn.", opponentName, title)
	case power.AddUp:
		return Sprintfln("%s used %s! You draw 2 cards. Your turn.", opponentName, title)
	case power.ColorShuffle:
		return Sprintfln("%s used %s! Your card colors are randomized. Your turn.", opponentName, title)
	case power.NumberShuffle:
		return Sprintfln("%s used %s! Your card numbers are randomized. Your turn.", opponentName, title)
	}
	return Sprintfln("%s used %s! Your turn.", opponentName, title)
}

func (m MessageWriter) OpponentDrewCard(opponentName string) string {
	return Sprintfln("%s couldn't play and drew a card. Your turn.", opponentName)
}

func (m MessageWriter) OpponentPassed(opponentName string) string {
	return Sprintfln("%s couldn't play and deck is empty. Your turn.", opponentName)
}

func (m MessageWriter) PlayerWon() string {
	return Sprintln("You won! Congratulations!")
}

func (m MessageWriter) OpponentWon(opponentName string) string {
	return Sprintfln("%s won. Better luck next time!", opponentName)
}

package msg

import (
	"github.com/ratel-online/chaos/chaos/card/power"
)

// Lines the opponent says out loud.
const (
	LineGreeting    = "Let the Game begins, shall we?"
	LineYourMove    = "Your move"
	LinePlayerWon   = "Aww man.. I guess, you have won this time."
	LineOpponentWon = "Better get next tactic, Silly Darling."
)

var powerLines = map[power.Type]string{
	power.Switch:        "Hmph~",
	power.AddUp:         "Tallaloop~",
	power.ColorShuffle:  "Taste the rainbow just yet?",
	power.NumberShuffle: "Counting is exhausting...",
}

func PowerLine(t power.Type) string {
	return powerLines[t]
}

func (m MessageWriter) Say(opponentName, line string) string {
	if line == "" {
		return ""
	}
	return Sprintfln("%s: \"%s\"", opponentName, line)
}

package game

import (
	"fmt"

	"github.com/ratel-online/chaos/chaos/card"
)

type ActionKind int

const (
	ActionPass ActionKind = iota
	ActionDraw
	ActionPlayNumber
	ActionPlayPower
)

func (k ActionKind) String() string {
	switch k {
	case ActionPass:
		return "pass"
	case ActionDraw:
		return "draw"
	case ActionPlayNumber:
		return "play number"
	case ActionPlayPower:
		return "play power"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is what the opponent decided to do on its turn.
type Action struct {
	Kind ActionKind
	Card card.Card
	// Corrected is set by the engine when the chosen action was illegal and
	// got replaced by a draw or a pass.
	Corrected bool
}

func Pass() Action {
	return Action{Kind: ActionPass}
}

func Draw() Action {
	return Action{Kind: ActionDraw}
}

func PlayNumber(c card.NumberCard) Action {
	return Action{Kind: ActionPlayNumber, Card: c}
}

func PlayPower(c card.PowerCard) Action {
	return Action{Kind: ActionPlayPower, Card: c}
}

func (a Action) String() string {
	if a.Card == nil {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s %s", a.Kind, a.Card)
}

// OpponentView is everything the opponent may look at when deciding.
type OpponentView struct {
	Hand     []card.Card
	Top      card.Card
	DeckSize int
}

type Opponent interface {
	Name() string
	Choose(view OpponentView) Action
}

package game

import (
	"encoding/json"
	"fmt"

	"github.com/ratel-online/chaos/chaos/card"
)

type Turn int

const (
	TurnPlayer Turn = iota
	TurnOpponent
)

var turnNames = map[Turn]string{
	TurnPlayer:   "player",
	TurnOpponent: "opponent",
}

func (t Turn) String() string {
	if name, ok := turnNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Turn(%d)", int(t))
}

func (t Turn) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Turn) UnmarshalText(text []byte) error {
	for turn, name := range turnNames {
		if name == string(text) {
			*t = turn
			return nil
		}
	}
	return fmt.Errorf("invalid turn '%s'", text)
}

type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerOpponent
)

var winnerNames = map[Winner]string{
	WinnerNone:     "none",
	WinnerPlayer:   "player",
	WinnerOpponent: "opponent",
}

func (w Winner) String() string {
	if name, ok := winnerNames[w]; ok {
		return name
	}
	return fmt.Sprintf("Winner(%d)", int(w))
}

func (w Winner) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *Winner) UnmarshalText(text []byte) error {
	for winner, name := range winnerNames {
		if name == string(text) {
			*w = winner
			return nil
		}
	}
	return fmt.Errorf("invalid winner '%s'", text)
}

type Phase int

const (
	PhaseDealing Phase = iota
	PhasePlayerTurn
	PhaseOpponentTurn
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurn:
		return "playerTurn"
	case PhaseOpponentTurn:
		return "opponentTurn"
	case PhaseGameOver:
		return "gameOver"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// State is the complete snapshot of a game. It reveals the opponent's hand
// and the draw pile, so it is meant for tests and debugging only.
type State struct {
	Started      bool        `json:"started"`
	PlayerHand   []card.Card `json:"player_hand"`
	OpponentHand []card.Card `json:"opponent_hand"`
	Deck         []card.Card `json:"deck"`
	Discard      []card.Card `json:"discard"`
	Turn         Turn        `json:"turn"`
	GameOver     bool        `json:"game_over"`
	Winner       Winner      `json:"winner"`
}

func (s *State) UnmarshalJSON(data []byte) error {
	var raw struct {
		Started      bool            `json:"started"`
		PlayerHand   json.RawMessage `json:"player_hand"`
		OpponentHand json.RawMessage `json:"opponent_hand"`
		Deck         json.RawMessage `json:"deck"`
		Discard      json.RawMessage `json:"discard"`
		Turn         Turn            `json:"turn"`
		GameOver     bool            `json:"game_over"`
		Winner       Winner          `json:"winner"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded := State{
		Started:  raw.Started,
		Turn:     raw.Turn,
		GameOver: raw.GameOver,
		Winner:   raw.Winner,
	}
	for _, field := range []struct {
		raw  json.RawMessage
		dest *[]card.Card
	}{
		{raw.PlayerHand, &decoded.PlayerHand},
		{raw.OpponentHand, &decoded.OpponentHand},
		{raw.Deck, &decoded.Deck},
		{raw.Discard, &decoded.Discard},
	} {
		if len(field.raw) == 0 || string(field.raw) == "null" {
			continue
		}
		cards, err := card.UnmarshalSlice(field.raw)
		if err != nil {
			return err
		}
		*field.dest = cards
	}
	*s = decoded
	return nil
}

// View is what a presentation layer may show to the human player: the
// opponent's hand is reduced to a count.
type View struct {
	PlayerHand        []card.Card `json:"player_hand"`
	Playable          []string    `json:"playable"`
	OpponentName      string      `json:"opponent_name"`
	OpponentHandCount int         `json:"opponent_hand_count"`
	DeckCount         int         `json:"deck_count"`
	Top               card.Card   `json:"top"`
	Turn              Turn        `json:"turn"`
	Phase             Phase       `json:"phase"`
	GameOver          bool        `json:"game_over"`
	Winner            Winner      `json:"winner"`
}

func (v View) PlayerTurn() bool {
	return v.Phase == PhasePlayerTurn
}

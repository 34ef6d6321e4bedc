package card

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/chaos/card/power"
)

const (
	KindNumber = "number"
	KindPower  = "power"
)

// Card is either a NumberCard or a PowerCard. IDs are unique within one game.
type Card interface {
	ID() string
	Kind() string
	Equal(other Card) bool
	String() string
}

func newID() string {
	return uuid.New().String()
}

// wire is the JSON shape of a card, shared by both variants.
type wire struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Color  string `json:"color,omitempty"`
	Number int    `json:"number,omitempty"`
	Power  string `json:"power,omitempty"`
}

// Unmarshal decodes a single card previously encoded with json.Marshal.
func Unmarshal(data []byte) (Card, error) {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	if w.ID == "" {
		return nil, fmt.Errorf("card without id")
	}
	switch w.Type {
	case KindNumber:
		c, err := color.ByName(w.Color)
		if err != nil {
			return nil, err
		}
		if w.Number < MinNumber || w.Number > MaxNumber {
			return nil, fmt.Errorf("invalid number %d", w.Number)
		}
		return NumberCard{id: w.ID, color: c, number: w.Number}, nil
	case KindPower:
		p, err := power.ByName(w.Power)
		if err != nil {
			return nil, err
		}
		return PowerCard{id: w.ID, power: p}, nil
	default:
		return nil, fmt.Errorf("invalid card type '%s'", w.Type)
	}
}

// UnmarshalSlice decodes a JSON array of cards.
func UnmarshalSlice(data []byte) ([]Card, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	cards := make([]Card, 0, len(raws))
	for _, raw := range raws {
		c, err := Unmarshal(raw)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func Contains(cards []Card, searched Card) bool {
	return IndexOf(cards, searched.ID()) >= 0
}

func IndexOf(cards []Card, id string) int {
	for i, c := range cards {
		if c.ID() == id {
			return i
		}
	}
	return -1
}

func IDs(cards []Card) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID())
	}
	return ids
}

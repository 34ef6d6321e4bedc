package card

import (
	"encoding/json"

	"github.com/ratel-online/chaos/chaos/card/color"
)

const (
	MinNumber = 1
	MaxNumber = 9
)

type NumberCard struct {
	id     string
	color  color.Color
	number int
}

func NewNumberCard(color color.Color, number int) NumberCard {
	return NumberCard{
		id:     newID(),
		color:  color,
		number: number,
	}
}

func (c NumberCard) ID() string {
	return c.id
}

func (c NumberCard) Kind() string {
	return KindNumber
}

func (c NumberCard) Color() color.Color {
	return c.color
}

func (c NumberCard) Number() int {
	return c.number
}

// WithColor returns a copy of the card, same identity, painted another color.
func (c NumberCard) WithColor(color color.Color) NumberCard {
	c.color = color
	return c
}

// WithNumber returns a copy of the card, same identity, with another number.
func (c NumberCard) WithNumber(number int) NumberCard {
	c.number = number
	return c
}

func (c NumberCard) Equal(other Card) bool {
	return other != nil && c.id == other.ID()
}

func (c NumberCard) String() string {
	return c.color.Paintf("[%d]", c.number)
}

func (c NumberCard) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{
		ID:     c.id,
		Type:   KindNumber,
		Color:  c.color.Name(),
		Number: c.number,
	})
}

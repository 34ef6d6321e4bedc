package card

import (
	"encoding/json"
	"fmt"

	"github.com/ratel-online/chaos/chaos/card/power"
)

type PowerCard struct {
	id    string
	power power.Type
}

func NewPowerCard(power power.Type) PowerCard {
	return PowerCard{
		id:    newID(),
		power: power,
	}
}

func (c PowerCard) ID() string {
	return c.id
}

func (c PowerCard) Kind() string {
	return KindPower
}

func (c PowerCard) Power() power.Type {
	return c.power
}

func (c PowerCard) Equal(other Card) bool {
	return other != nil && c.id == other.ID()
}

func (c PowerCard) String() string {
	return fmt.Sprintf("<%s>", c.power)
}

func (c PowerCard) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{
		ID:    c.id,
		Type:  KindPower,
		Power: c.power.String(),
	})
}

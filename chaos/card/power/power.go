package power

import "fmt"

// Type is the special effect carried by a power card.
type Type int

const (
	Switch Type = iota
	AddUp
	ColorShuffle
	NumberShuffle
)

// Config is the trigger probability and the number of copies minted per deck.
type Config struct {
	Chance float64
	Count  int
}

// Types lists the power types in deck-building order.
var Types = []Type{Switch, AddUp, ColorShuffle, NumberShuffle}

var configs = map[Type]Config{
	Switch:        {Chance: 0.25, Count: 4},
	AddUp:         {Chance: 0.10, Count: 4},
	ColorShuffle:  {Chance: 0.05, Count: 4},
	NumberShuffle: {Chance: 0.05, Count: 4},
}

var names = map[Type]string{
	Switch:        "switch",
	AddUp:         "addUp",
	ColorShuffle:  "colorShuffle",
	NumberShuffle: "numberShuffle",
}

func (t Type) Config() Config {
	return configs[t]
}

func (t Type) Chance() float64 {
	return configs[t].Chance
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func ByName(name string) (Type, error) {
	for t, n := range names {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("invalid power '%s'", name)
}

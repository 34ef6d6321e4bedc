package player

type basicOpponent struct {
	name string
}

func (o basicOpponent) Name() string {
	return o.name
}

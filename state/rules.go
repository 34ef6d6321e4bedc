package state

import (
	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/chaos/database"
	"github.com/ratel-online/chaos/render"
)

type rules struct{}

func (*rules) Next(player *database.Player) (consts.StateID, error) {
	err := render.Rules(player)
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateHome, nil
}

func (*rules) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}

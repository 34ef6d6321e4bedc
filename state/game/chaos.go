package game

import (
	"strings"
	"time"

	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/chaos/msg"
	"github.com/ratel-online/chaos/chaos/table"
	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/chaos/database"
	"github.com/ratel-online/chaos/render"
	"github.com/ratel-online/core/log"
)

var playTimeout = consts.PlayTimeout

func SetPlayTimeout(timeout time.Duration) {
	playTimeout = timeout
}

type Chaos struct{}

func (g *Chaos) Next(player *database.Player) (consts.StateID, error) {
	tbl := database.GetTable(player.TableID)
	if tbl == nil {
		tbl = database.CreateTable(player.Name)
		player.TableID = tbl.ID
		database.Narrate(player, tbl, tbl.OpponentName())
		if err := tbl.Start(); err != nil {
			return 0, player.WriteError(consts.Translate(err))
		}
	}
	for {
		if tbl.Closed() {
			return 0, consts.ErrorsTableInvalid
		}
		view := tbl.View()
		if view.Phase == game.PhaseOpponentTurn {
			if err := waitForOpponent(player, tbl); err != nil {
				return 0, err
			}
			continue
		}
		labels, err := render.Game(player, view)
		if err != nil {
			return 0, player.WriteError(err)
		}
		input, err := player.AskForString(playTimeout)
		if err == consts.ErrorsTimeout && view.PlayerTurn() {
			log.Infof("player %s timed out, drawing for them\n", player)
			input = "d"
		} else if err != nil {
			_ = player.WriteError(err)
			return 0, err
		}
		if err := handleInput(tbl, strings.TrimSpace(input), labels); err != nil {
			_ = player.WriteError(consts.Translate(err))
		}
	}
}

func (g *Chaos) Exit(player *database.Player) consts.StateID {
	if player.TableID != "" {
		database.DeleteTable(player.TableID)
		player.TableID = ""
	}
	return consts.StateHome
}

func handleInput(tbl *table.Table, input string, labels map[string]string) error {
	switch strings.ToLower(input) {
	case "d", "draw":
		return tbl.PlayerDraw()
	case "r", "restart":
		return tbl.Start()
	}
	id, ok := labels[strings.ToUpper(input)]
	if !ok {
		return consts.ErrorsInputInvalid
	}
	return tbl.PlayerPlay(id)
}

// waitForOpponent blocks until the opponent has moved.
func waitForOpponent(player *database.Player, tbl *table.Table) error {
	_ = player.WriteString(msg.Message.OpponentThinking(tbl.OpponentName()))
	for tbl.View().Phase == game.PhaseOpponentTurn {
		select {
		case <-tbl.Updates():
		case <-time.After(consts.SettleTimeout):
			if tbl.Closed() {
				return consts.ErrorsTableInvalid
			}
		}
	}
	return nil
}

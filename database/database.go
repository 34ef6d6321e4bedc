package database

import (
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/chaos/player"
	"github.com/ratel-online/chaos/chaos/table"
	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/core/log"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
)

var players = hashmap.New()
var tables = hashmap.New()

var (
	thinkDelay = consts.ThinkDelay
	tableTTL   = consts.TableTTL
	random     = game.DefaultRandom()
	onCreate   []func(t *table.Table)
)

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			SweepTables(time.Now())
		}
	})
}

func SetThinkDelay(delay time.Duration) {
	thinkDelay = delay
}

func SetTableTTL(ttl time.Duration) {
	tableTTL = ttl
}

// OnTableCreated registers a hook run for every new table, before its first deal.
func OnTableCreated(hook func(t *table.Table)) {
	onCreate = append(onCreate, hook)
}

func Connected(conn *network.Conn, info *modelx.AuthInfo) *Player {
	p := &Player{
		ID:    info.ID,
		Name:  info.Name,
		Score: info.Score,
	}
	p.Conn(conn)
	players.Set(p.ID, p)
	return p
}

func GetPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

// CreateTable seats a fresh chaos opponent in front of playerName. The game
// is not dealt yet.
func CreateTable(playerName string) *table.Table {
	opponent := player.NewOpponent(random)
	g := game.New(opponent, game.WithRandom(random), game.WithPlayerName(playerName))
	t := table.New(uuid.New().String(), g, thinkDelay)
	for _, hook := range onCreate {
		hook(t)
	}
	tables.Set(t.ID, t)
	log.Infof("table %s created for %s\n", t.ID, playerName)
	return t
}

func GetTable(tableId string) *table.Table {
	if v, ok := tables.Get(tableId); ok {
		return v.(*table.Table)
	}
	return nil
}

func DeleteTable(tableId string) bool {
	t := GetTable(tableId)
	if t == nil {
		return false
	}
	t.Close()
	tables.Del(tableId)
	return true
}

func GetTables() []*table.Table {
	list := make([]*table.Table, 0)
	tables.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*table.Table))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// SweepTables removes tables closed or idle for longer than the table TTL and
// returns how many went away.
func SweepTables(now time.Time) int {
	removed := 0
	for _, t := range GetTables() {
		if t.Closed() || now.Sub(t.LastActive()) > tableTTL {
			log.Infof("table %s is not living, removed.\n", t.ID)
			DeleteTable(t.ID)
			removed++
		}
	}
	return removed
}

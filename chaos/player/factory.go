package player

import (
	"github.com/ratel-online/chaos/chaos/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// NewOpponent seats a chaos opponent with a random bot name.
func NewOpponent(random game.Random) game.Opponent {
	return NewChaosOpponent(botNames[random.Intn(len(botNames))], random)
}

package database

import (
	"github.com/ratel-online/chaos/chaos/event"
	"github.com/ratel-online/chaos/chaos/msg"
	"github.com/ratel-online/chaos/chaos/table"
)

// narrator tells a connected player what happens at their table.
type narrator struct {
	player   *Player
	opponent string
}

// Narrate subscribes p to every event of t.
func Narrate(p *Player, t *table.Table, opponentName string) {
	t.Bus().Subscribe(&narrator{player: p, opponent: opponentName})
}

func (n *narrator) write(lines ...string) {
	if !n.player.Online() {
		return
	}
	for _, line := range lines {
		if line != "" {
			_ = n.player.WriteString(line)
		}
	}
}

func (n *narrator) OnGameStarted(payload event.GameStartedPayload) {
	n.write(
		msg.Message.GameStarted(payload.Top),
		msg.Message.Say(n.opponent, msg.LineGreeting),
	)
}

func (n *narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.Opponent {
		n.write(
			msg.Message.OpponentPlayedCard(payload.PlayerName, payload.Card),
			msg.Message.Say(n.opponent, msg.LineYourMove),
		)
		return
	}
	n.write(msg.Message.PlayerPlayedCard(payload.Card, n.opponent))
}

func (n *narrator) OnPowerPlayed(payload event.PowerPlayedPayload) {
	lines := []string{msg.Message.OpponentUsedPower(payload.PlayerName, payload.Card, payload.Effective)}
	if payload.Effective {
		lines = append(lines, msg.Message.Say(n.opponent, msg.PowerLine(payload.Card.Power())))
	}
	n.write(lines...)
}

func (n *narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Opponent {
		n.write(msg.Message.OpponentDrewCard(payload.PlayerName))
		return
	}
	for _, drawn := range payload.Cards {
		n.write(msg.Message.PlayerDrewCard(drawn, n.opponent))
	}
}

func (n *narrator) OnPlayerPassed(payload event.PlayerPassedPayload) {
	if payload.Opponent {
		n.write(msg.Message.OpponentPassed(payload.PlayerName))
		return
	}
	n.write(msg.Message.PlayerHasNothingToDraw(n.opponent))
}

func (n *narrator) OnGameOver(payload event.GameOverPayload) {
	if payload.PlayerWon {
		n.write(msg.Message.PlayerWon(), msg.Message.Say(n.opponent, msg.LinePlayerWon))
		return
	}
	n.write(msg.Message.OpponentWon(payload.WinnerName), msg.Message.Say(n.opponent, msg.LineOpponentWon))
}

package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/ratel-online/chaos/chaos/event"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/chaos/msg"
	"github.com/ratel-online/chaos/chaos/table"
	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/chaos/database"
)

// GameSession is the agent's seat at one table.
type GameSession struct {
	table    *table.Table
	mu       sync.Mutex
	events   []string
	opponent string
}

// ToolResponse is the JSON returned by every tool.
type ToolResponse struct {
	Table  string    `json:"table"`
	View   game.View `json:"view"`
	Events []string  `json:"events"`
}

func NewGameSession(playerName string) (*GameSession, error) {
	tbl := database.CreateTable(playerName)
	sess := &GameSession{table: tbl, opponent: tbl.OpponentName()}
	tbl.Bus().Subscribe(sess)
	if err := tbl.Start(); err != nil {
		database.DeleteTable(tbl.ID)
		return nil, consts.Translate(err)
	}
	return sess, nil
}

func (s *GameSession) Close() {
	database.DeleteTable(s.table.ID)
}

// respond waits for the opponent and drains the events seen so far.
func (s *GameSession) respond(ctx context.Context) (*ToolResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, consts.SettleTimeout)
	defer cancel()
	if err := s.table.Settle(ctx); err != nil {
		return nil, err
	}
	return &ToolResponse{
		Table:  s.table.ID,
		View:   s.table.View(),
		Events: s.drainEvents(),
	}, nil
}

func (s *GameSession) drainEvents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	if events == nil {
		events = []string{}
	}
	return events
}

func (s *GameSession) record(lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, text := range lines {
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				s.events = append(s.events, line)
			}
		}
	}
}

func (s *GameSession) OnGameStarted(payload event.GameStartedPayload) {
	s.record(msg.Message.GameStarted(payload.Top), msg.Message.Say(s.opponent, msg.LineGreeting))
}

func (s *GameSession) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.Opponent {
		s.record(msg.Message.OpponentPlayedCard(payload.PlayerName, payload.Card))
		return
	}
	s.record(msg.Message.PlayerPlayedCard(payload.Card, s.opponent))
}

func (s *GameSession) OnPowerPlayed(payload event.PowerPlayedPayload) {
	s.record(msg.Message.OpponentUsedPower(payload.PlayerName, payload.Card, payload.Effective))
}

func (s *GameSession) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Opponent {
		s.record(msg.Message.OpponentDrewCard(payload.PlayerName))
		return
	}
	for _, drawn := range payload.Cards {
		s.record(msg.Message.PlayerDrewCard(drawn, s.opponent))
	}
}

func (s *GameSession) OnPlayerPassed(payload event.PlayerPassedPayload) {
	if payload.Opponent {
		s.record(msg.Message.OpponentPassed(payload.PlayerName))
		return
	}
	s.record(msg.Message.PlayerHasNothingToDraw(s.opponent))
}

func (s *GameSession) OnGameOver(payload event.GameOverPayload) {
	if payload.PlayerWon {
		s.record(msg.Message.PlayerWon())
		return
	}
	s.record(msg.Message.OpponentWon(payload.WinnerName))
}

func respondJSON(resp *ToolResponse) string {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return `{"error":"failed to encode response"}`
	}
	return string(data)
}

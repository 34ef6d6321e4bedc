package broker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/ratel-online/chaos/chaos/event"
	"github.com/ratel-online/chaos/chaos/table"
	"github.com/ratel-online/core/log"
)

// Conn is the part of a NATS connection the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
	Close()
}

// Publisher mirrors table events to NATS subjects.
type Publisher struct {
	conn Conn
}

type Event struct {
	Type    string      `json:"type"`
	Table   string      `json:"table"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload"`
}

func Connect(url string) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("chaos-server"),
		nats.Timeout(10 * time.Second),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(5),
	}
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}
	log.Infof("connected to NATS at %s\n", url)
	return NewPublisher(nc), nil
}

func NewPublisher(conn Conn) *Publisher {
	return &Publisher{conn: conn}
}

func Subject(tableID string) string {
	return fmt.Sprintf("chaos.tables.%s.events", tableID)
}

// Attach publishes every event of t from now on.
func (p *Publisher) Attach(t *table.Table) {
	t.Bus().Subscribe(&tableListener{publisher: p, tableID: t.ID})
}

func (p *Publisher) Close() {
	p.conn.Close()
}

func (p *Publisher) publish(tableID, eventType string, payload interface{}) {
	data, err := json.Marshal(Event{
		Type:    eventType,
		Table:   tableID,
		At:      time.Now(),
		Payload: payload,
	})
	if err != nil {
		log.Errorf("encode %s event of table %s: %v\n", eventType, tableID, err)
		return
	}
	if err := p.conn.Publish(Subject(tableID), data); err != nil {
		log.Errorf("publish %s event of table %s: %v\n", eventType, tableID, err)
	}
}

type tableListener struct {
	publisher *Publisher
	tableID   string
}

func (l *tableListener) OnGameStarted(payload event.GameStartedPayload) {
	l.publisher.publish(l.tableID, "gameStarted", payload)
}

func (l *tableListener) OnCardPlayed(payload event.CardPlayedPayload) {
	l.publisher.publish(l.tableID, "cardPlayed", payload)
}

func (l *tableListener) OnPowerPlayed(payload event.PowerPlayedPayload) {
	l.publisher.publish(l.tableID, "powerPlayed", payload)
}

func (l *tableListener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	l.publisher.publish(l.tableID, "cardsDrawn", payload)
}

func (l *tableListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	l.publisher.publish(l.tableID, "playerPassed", payload)
}

func (l *tableListener) OnGameOver(payload event.GameOverPayload) {
	l.publisher.publish(l.tableID, "gameOver", payload)
}

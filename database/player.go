package database

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
)

// writePacing keeps consecutive lines from arriving in one burst.
const writePacing = 30 * time.Millisecond

// Player is a connected text client. Input packets only reach the state
// machine while a question is open (between StartTransaction and StopTransaction).
type Player struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Score   int64  `json:"score"`
	TableID string `json:"tableId"`

	conn    *network.Conn
	inbox   chan *protocol.Packet
	asking  atomic.Bool
	state   consts.StateID
	offline atomic.Bool
}

func (p *Player) Conn(conn *network.Conn) {
	p.conn = conn
	p.inbox = make(chan *protocol.Packet, 8)
}

// Offline releases the player's table and forgets the player.
func (p *Player) Offline() {
	if !p.offline.CompareAndSwap(false, true) {
		return
	}
	if p.conn != nil {
		_ = p.conn.Close()
		close(p.inbox)
	}
	if p.TableID != "" {
		DeleteTable(p.TableID)
		p.TableID = ""
	}
	players.Del(p.ID)
	log.Infof("player %s left\n", p)
}

func (p *Player) Online() bool {
	return !p.offline.Load()
}

// Listening pumps packets off the connection until it fails. Packets sent
// while no question is open are dropped.
func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		if p.asking.Load() {
			p.inbox <- pack
		}
	}
}

func (p *Player) WriteString(data string) error {
	time.Sleep(writePacing)
	return p.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

// WriteError shows err to the client. ErrorsExist is handed back untouched
// so the state machine can leave.
func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return p.conn.Write(protocol.Packet{
		Body: []byte(strings.TrimSpace(err.Error()) + "\n"),
	})
}

func (p *Player) AskForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	p.StartTransaction()
	defer p.StopTransaction()

	var expired <-chan time.Time
	if len(timeout) > 0 {
		timer := time.NewTimer(timeout[0])
		defer timer.Stop()
		expired = timer.C
	}
	var packet *protocol.Packet
	select {
	case packet = <-p.inbox:
	case <-expired:
		return nil, consts.ErrorsTimeout
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	if strings.EqualFold(strings.TrimSpace(packet.String()), "exit") {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p *Player) AskForInt(timeout ...time.Duration) (int, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return 0, err
	}
	return packet.Int()
}

func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return packet.String(), nil
}

func (p *Player) StartTransaction() {
	p.asking.Store(true)
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	p.asking.Store(false)
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) State(s consts.StateID) {
	p.state = s
}

func (p *Player) GetState() consts.StateID {
	return p.state
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}

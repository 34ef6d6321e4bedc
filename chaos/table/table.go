package table

import (
	"context"
	"sync"
	"time"

	"github.com/ratel-online/chaos/chaos/event"
	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/core/log"
)

// Table hosts one game for a presentation layer. Callers are serialized and
// the opponent's turn runs after a thinking delay on its own timer. Bus
// listeners are called with the table locked and must not call back into it.
type Table struct {
	sync.Mutex

	ID string

	game       *game.Game
	delay      time.Duration
	generation uint64
	timer      *time.Timer
	idle       chan struct{}
	updates    chan struct{}
	lastActive time.Time
	closed     bool
}

func New(id string, g *game.Game, delay time.Duration) *Table {
	idle := make(chan struct{})
	close(idle)
	return &Table{
		ID:         id,
		game:       g,
		delay:      delay,
		idle:       idle,
		updates:    make(chan struct{}, 1),
		lastActive: time.Now(),
	}
}

// Start deals a new game. Any opponent turn still waiting is dropped, unless
// the deal fails and the running game carries on.
func (t *Table) Start() error {
	t.Lock()
	defer t.Unlock()
	if t.closed {
		return game.ErrIllegalTurn
	}
	t.lastActive = time.Now()
	if err := t.game.Start(); err != nil {
		log.Errorf("table %s deal failed: %v\n", t.ID, err)
		return err
	}
	t.cancel()
	log.Infof("table %s started against %s\n", t.ID, t.game.OpponentName())
	return nil
}

func (t *Table) PlayerDraw() error {
	t.Lock()
	defer t.Unlock()
	return t.act(t.game.PlayerDraw)
}

func (t *Table) PlayerPlay(id string) error {
	t.Lock()
	defer t.Unlock()
	return t.act(func() error {
		return t.game.PlayerPlay(id)
	})
}

func (t *Table) act(move func() error) error {
	if t.closed {
		return game.ErrIllegalTurn
	}
	t.lastActive = time.Now()
	if err := move(); err != nil {
		return err
	}
	t.schedule()
	return nil
}

func (t *Table) schedule() {
	if t.game.Phase() != game.PhaseOpponentTurn {
		return
	}
	t.generation++
	generation := t.generation
	if !t.pending() {
		t.idle = make(chan struct{})
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.opponentTurn(generation)
	})
}

func (t *Table) opponentTurn(generation uint64) {
	t.Lock()
	defer t.Unlock()
	if generation != t.generation || t.closed {
		return
	}
	defer t.settle()
	if t.game.Phase() != game.PhaseOpponentTurn {
		return
	}
	action, err := t.game.OpponentTurn()
	if err != nil {
		log.Errorf("table %s opponent turn: %v\n", t.ID, err)
		return
	}
	if action.Corrected {
		log.Infof("table %s: illegal opponent move replaced by %s\n", t.ID, action)
	}
	t.lastActive = time.Now()
	select {
	case t.updates <- struct{}{}:
	default:
	}
}

// cancel drops the scheduled opponent turn, if any.
func (t *Table) cancel() {
	t.generation++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.settle()
}

func (t *Table) settle() {
	t.timer = nil
	if t.pending() {
		close(t.idle)
	}
}

func (t *Table) pending() bool {
	select {
	case <-t.idle:
		return false
	default:
		return true
	}
}

// Settle blocks until no opponent turn is waiting to run.
func (t *Table) Settle(ctx context.Context) error {
	t.Lock()
	idle := t.idle
	t.Unlock()
	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Updates signals after each opponent move. Signals are coalesced.
func (t *Table) Updates() <-chan struct{} {
	return t.updates
}

func (t *Table) View() game.View {
	t.Lock()
	defer t.Unlock()
	return t.game.View()
}

func (t *Table) State() game.State {
	t.Lock()
	defer t.Unlock()
	return t.game.State()
}

func (t *Table) OpponentName() string {
	return t.game.OpponentName()
}

func (t *Table) Bus() *event.Bus {
	return t.game.Bus()
}

func (t *Table) LastActive() time.Time {
	t.Lock()
	defer t.Unlock()
	return t.lastActive
}

func (t *Table) Close() {
	t.Lock()
	defer t.Unlock()
	if t.closed {
		return
	}
	t.cancel()
	t.closed = true
	log.Infof("table %s closed\n", t.ID)
}

func (t *Table) Closed() bool {
	t.Lock()
	defer t.Unlock()
	return t.closed
}

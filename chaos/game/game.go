package game

import (
	"fmt"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/event"
)

const (
	HandSize          = 5
	DefaultPlayerName = "You"
)

// Game owns every piece of state of one match. It is not safe for concurrent
// use: the turn flag decides who may act, callers serialize access.
type Game struct {
	playerName string
	opponent   Opponent
	random     Random
	bus        *event.Bus
	universe   func() []card.Card

	started      bool
	playerHand   *Hand
	opponentHand *Hand
	deck         *Deck
	pile         *Pile
	turn         Turn
	over         bool
	winner       Winner
}

type Option func(*Game)

func WithRandom(random Random) Option {
	return func(g *Game) {
		g.random = random
	}
}

func WithBus(bus *event.Bus) Option {
	return func(g *Game) {
		g.bus = bus
	}
}

// WithUniverse replaces the card set built on every Start.
func WithUniverse(universe func() []card.Card) Option {
	return func(g *Game) {
		g.universe = universe
	}
}

func WithPlayerName(name string) Option {
	return func(g *Game) {
		g.playerName = name
	}
}

func New(opponent Opponent, options ...Option) *Game {
	g := &Game{
		playerName:   DefaultPlayerName,
		opponent:     opponent,
		random:       DefaultRandom(),
		bus:          event.NewBus(),
		universe:     NewUniverse,
		playerHand:   NewHand(),
		opponentHand: NewHand(),
		deck:         NewDeck(nil),
		pile:         NewPile(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// Load rebuilds a game from a snapshot taken with State.
func Load(state State, opponent Opponent, options ...Option) *Game {
	g := New(opponent, options...)
	g.started = state.Started
	g.playerHand.Replace(state.PlayerHand)
	g.opponentHand.Replace(state.OpponentHand)
	g.deck = NewDeck(state.Deck)
	for _, c := range state.Discard {
		g.pile.Add(c)
	}
	g.turn = state.Turn
	g.over = state.GameOver
	g.winner = state.Winner
	return g
}

func (g *Game) Bus() *event.Bus {
	return g.bus
}

func (g *Game) OpponentName() string {
	return g.opponent.Name()
}

// Start deals a brand new game. On failure the previous state is kept.
func (g *Game) Start() error {
	var numberCards, powerCards []card.Card
	for _, c := range g.universe() {
		if isNumberCard(c) {
			numberCards = append(numberCards, c)
		} else {
			powerCards = append(powerCards, c)
		}
	}
	numberCards = Shuffle(numberCards, g.random)
	powerCards = Shuffle(powerCards, g.random)

	if len(numberCards) < HandSize {
		return fmt.Errorf("%w: only %d number cards for the player", ErrDealFailure, len(numberCards))
	}
	playerHand := NewHand()
	playerHand.AddCards(numberCards[:HandSize]...)

	pool := make([]card.Card, 0, len(numberCards)-HandSize+len(powerCards))
	pool = append(pool, numberCards[HandSize:]...)
	pool = append(pool, powerCards...)
	deck := NewDeck(Shuffle(pool, g.random))

	if deck.Size() < HandSize {
		return fmt.Errorf("%w: only %d cards for the opponent", ErrDealFailure, deck.Size())
	}
	opponentHand := NewHand()
	opponentHand.AddCards(deck.Draw(HandSize)...)

	first, err := seedDiscard(deck)
	if err != nil {
		return err
	}
	pile := NewPile()
	pile.Add(first)

	g.started = true
	g.playerHand = playerHand
	g.opponentHand = opponentHand
	g.deck = deck
	g.pile = pile
	g.turn = TurnPlayer
	g.over = false
	g.winner = WinnerNone

	g.bus.GameStarted.Emit(event.GameStartedPayload{
		Top:          first,
		PlayerCards:  playerHand.Size(),
		OpponentName: g.opponent.Name(),
	})
	return nil
}

// seedDiscard pops until it finds a number card; power cards go back under
// the deck. Every card is looked at once at most.
func seedDiscard(deck *Deck) (card.Card, error) {
	for i, size := 0, deck.Size(); i < size; i++ {
		c, _ := deck.Pop()
		if isNumberCard(c) {
			return c, nil
		}
		deck.PushBottom(c)
	}
	return nil, fmt.Errorf("%w: no number card left for the discard pile", ErrDealFailure)
}

// PlayerDraw gives the player the topmost number card of the deck, if any,
// and passes the turn either way.
func (g *Game) PlayerDraw() error {
	if err := g.expectTurn(TurnPlayer); err != nil {
		return err
	}
	if drawn, ok := g.deck.TakeFirst(isNumberCard); ok {
		g.playerHand.AddCards(drawn)
		g.bus.CardsDrawn.Emit(event.CardsDrawnPayload{
			PlayerName: g.playerName,
			Count:      1,
			Cards:      []card.Card{drawn},
		})
	} else {
		g.bus.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: g.playerName})
	}
	g.endTurn(TurnOpponent)
	return nil
}

func (g *Game) PlayerPlay(id string) error {
	if err := g.expectTurn(TurnPlayer); err != nil {
		return err
	}
	held, ok := g.playerHand.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, id)
	}
	numberCard, ok := held.(card.NumberCard)
	if !ok {
		return fmt.Errorf("%w: power cards cannot be played from your hand", ErrInvalidMove)
	}
	if !Playable(numberCard, g.pile.Top()) {
		return fmt.Errorf("%w: %s %d matches neither color nor number", ErrInvalidMove, numberCard.Color().Name(), numberCard.Number())
	}
	g.playerHand.Remove(id)
	g.pile.Add(numberCard)
	g.bus.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: g.playerName,
		Card:       numberCard,
	})
	g.endTurn(TurnOpponent)
	return nil
}

// OpponentTurn asks the opponent for an action and applies it. Illegal
// choices are replaced by a draw, or a pass on an empty deck.
func (g *Game) OpponentTurn() (Action, error) {
	if err := g.expectTurn(TurnOpponent); err != nil {
		return Action{}, err
	}
	action := g.opponent.Choose(OpponentView{
		Hand:     g.opponentHand.Cards(),
		Top:      g.pile.Top(),
		DeckSize: g.deck.Size(),
	})
	action = g.correct(action)

	name := g.opponent.Name()
	switch action.Kind {
	case ActionPlayNumber:
		g.opponentHand.Remove(action.Card.ID())
		g.pile.Add(action.Card)
		g.bus.CardPlayed.Emit(event.CardPlayedPayload{
			PlayerName: name,
			Opponent:   true,
			Card:       action.Card,
		})
	case ActionPlayPower:
		powerCard := action.Card.(card.PowerCard)
		g.opponentHand.Remove(powerCard.ID())
		g.pile.Add(powerCard)
		effective := g.applyPower(powerCard)
		g.bus.PowerPlayed.Emit(event.PowerPlayedPayload{
			PlayerName: name,
			Card:       powerCard,
			Effective:  effective,
		})
	case ActionDraw:
		drawn, _ := g.deck.Pop()
		g.opponentHand.AddCards(drawn)
		g.bus.CardsDrawn.Emit(event.CardsDrawnPayload{
			PlayerName: name,
			Opponent:   true,
			Count:      1,
		})
	default:
		g.bus.PlayerPassed.Emit(event.PlayerPassedPayload{
			PlayerName: name,
			Opponent:   true,
		})
	}
	g.endTurn(TurnPlayer)
	return action, nil
}

func (g *Game) correct(action Action) Action {
	fallback := Pass()
	if !g.deck.Empty() {
		fallback = Draw()
	}
	fallback.Corrected = true

	switch action.Kind {
	case ActionPass:
		return action
	case ActionDraw:
		if g.deck.Empty() {
			return fallback
		}
		return action
	case ActionPlayNumber, ActionPlayPower:
		if action.Card == nil {
			return fallback
		}
		held, ok := g.opponentHand.Get(action.Card.ID())
		if !ok {
			return fallback
		}
		switch held := held.(type) {
		case card.NumberCard:
			if action.Kind != ActionPlayNumber || !Playable(held, g.pile.Top()) {
				return fallback
			}
			return PlayNumber(held)
		case card.PowerCard:
			if action.Kind != ActionPlayPower {
				return fallback
			}
			return PlayPower(held)
		}
	}
	return fallback
}

func (g *Game) expectTurn(turn Turn) error {
	switch {
	case !g.started:
		return fmt.Errorf("%w: game not started", ErrIllegalTurn)
	case g.over:
		return fmt.Errorf("%w: game is over", ErrIllegalTurn)
	case g.turn != turn:
		return fmt.Errorf("%w: it is the %s's turn", ErrIllegalTurn, g.turn)
	}
	return nil
}

// endTurn hands the turn over unless the move ended the game.
func (g *Game) endTurn(next Turn) {
	if g.checkGameOver() {
		return
	}
	g.turn = next
}

// checkGameOver declares a winner once a hand is empty. As in the first
// release of the game, no winner is declared while the draw pile is empty.
func (g *Game) checkGameOver() bool {
	if g.over {
		return true
	}
	if g.deck.Empty() {
		return false
	}
	switch {
	case g.playerHand.Empty():
		g.finish(WinnerPlayer, g.playerName)
	case g.opponentHand.Empty():
		g.finish(WinnerOpponent, g.opponent.Name())
	}
	return g.over
}

func (g *Game) finish(winner Winner, name string) {
	g.over = true
	g.winner = winner
	g.bus.GameOver.Emit(event.GameOverPayload{
		WinnerName: name,
		PlayerWon:  winner == WinnerPlayer,
	})
}

func (g *Game) Phase() Phase {
	switch {
	case !g.started:
		return PhaseDealing
	case g.over:
		return PhaseGameOver
	case g.turn == TurnOpponent:
		return PhaseOpponentTurn
	default:
		return PhasePlayerTurn
	}
}

func (g *Game) Top() card.Card {
	return g.pile.Top()
}

func (g *Game) State() State {
	return State{
		Started:      g.started,
		PlayerHand:   g.playerHand.Cards(),
		OpponentHand: g.opponentHand.Cards(),
		Deck:         g.deck.Cards(),
		Discard:      g.pile.Cards(),
		Turn:         g.turn,
		GameOver:     g.over,
		Winner:       g.winner,
	}
}

func (g *Game) View() View {
	top := g.pile.Top()
	playable := make([]string, 0)
	if g.Phase() == PhasePlayerTurn {
		for _, c := range g.playerHand.PlayableCards(top) {
			playable = append(playable, c.ID())
		}
	}
	return View{
		PlayerHand:        g.playerHand.Cards(),
		Playable:          playable,
		OpponentName:      g.opponent.Name(),
		OpponentHandCount: g.opponentHand.Size(),
		DeckCount:         g.deck.Size(),
		Top:               top,
		Turn:              g.turn,
		Phase:             g.Phase(),
		GameOver:          g.over,
		Winner:            g.winner,
	}
}

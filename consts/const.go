package consts

import (
	"errors"
	"time"

	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateRules
	StateGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	PlayTimeout   = 40 * time.Second
	ThinkDelay    = 1500 * time.Millisecond
	TableTTL      = 30 * time.Minute
	SettleTimeout = 10 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist         = NewErr(1, true, "Exist. ")
	ErrorsChanClosed    = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout       = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid  = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail      = NewErr(1, true, "Auth fail. ")
	ErrorsTableInvalid  = NewErr(2, true, "Table invalid. ")
	ErrorsInvalidMove   = NewErr(3, false, "Invalid move. Try another card or draw. ")
	ErrorsIllegalTurn   = NewErr(4, false, "Not your turn. ")
	ErrorsCardNotInHand = NewErr(5, false, "Card not in hand. ")
	ErrorsDealFailure   = NewErr(6, false, "Deal failed, try again. ")
)

// Translate turns engine errors into the errors shown to clients. Anything
// unknown is returned as is.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, game.ErrInvalidMove):
		return ErrorsInvalidMove
	case errors.Is(err, game.ErrIllegalTurn):
		return ErrorsIllegalTurn
	case errors.Is(err, game.ErrCardNotInHand):
		return ErrorsCardNotInHand
	case errors.Is(err, game.ErrDealFailure):
		return ErrorsDealFailure
	}
	return err
}

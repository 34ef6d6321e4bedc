package game

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrIllegalTurn   = errors.New("illegal turn")
	ErrCardNotInHand = errors.New("card not in hand")
	ErrDealFailure   = errors.New("deal failure")
)

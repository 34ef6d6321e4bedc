package consts_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/consts"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	other := errors.New("boom")
	scenarios := []struct {
		description string
		err         error
		expected    error
	}{
		{description: "nil", err: nil, expected: nil},
		{description: "invalid_move", err: fmt.Errorf("%w: blue 4", game.ErrInvalidMove), expected: consts.ErrorsInvalidMove},
		{description: "illegal_turn", err: game.ErrIllegalTurn, expected: consts.ErrorsIllegalTurn},
		{description: "card_not_in_hand", err: fmt.Errorf("%w: x", game.ErrCardNotInHand), expected: consts.ErrorsCardNotInHand},
		{description: "deal_failure", err: fmt.Errorf("%w: empty", game.ErrDealFailure), expected: consts.ErrorsDealFailure},
		{description: "unknown_errors_pass_through", err: other, expected: other},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, consts.Translate(scenario.err))
		})
	}
}

func TestErrorExit(t *testing.T) {
	require.True(t, consts.ErrorsTableInvalid.Exit)
	require.False(t, consts.ErrorsInvalidMove.Exit)
	require.Equal(t, "Timeout. ", consts.ErrorsTimeout.Error())
}

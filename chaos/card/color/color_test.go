package color_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, c := range color.All {
		found, err := color.ByName(c.Name())
		require.NoError(t, err)
		require.Equal(t, c, found)
	}

	found, err := color.ByName("RED")
	require.NoError(t, err)
	require.Equal(t, color.Red, found)

	_, err = color.ByName("purple")
	require.Error(t, err)
}

func TestPlain(t *testing.T) {
	color.Plain(true)
	defer color.Plain(false)

	require.Equal(t, "green", color.Green.String())
	require.Equal(t, "[4]", color.Blue.Paintf("[%d]", 4))
}

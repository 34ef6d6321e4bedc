package power_test

import (
	"testing"

	"github.com/ratel-online/chaos/chaos/card/power"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	scenarios := []struct {
		power  power.Type
		name   string
		chance float64
	}{
		{power: power.Switch, name: "switch", chance: 0.25},
		{power: power.AddUp, name: "addUp", chance: 0.10},
		{power: power.ColorShuffle, name: "colorShuffle", chance: 0.05},
		{power: power.NumberShuffle, name: "numberShuffle", chance: 0.05},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			require.Equal(t, scenario.name, scenario.power.String())
			require.Equal(t, scenario.chance, scenario.power.Chance())
			require.Equal(t, 4, scenario.power.Config().Count)

			found, err := power.ByName(scenario.name)
			require.NoError(t, err)
			require.Equal(t, scenario.power, found)
		})
	}

	_, err := power.ByName("skip")
	require.Error(t, err)
	require.Equal(t, "Type(9)", power.Type(9).String())
}

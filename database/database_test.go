package database_test

import (
	"testing"
	"time"

	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/chaos/table"
	"github.com/ratel-online/chaos/database"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	t.Run("create_registers_an_undealt_table", func(t *testing.T) {
		tbl := database.CreateTable("Ada")
		defer database.DeleteTable(tbl.ID)

		require.Same(t, tbl, database.GetTable(tbl.ID))
		require.Equal(t, game.PhaseDealing, tbl.View().Phase)
		require.NotEmpty(t, tbl.OpponentName())
	})

	t.Run("hooks_see_every_new_table", func(t *testing.T) {
		var seen []string
		database.OnTableCreated(func(tbl *table.Table) {
			seen = append(seen, tbl.ID)
		})
		tbl := database.CreateTable("Ada")
		defer database.DeleteTable(tbl.ID)
		require.Contains(t, seen, tbl.ID)
	})

	t.Run("delete_closes_the_table", func(t *testing.T) {
		tbl := database.CreateTable("Ada")
		require.True(t, database.DeleteTable(tbl.ID))
		require.True(t, tbl.Closed())
		require.Nil(t, database.GetTable(tbl.ID))
		require.False(t, database.DeleteTable(tbl.ID))
	})
}

func TestSweepTables(t *testing.T) {
	database.SetTableTTL(time.Minute)
	fresh := database.CreateTable("Ada")
	defer database.DeleteTable(fresh.ID)

	require.Zero(t, database.SweepTables(time.Now()))
	require.NotNil(t, database.GetTable(fresh.ID))

	require.Equal(t, 1, database.SweepTables(time.Now().Add(2*time.Minute)))
	require.Nil(t, database.GetTable(fresh.ID))
	require.True(t, fresh.Closed())
}

func TestNarrate(t *testing.T) {
	t.Run("offline_players_hear_nothing", func(t *testing.T) {
		p := &database.Player{ID: 7, Name: "Ada"}
		require.True(t, p.Online())
		p.Offline()
		require.False(t, p.Online())

		tbl := database.CreateTable(p.Name)
		defer database.DeleteTable(tbl.ID)
		database.Narrate(p, tbl, tbl.OpponentName())

		// the narrator must not touch the missing connection
		require.NoError(t, tbl.Start())
		require.NoError(t, tbl.PlayerDraw())
	})

	t.Run("offline_releases_the_table", func(t *testing.T) {
		tbl := database.CreateTable("Ada")
		p := &database.Player{ID: 8, Name: "Ada", TableID: tbl.ID}
		p.Offline()
		require.Empty(t, p.TableID)
		require.Nil(t, database.GetTable(tbl.ID))
		require.True(t, tbl.Closed())
	})
}

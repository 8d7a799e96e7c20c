package table_test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/ratel-online/cardgame/consts"
	"github.com/ratel-online/cardgame/game"
	"github.com/ratel-online/cardgame/table"
	"github.com/stretchr/testify/require"
)

func create(t *testing.T, preset string) *table.Session {
	t.Helper()
	session, err := table.Create(preset, []string{"Ann", "Bob", "Cid"}, game.Options{Rand: rand.New(rand.NewSource(3))})
	require.NoError(t, err)
	t.Cleanup(func() { table.Remove(session.ID) })
	return session
}

func TestCreate(t *testing.T) {
	session := create(t, consts.PresetUno)
	require.NotEmpty(t, session.ID)
	require.Equal(t, []string{"Ann", "Bob", "Cid"}, session.Players)

	found, err := table.Get(session.ID)
	require.NoError(t, err)
	require.Same(t, session, found)

	require.NoError(t, table.Do(session.ID, func(g *game.Game) error {
		require.Equal(t, 108-3*7-1, g.DrawPileSize())
		return nil
	}))

	t.Run("unknown_preset", func(t *testing.T) {
		_, err := table.Create("bridge", []string{"Ann", "Bob"}, game.Options{})
		require.ErrorIs(t, err, consts.ErrorsInvalidValue)
	})

	t.Run("unknown_session", func(t *testing.T) {
		_, err := table.Get("nope")
		require.ErrorIs(t, err, consts.ErrorsSessionInvalid)
		require.ErrorIs(t, table.Do("nope", func(*game.Game) error { return nil }), consts.ErrorsSessionInvalid)
		require.False(t, table.Remove("nope"))
	})
}

func TestDoSerialisesCalls(t *testing.T) {
	session := create(t, consts.PresetPoker)
	counter := 0
	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = table.Do(session.ID, func(g *game.Game) error {
				current := counter
				time.Sleep(time.Microsecond)
				counter = current + 1
				return nil
			})
		}()
	}
	wg.Wait()
	require.Equal(t, 50, counter)
}

func TestRemove(t *testing.T) {
	session := create(t, consts.PresetSkat)
	var g *game.Game
	require.NoError(t, table.Do(session.ID, func(current *game.Game) error {
		g = current
		return nil
	}))

	require.True(t, table.Remove(session.ID))
	require.True(t, g.Over())
	require.NotContains(t, table.List(), session)
}

func TestListAndSweep(t *testing.T) {
	first := create(t, consts.PresetUno)
	second := create(t, consts.PresetUno)

	list := table.List()
	require.Contains(t, list, first)
	require.Contains(t, list, second)

	require.NoError(t, table.Do(first.ID, func(g *game.Game) error {
		g.EndGame()
		return nil
	}))
	require.GreaterOrEqual(t, table.Sweep(0), 1)
	require.NotContains(t, table.List(), first)
	require.Contains(t, table.List(), second)
}

func TestStartSweeper(t *testing.T) {
	session := create(t, consts.PresetUno)
	stop := make(chan struct{})
	defer close(stop)

	table.StartSweeper(time.Millisecond, time.Nanosecond, stop)
	require.Eventually(t, func() bool {
		_, err := table.Get(session.ID)
		return err != nil
	}, time.Second, time.Millisecond)
}

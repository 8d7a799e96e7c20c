package preset_test

import (
	"testing"

	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/consts"
	"github.com/ratel-online/cardgame/preset"
	"github.com/stretchr/testify/require"
)

func countKind(cards []*card.Card, kind card.Kind) int {
	count := 0
	for _, c := range cards {
		if c.Kind() == kind {
			count++
		}
	}
	return count
}

func TestUno(t *testing.T) {
	cards := preset.Uno()
	require.Len(t, cards, 108)
	require.Equal(t, 76, countKind(cards, card.Number))
	require.Equal(t, 8, countKind(cards, card.Skip))
	require.Equal(t, 8, countKind(cards, card.Reverse))
	require.Equal(t, 8, countKind(cards, card.ForceDraw))
	require.Equal(t, 4, countKind(cards, card.Wild))
	require.Equal(t, 4, countKind(cards, card.WildForceDraw))

	t.Run("every_colour_has_25_cards", func(t *testing.T) {
		for _, color := range []string{"Red", "Green", "Blue", "Yellow"} {
			count := 0
			for _, c := range cards {
				if c.HasSuit(color) {
					count++
				}
			}
			require.Equal(t, 25, count, color)
		}
	})

	t.Run("draw_amounts", func(t *testing.T) {
		for _, c := range cards {
			switch c.Kind() {
			case card.ForceDraw:
				require.Equal(t, 2, c.Amount())
			case card.WildForceDraw:
				require.Equal(t, 4, c.Amount())
			}
		}
	})

	t.Run("wild_cards_have_no_colour", func(t *testing.T) {
		for _, c := range cards {
			if c.Kind().IsWild() {
				_, ok := c.SuitIndex()
				require.False(t, ok)
			}
		}
	})

	t.Run("renders_colour_first", func(t *testing.T) {
		require.Equal(t, "Red 0", cards[0].String())
		require.Equal(t, "Wild", cards[len(cards)-2].String())
	})

	t.Run("returns_fresh_cards", func(t *testing.T) {
		require.NotSame(t, cards[0], preset.Uno()[0])
	})
}

func TestPoker(t *testing.T) {
	cards := preset.Poker()
	require.Len(t, cards, 52)
	require.Equal(t, "2 of Clubs", cards[0].String())
	require.Equal(t, "Ace of Spades", cards[51].String())
}

func TestSkat(t *testing.T) {
	cards := preset.Skat()
	require.Len(t, cards, 32)

	c := card.Must(card.New(preset.SkatTable, card.Number, "Ace", "Hearts"))
	rank, _ := c.RankIndex()
	suit, _ := c.SuitIndex()
	require.Equal(t, 7, rank)
	require.Equal(t, 1, suit)
}

func TestFactory(t *testing.T) {
	scenarios := []struct {
		description string
		name        string
		size        int
	}{
		{description: "uno", name: consts.PresetUno, size: 108},
		{description: "poker", name: consts.PresetPoker, size: 52},
		{description: "skat", name: consts.PresetSkat, size: 32},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			factory, err := preset.Factory(scenario.name)
			require.NoError(t, err)
			require.Len(t, factory(), scenario.size)

			table, err := preset.Table(scenario.name)
			require.NoError(t, err)
			require.Same(t, table, factory()[0].Table())
		})
	}

	t.Run("unknown_preset", func(t *testing.T) {
		_, err := preset.Factory("bridge")
		require.ErrorIs(t, err, consts.ErrorsInvalidValue)
		_, err = preset.Table("bridge")
		require.ErrorIs(t, err, consts.ErrorsInvalidValue)
	})
}

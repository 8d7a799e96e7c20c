package card_test

import (
	"sort"
	"testing"

	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var table = card.MustTable(
	[]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"},
	[]string{"Clubs", "Diamonds", "Hearts", "Spades"},
)

func newCard(t *testing.T, rank, suit interface{}) *card.Card {
	c, err := card.New(table, card.Number, rank, suit)
	require.NoError(t, err)
	return c
}

func TestNewTable(t *testing.T) {
	_, err := card.NewTable([]string{"A", "B", "A"}, []string{"X"})
	require.ErrorIs(t, err, consts.ErrorsInvalidValue)

	_, err = card.NewTable([]string{"A"}, []string{""})
	require.ErrorIs(t, err, consts.ErrorsInvalidValue)

	tbl, err := card.NewTable([]string{"A", "B"}, []string{"X", "Y"})
	require.NoError(t, err)
	index, err := tbl.SuitIndex("Y")
	require.NoError(t, err)
	assert.Equal(t, 1, index)
}

func TestNew(t *testing.T) {
	t.Run("accepts_names_and_indexes", func(t *testing.T) {
		byName := newCard(t, "Ace", "Spades")
		byIndex := newCard(t, 12, 3)
		assert.True(t, byName.Equal(byIndex))

		rank, ok := byName.RankIndex()
		assert.True(t, ok)
		assert.Equal(t, 12, rank)
		suit, ok := byName.SuitName()
		assert.True(t, ok)
		assert.Equal(t, "Spades", suit)
	})

	t.Run("accepts_nil", func(t *testing.T) {
		c := newCard(t, nil, nil)
		_, ok := c.RankIndex()
		assert.False(t, ok)
		_, ok = c.SuitName()
		assert.False(t, ok)
		assert.Equal(t, "None", c.String())
	})

	t.Run("rejects_unknown_name", func(t *testing.T) {
		_, err := card.New(table, card.Number, "Joker", "Spades")
		require.ErrorIs(t, err, consts.ErrorsInvalidValue)
	})

	t.Run("rejects_out_of_range_index", func(t *testing.T) {
		_, err := card.New(table, card.Number, 13, 0)
		require.ErrorIs(t, err, consts.ErrorsInvalidValue)
		_, err = card.New(table, card.Number, 0, 4)
		require.ErrorIs(t, err, consts.ErrorsInvalidValue)
	})

	t.Run("rejects_other_types", func(t *testing.T) {
		_, err := card.New(table, card.Number, 1.5, 0)
		require.ErrorIs(t, err, consts.ErrorsInvalidValue)
	})

	t.Run("force_draw_kinds_get_default_amounts", func(t *testing.T) {
		drawTwo, err := card.New(table, card.ForceDraw, "2", "Hearts")
		require.NoError(t, err)
		assert.Equal(t, 2, drawTwo.Amount())

		drawFour, err := card.New(table, card.WildForceDraw, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 4, drawFour.Amount())

		_, err = card.NewDraw(table, card.ForceDraw, 0, nil, nil)
		require.ErrorIs(t, err, consts.ErrorsInvalidValue)
	})
}

func TestSetRankAndSuit(t *testing.T) {
	c := newCard(t, "2", "Clubs")

	require.NoError(t, c.SetRank("King"))
	require.NoError(t, c.SetSuit(2))
	assert.Equal(t, "King of Hearts", c.String())

	err := c.SetSuit("Stars")
	require.ErrorIs(t, err, consts.ErrorsInvalidValue)
	assert.Equal(t, "King of Hearts", c.String())

	require.NoError(t, c.SetSuit(nil))
	assert.Equal(t, "King", c.String())
}

func TestEqualIgnoresTrumpAndKind(t *testing.T) {
	plain := newCard(t, "5", "Hearts")
	trump := newCard(t, "5", "Hearts")
	trump.SetTrump(true)
	action, err := card.New(table, card.Skip, "5", "Hearts")
	require.NoError(t, err)

	assert.True(t, plain.Equal(trump))
	assert.True(t, plain.Equal(action))
	assert.False(t, plain.Identical(trump))
	assert.False(t, plain.Identical(action))
	assert.True(t, plain.Identical(newCard(t, "5", "Hearts")))
	assert.False(t, plain.Equal(nil))
}

func TestString(t *testing.T) {
	c := newCard(t, "Queen", "Diamonds")
	assert.Equal(t, "Queen of Diamonds", c.String())
	c.SetTrump(true)
	assert.Equal(t, "Queen of Diamonds (trump)", c.String())

	suitFirst := card.MustTable([]string{"5"}, []string{"Red"})
	suitFirst.SuitFirst = true
	red, err := card.New(suitFirst, card.Number, "5", "Red")
	require.NoError(t, err)
	assert.Equal(t, "Red 5", red.String())
}

func TestLess(t *testing.T) {
	scenarios := []struct {
		description string
		left        *card.Card
		right       *card.Card
		trumpLeft   bool
		trumpRight  bool
		expected    bool
	}{
		{
			description: "lower_suit_first",
			left:        newCard(t, "Ace", "Clubs"),
			right:       newCard(t, "2", "Diamonds"),
			expected:    true,
		},
		{
			description: "same_suit_lower_rank_first",
			left:        newCard(t, "3", "Hearts"),
			right:       newCard(t, "4", "Hearts"),
			expected:    true,
		},
		{
			description: "trump_beats_everything",
			left:        newCard(t, "Ace", "Spades"),
			right:       newCard(t, "2", "Clubs"),
			trumpRight:  true,
			expected:    true,
		},
		{
			description: "trump_is_never_less_than_plain",
			left:        newCard(t, "2", "Clubs"),
			right:       newCard(t, "Ace", "Spades"),
			trumpLeft:   true,
			expected:    false,
		},
		{
			description: "unset_suit_sorts_first",
			left:        newCard(t, "Ace", nil),
			right:       newCard(t, "2", "Clubs"),
			expected:    true,
		},
		{
			description: "equal_cards_are_not_less",
			left:        newCard(t, "7", "Clubs"),
			right:       newCard(t, "7", "Clubs"),
			expected:    false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			scenario.left.SetTrump(scenario.trumpLeft)
			scenario.right.SetTrump(scenario.trumpRight)
			require.Equal(t, scenario.expected, scenario.left.Less(scenario.right))
		})
	}
}

func TestLessByRank(t *testing.T) {
	cards := []*card.Card{
		newCard(t, "King", "Clubs"),
		newCard(t, "2", "Spades"),
		newCard(t, "2", "Clubs"),
		newCard(t, "5", "Hearts"),
	}
	cards[0].SetTrump(true)

	sort.SliceStable(cards, func(i, j int) bool { return cards[i].LessByRank(cards[j], true) })
	assert.Equal(t, "King of Clubs (trump)", cards[0].String())
	assert.Equal(t, "2 of Clubs", cards[1].String())
	assert.Equal(t, "2 of Spades", cards[2].String())

	sort.SliceStable(cards, func(i, j int) bool { return cards[i].LessByRank(cards[j], false) })
	assert.Equal(t, "King of Clubs (trump)", cards[3].String())
}

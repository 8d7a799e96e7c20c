package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/game"
	"github.com/ratel-online/cardgame/preset"
	"github.com/stretchr/testify/require"
)

func unoCard(t *testing.T, kind card.Kind, rank, suit interface{}) *card.Card {
	t.Helper()
	c, err := card.New(preset.UnoTable, kind, rank, suit)
	require.NoError(t, err)
	return c
}

func number(t *testing.T, n int, color string) *card.Card {
	return unoCard(t, card.Number, n, color)
}

func drawTwo(t *testing.T, color string) *card.Card {
	return unoCard(t, card.ForceDraw, "Draw Two", color)
}

func wild(t *testing.T) *card.Card {
	return unoCard(t, card.Wild, "Wild", nil)
}

func wildDrawFour(t *testing.T) *card.Card {
	return unoCard(t, card.WildForceDraw, "Wild Draw Four", nil)
}

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// newTestGame seats hands around the given piles. The first discard card is
// the top card.
func newTestGame(t *testing.T, draw, discard []*card.Card, hands ...*game.Hand) *game.Game {
	t.Helper()
	g, err := game.New(game.NewDeck(draw...), game.NewDeck(discard...), hands, game.Options{Rand: seeded()})
	require.NoError(t, err)
	return g
}

// owners counts how many places hold each card.
func owners(g *game.Game) map[*card.Card]int {
	seen := map[*card.Card]int{}
	for _, c := range g.DrawPile().Cards() {
		seen[c]++
	}
	for _, c := range g.DiscardPile().Cards() {
		seen[c]++
	}
	for _, hand := range g.Hands() {
		for _, c := range hand.Cards() {
			seen[c]++
		}
	}
	return seen
}

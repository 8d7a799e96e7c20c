package player

import (
	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/game"
)

// Player makes the decisions for one hand.
type Player interface {
	Name() string
	PickSuit(gameState game.State, suits []string) string
	Play(playableCards []*card.Card, gameState game.State) *card.Card
	CallSpecial(gameState game.State) bool
	NotifyNoMatchingCardsInHand(lastPlayedCard *card.Card, hand []*card.Card)
}

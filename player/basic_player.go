package player

import (
	"github.com/ratel-online/cardgame/card"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) NotifyNoMatchingCardsInHand(lastPlayedCard *card.Card, hand []*card.Card) {
}

package player

import (
	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/game"
	"github.com/ratel-online/core/util/rand"
)

type naivePlayer struct {
	basicPlayer
}

func NewNaivePlayer(name string) Player {
	return naivePlayer{basicPlayer: basicPlayer{name: name}}
}

func (p naivePlayer) PickSuit(gameState game.State, suits []string) string {
	return suits[rand.Intn(len(suits))]
}

func (p naivePlayer) Play(playableCards []*card.Card, gameState game.State) *card.Card {
	return playableCards[0]
}

// CallSpecial forgets the call every fourth time on average.
func (p naivePlayer) CallSpecial(gameState game.State) bool {
	return rand.Intn(4) != 0
}

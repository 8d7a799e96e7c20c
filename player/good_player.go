package player

import (
	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/game"
)

type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(name string) Player {
	return goodPlayer{basicPlayer: basicPlayer{name: name}}
}

// PickSuit picks the suit most of the hand can follow. Ties go to the suit
// listed first.
func (p goodPlayer) PickSuit(gameState game.State, suits []string) string {
	suitCounts := make(map[string]int)
	for _, c := range gameState.CurrentPlayerHand {
		suit, ok := c.SuitName()
		if !ok {
			for _, other := range suits {
				suitCounts[other]++
			}
			continue
		}
		suitCounts[suit]++
	}

	mostFrequentSuit, mostFrequentSuitAmount := suits[0], 0
	for _, suit := range suits {
		if suitCounts[suit] > mostFrequentSuitAmount {
			mostFrequentSuitAmount = suitCounts[suit]
			mostFrequentSuit = suit
		}
	}
	return mostFrequentSuit
}

// Play picks the card that leaves the most of the hand playable after it.
func (p goodPlayer) Play(playableCards []*card.Card, gameState game.State) *card.Card {
	mostDiscardableCardIndex := 0
	maxSpareCards := 0

	for cardIndex, playableCard := range playableCards {
		spareCards := 0
		for _, handCard := range gameState.CurrentPlayerHand {
			if handCard != playableCard && game.Playable(handCard, playableCard) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return playableCards[mostDiscardableCardIndex]
}

func (p goodPlayer) CallSpecial(gameState game.State) bool {
	return true
}

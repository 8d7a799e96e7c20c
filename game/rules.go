package game

import (
	"github.com/ratel-online/cardgame/card"
)

// Playable reports whether candidate may follow lastPlayed when no draw is
// pending. Wild cards always play, and anything plays on a wild whose suit
// has not been picked.
func Playable(candidate, lastPlayed *card.Card) bool {
	if candidate.Kind().IsWild() {
		return true
	}
	if _, picked := lastPlayed.SuitIndex(); !picked && lastPlayed.Kind().IsWild() {
		return true
	}
	return sameRank(candidate, lastPlayed) || sameSuit(candidate, lastPlayed)
}

// Stackable reports whether candidate may answer a pending draw started by a
// card of kind that draws amount.
func Stackable(candidate *card.Card, kind card.Kind, amount int) bool {
	return candidate.Kind() == kind && candidate.Amount() == amount
}

func sameRank(a, b *card.Card) bool {
	x, ok := a.RankIndex()
	y, ok2 := b.RankIndex()
	return ok && ok2 && x == y
}

func sameSuit(a, b *card.Card) bool {
	x, ok := a.SuitIndex()
	y, ok2 := b.SuitIndex()
	return ok && ok2 && x == y
}

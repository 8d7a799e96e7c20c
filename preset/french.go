package preset

import (
	"github.com/ratel-online/cardgame/card"
)

// PokerTable is the 52-card French deck, deuce low and ace high.
var PokerTable = card.MustTable(
	[]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"},
	[]string{"Clubs", "Diamonds", "Hearts", "Spades"},
)

// SkatTable is the 32-card Skat deck in its bidding suit order.
var SkatTable = card.MustTable(
	[]string{"7", "8", "9", "10", "Jack", "Queen", "King", "Ace"},
	[]string{"Diamonds", "Hearts", "Spades", "Clubs"},
)

func Poker() []*card.Card {
	return full(PokerTable)
}

func Skat() []*card.Card {
	return full(SkatTable)
}

// full returns one number card for every suit and rank of t.
func full(t *card.Table) []*card.Card {
	cards := make([]*card.Card, 0, len(t.Suits)*len(t.Ranks))
	for suit := range t.Suits {
		for rank := range t.Ranks {
			cards = append(cards, card.Must(card.New(t, card.Number, rank, suit)))
		}
	}
	return cards
}

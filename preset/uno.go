package preset

import (
	"github.com/ratel-online/cardgame/card"
)

var unoColors = []string{"Red", "Green", "Blue", "Yellow"}

// UnoTable names the UNO ranks and colours. Wild cards carry no colour until
// one is picked.
var UnoTable = func() *card.Table {
	t := card.MustTable(
		[]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "Skip", "Reverse", "Draw Two", "Wild", "Wild Draw Four"},
		unoColors,
	)
	t.SuitFirst = true
	return t
}()

// Uno returns a fresh 108-card UNO deck in a fixed order.
func Uno() []*card.Card {
	cards := make([]*card.Card, 0, 108)
	for _, color := range unoColors {
		cards = append(cards, card.Must(card.New(UnoTable, card.Number, "0", color)))
		for number := 1; number <= 9; number++ {
			for i := 0; i < 2; i++ {
				cards = append(cards, card.Must(card.New(UnoTable, card.Number, number, color)))
			}
		}
		for i := 0; i < 2; i++ {
			cards = append(cards,
				card.Must(card.New(UnoTable, card.Skip, "Skip", color)),
				card.Must(card.New(UnoTable, card.Reverse, "Reverse", color)),
				card.Must(card.New(UnoTable, card.ForceDraw, "Draw Two", color)),
			)
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards,
			card.Must(card.New(UnoTable, card.Wild, "Wild", nil)),
			card.Must(card.New(UnoTable, card.WildForceDraw, "Wild Draw Four", nil)),
		)
	}
	return cards
}

package game

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/consts"
)

// Deck is an ordered sequence of cards used for both the draw pile and the
// discard pile. Index 0 is the top.
type Deck struct {
	cards []*card.Card
}

func NewDeck(cards ...*card.Card) *Deck {
	deck := &Deck{cards: make([]*card.Card, 0, len(cards))}
	deck.cards = append(deck.cards, cards...)
	return deck
}

// Draw removes and returns the top amount cards.
func (d *Deck) Draw(amount int) ([]*card.Card, error) {
	if amount < 1 || amount > len(d.cards) {
		return nil, fmt.Errorf("%wcannot draw %d of %d cards", consts.ErrorsInsufficientCards, amount, len(d.cards))
	}
	cards := make([]*card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards, nil
}

func (d *Deck) DrawOne() (*card.Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return nil, err
	}
	return cards[0], nil
}

// AddTop puts cards on top; the first argument ends up on top.
func (d *Deck) AddTop(cards ...*card.Card) {
	merged := make([]*card.Card, 0, len(cards)+len(d.cards))
	merged = append(merged, cards...)
	d.cards = append(merged, d.cards...)
}

func (d *Deck) AddBottom(cards ...*card.Card) {
	d.cards = append(d.cards, cards...)
}

// Remove takes out the first occurrence of each card. Nothing is removed
// unless every card is present.
func (d *Deck) Remove(cards ...*card.Card) error {
	remaining, _, err := removeCards(d.cards, cards)
	if err != nil {
		return err
	}
	d.cards = remaining
	return nil
}

// Shuffle permutes the deck with r. The same seed and the same starting
// order give the same result.
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) SortBySuit() {
	sort.SliceStable(d.cards, func(i, j int) bool { return d.cards[i].Less(d.cards[j]) })
}

func (d *Deck) SortByRank(trumpFirst bool) {
	sort.SliceStable(d.cards, func(i, j int) bool { return d.cards[i].LessByRank(d.cards[j], trumpFirst) })
}

func (d *Deck) Count(match func(*card.Card) bool) int {
	count := 0
	for _, c := range d.cards {
		if match(c) {
			count++
		}
	}
	return count
}

func (d *Deck) CountCard(target *card.Card) int {
	return d.Count(target.Equal)
}

func (d *Deck) CountRank(name string) int {
	return d.Count(func(c *card.Card) bool {
		rank, ok := c.RankName()
		return ok && rank == name
	})
}

func (d *Deck) CountSuit(name string) int {
	return d.Count(func(c *card.Card) bool { return c.HasSuit(name) })
}

// Indexes returns the positions of cards equal to target.
func (d *Deck) Indexes(target *card.Card) []int {
	var indexes []int
	for i, c := range d.cards {
		if c.Equal(target) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

func (d *Deck) Top() *card.Card {
	if len(d.cards) == 0 {
		return nil
	}
	return d.cards[0]
}

func (d *Deck) Cards() []*card.Card {
	cards := make([]*card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Clear() {
	d.cards = d.cards[:0]
}

// removeCards returns cards without one occurrence of each target, and the
// cards taken out. A target matches its own pointer first and any equal card
// otherwise.
func removeCards(cards []*card.Card, targets []*card.Card) ([]*card.Card, []*card.Card, error) {
	remaining := make([]*card.Card, len(cards))
	copy(remaining, cards)
	removed := make([]*card.Card, 0, len(targets))
	for _, target := range targets {
		index := indexOf(remaining, target)
		if index < 0 {
			return nil, nil, fmt.Errorf("%w%s", consts.ErrorsNotFound, target)
		}
		removed = append(removed, remaining[index])
		remaining = append(remaining[:index], remaining[index+1:]...)
	}
	return remaining, removed, nil
}

func indexOf(cards []*card.Card, target *card.Card) int {
	if target == nil {
		return -1
	}
	for i, c := range cards {
		if c == target {
			return i
		}
	}
	for i, c := range cards {
		if c.Equal(target) {
			return i
		}
	}
	return -1
}

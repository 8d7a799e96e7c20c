package game

import (
	"fmt"

	"github.com/ratel-online/cardgame/card"
)

// Hand is the cards one named participant holds, in the order received.
type Hand struct {
	name    string
	cards   []*card.Card
	score   int
	special bool
}

func NewHand(name string, cards ...*card.Card) *Hand {
	hand := &Hand{name: name, cards: make([]*card.Card, 0, 7)}
	hand.AddCards(cards...)
	return hand
}

func (h *Hand) Name() string {
	return h.name
}

func (h *Hand) SetName(name string) {
	h.name = name
}

func (h *Hand) AddCards(cards ...*card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []*card.Card {
	cards := make([]*card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// RemoveCards removes one copy of each card, or nothing if any is missing.
func (h *Hand) RemoveCards(cards ...*card.Card) error {
	remaining, _, err := removeCards(h.cards, cards)
	if err != nil {
		return fmt.Errorf("%s: %w", h.name, err)
	}
	h.cards = remaining
	return nil
}

// PlayCards removes and returns the given cards. Without arguments the whole
// hand is played.
func (h *Hand) PlayCards(cards ...*card.Card) ([]*card.Card, error) {
	if len(cards) == 0 {
		played := h.cards
		h.cards = make([]*card.Card, 0, 7)
		return played, nil
	}
	remaining, played, err := removeCards(h.cards, cards)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", h.name, err)
	}
	h.cards = remaining
	return played, nil
}

func (h *Hand) Contains(c *card.Card) bool {
	return indexOf(h.cards, c) >= 0
}

// Find returns the held card matching c, preferring c itself.
func (h *Hand) Find(c *card.Card) *card.Card {
	if index := indexOf(h.cards, c); index >= 0 {
		return h.cards[index]
	}
	return nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Score() int {
	return h.score
}

func (h *Hand) SetScore(score int) {
	h.score = score
}

// CallSpecial announces the last card ("UNO"). It only counts with exactly
// one card left.
func (h *Hand) CallSpecial() bool {
	h.special = len(h.cards) == 1
	return h.special
}

func (h *Hand) Called() bool {
	return h.special
}

func (h *Hand) ResetSpecial() {
	h.special = false
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
	h.special = false
}

func (h *Hand) String() string {
	return fmt.Sprintf("%s (%d card(s))", h.name, len(h.cards))
}

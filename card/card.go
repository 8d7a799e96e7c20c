package card

import (
	"fmt"

	"github.com/ratel-online/cardgame/consts"
)

const none = -1

// Card is one physical card. Cards are shared by pointer and move between
// decks and hands; they are never copied implicitly.
type Card struct {
	table  *Table
	kind   Kind
	amount int
	rank   int
	suit   int
	trump  bool
}

// New creates a card of the given kind. rank and suit accept an index, a
// name from the table, or nil. Force-draw kinds get their default amount.
func New(table *Table, kind Kind, rank, suit interface{}) (*Card, error) {
	return NewDraw(table, kind, defaultAmount(kind), rank, suit)
}

// NewDraw is New with an explicit forced-draw amount.
func NewDraw(table *Table, kind Kind, amount int, rank, suit interface{}) (*Card, error) {
	if table == nil {
		return nil, fmt.Errorf("%wcard needs a rank/suit table", consts.ErrorsInvalidValue)
	}
	if kind.Draws() && amount <= 0 {
		return nil, fmt.Errorf("%w%s needs a positive draw amount, got %d", consts.ErrorsInvalidValue, kind, amount)
	}
	c := &Card{table: table, kind: kind, amount: amount, rank: none, suit: none}
	if err := c.SetRank(rank); err != nil {
		return nil, err
	}
	if err := c.SetSuit(suit); err != nil {
		return nil, err
	}
	return c, nil
}

// Must panics on construction errors. Meant for fixed presets.
func Must(c *Card, err error) *Card {
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Card) Table() *Table {
	return c.table
}

func (c *Card) Kind() Kind {
	return c.kind
}

// Amount is the number of cards a force-draw card adds to the pending draw.
func (c *Card) Amount() int {
	return c.amount
}

func (c *Card) RankIndex() (int, bool) {
	return c.rank, c.rank != none
}

func (c *Card) SuitIndex() (int, bool) {
	return c.suit, c.suit != none
}

func (c *Card) RankName() (string, bool) {
	if c.rank == none {
		return "", false
	}
	return c.table.Ranks[c.rank], true
}

func (c *Card) SuitName() (string, bool) {
	if c.suit == none {
		return "", false
	}
	return c.table.Suits[c.suit], true
}

// SetRank accepts an index, a name or nil to clear.
func (c *Card) SetRank(value interface{}) error {
	rank, err := resolve(c.table.Ranks, value, "rank")
	if err != nil {
		return err
	}
	c.rank = rank
	return nil
}

// SetSuit accepts an index, a name or nil to clear.
func (c *Card) SetSuit(value interface{}) error {
	suit, err := resolve(c.table.Suits, value, "suit")
	if err != nil {
		return err
	}
	c.suit = suit
	return nil
}

func (c *Card) Trump() bool {
	return c.trump
}

func (c *Card) SetTrump(trump bool) {
	c.trump = trump
}

// HasSuit reports whether the card's suit is set and named suit.
func (c *Card) HasSuit(suit string) bool {
	name, ok := c.SuitName()
	return ok && name == suit
}

// Equal compares rank and suit only.
func (c *Card) Equal(other *Card) bool {
	if other == nil {
		return false
	}
	return c.rank == other.rank && c.suit == other.suit
}

// Identical also compares kind, draw amount and trump status.
func (c *Card) Identical(other *Card) bool {
	return c.Equal(other) && c.kind == other.kind && c.amount == other.amount && c.trump == other.trump
}

func (c *Card) String() string {
	rank, hasRank := c.RankName()
	suit, hasSuit := c.SuitName()
	var s string
	switch {
	case !hasRank && !hasSuit:
		s = "None"
	case !hasSuit:
		s = rank
	case !hasRank:
		s = suit
	case c.table.SuitFirst:
		s = fmt.Sprintf("%s %s", suit, rank)
	default:
		s = fmt.Sprintf("%s of %s", rank, suit)
	}
	if c.trump {
		s += " (trump)"
	}
	return s
}

package card

// Less orders trump cards above the rest, then by suit, then by rank. Unset
// values sort before any set value.
func (c *Card) Less(other *Card) bool {
	if c.trump != other.trump {
		return other.trump
	}
	if c.suit != other.suit {
		return c.suit < other.suit
	}
	return c.rank < other.rank
}

// LessByRank orders by rank, then suit. With trumpFirst, trump cards lead.
func (c *Card) LessByRank(other *Card, trumpFirst bool) bool {
	if trumpFirst && c.trump != other.trump {
		return c.trump
	}
	if c.rank != other.rank {
		return c.rank < other.rank
	}
	return c.suit < other.suit
}

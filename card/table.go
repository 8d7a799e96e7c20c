package card

import (
	"fmt"

	"github.com/ratel-online/cardgame/consts"
)

// Table holds the ordered rank and suit names a family of cards is built from.
// Index order is ascending order.
type Table struct {
	Ranks []string
	Suits []string
	// SuitFirst renders "Red 5" instead of "5 of Red".
	SuitFirst bool
}

func NewTable(ranks, suits []string) (*Table, error) {
	if err := unique(ranks); err != nil {
		return nil, fmt.Errorf("%wrank table: %v", consts.ErrorsInvalidValue, err)
	}
	if err := unique(suits); err != nil {
		return nil, fmt.Errorf("%wsuit table: %v", consts.ErrorsInvalidValue, err)
	}
	return &Table{Ranks: ranks, Suits: suits}, nil
}

func MustTable(ranks, suits []string) *Table {
	t, err := NewTable(ranks, suits)
	if err != nil {
		panic(err)
	}
	return t
}

func unique(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("empty name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate name '%s'", name)
		}
		seen[name] = true
	}
	return nil
}

func (t *Table) RankIndex(name string) (int, error) {
	return lookup(t.Ranks, name, "rank")
}

func (t *Table) SuitIndex(name string) (int, error) {
	return lookup(t.Suits, name, "suit")
}

func (t *Table) RankName(index int) (string, error) {
	return nameAt(t.Ranks, index, "rank")
}

func (t *Table) SuitName(index int) (string, error) {
	return nameAt(t.Suits, index, "suit")
}

func lookup(names []string, name, what string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return none, fmt.Errorf("%winvalid %s name '%s'", consts.ErrorsInvalidValue, what, name)
}

func nameAt(names []string, index int, what string) (string, error) {
	if index < 0 || index >= len(names) {
		return "", fmt.Errorf("%winvalid %s index %d", consts.ErrorsInvalidValue, what, index)
	}
	return names[index], nil
}

// resolve turns an index, a name or nil into a table index.
func resolve(names []string, value interface{}, what string) (int, error) {
	switch v := value.(type) {
	case nil:
		return none, nil
	case int:
		if v == none {
			return none, nil
		}
		if _, err := nameAt(names, v, what); err != nil {
			return none, err
		}
		return v, nil
	case string:
		return lookup(names, v, what)
	default:
		return none, fmt.Errorf("%w%s must be nil, an int or a name, got %T", consts.ErrorsInvalidValue, what, value)
	}
}

package preset

import (
	"fmt"

	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/consts"
)

// Factory returns the deck builder registered under name.
func Factory(name string) (func() []*card.Card, error) {
	switch name {
	case consts.PresetUno:
		return Uno, nil
	case consts.PresetPoker:
		return Poker, nil
	case consts.PresetSkat:
		return Skat, nil
	}
	return nil, fmt.Errorf("%wunknown preset %q", consts.ErrorsInvalidValue, name)
}

// Table returns the rank and suit table of the preset called name.
func Table(name string) (*card.Table, error) {
	switch name {
	case consts.PresetUno:
		return UnoTable, nil
	case consts.PresetPoker:
		return PokerTable, nil
	case consts.PresetSkat:
		return SkatTable, nil
	}
	return nil, fmt.Errorf("%wunknown preset %q", consts.ErrorsInvalidValue, name)
}

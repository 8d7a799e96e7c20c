package card

import (
	"fmt"

	"github.com/ratel-online/cardgame/consts"
)

// Engine is the part of a game a card effect may change.
type Engine interface {
	SkipTurn()
	ReverseTurns()
	AddPendingDraw(kind Kind, amount int)
	ChangeActiveSuit(suit string) error
}

// Holder is whoever played the card.
type Holder interface {
	Name() string
}

// Args carries the choices a player makes together with a play.
type Args struct {
	// Suit is the suit name picked for a wild card.
	Suit string
}

// CheckArgs validates args for this card without applying anything.
func (c *Card) CheckArgs(holder Holder, args Args) error {
	if !c.kind.IsWild() {
		return nil
	}
	if args.Suit == "" {
		return fmt.Errorf("%w%s must pick a suit for %s", consts.ErrorsMissingArgument, holderName(holder), c)
	}
	_, err := c.table.SuitIndex(args.Suit)
	return err
}

// Effect applies what playing the card does to the game.
func (c *Card) Effect(e Engine, holder Holder, args Args) error {
	if err := c.CheckArgs(holder, args); err != nil {
		return err
	}
	switch c.kind {
	case Skip:
		e.SkipTurn()
	case Reverse:
		e.ReverseTurns()
	case ForceDraw:
		e.AddPendingDraw(c.kind, c.amount)
	case Wild, WildForceDraw:
		if err := c.SetSuit(args.Suit); err != nil {
			return err
		}
		if err := e.ChangeActiveSuit(args.Suit); err != nil {
			return err
		}
		if c.kind == WildForceDraw {
			e.AddPendingDraw(c.kind, c.amount)
		}
	}
	return nil
}

func holderName(holder Holder) string {
	if holder == nil {
		return "player"
	}
	return holder.Name()
}

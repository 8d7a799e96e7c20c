package player

import (
	"errors"

	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/consts"
	"github.com/ratel-online/cardgame/game"
	"github.com/ratel-online/cardgame/msg"
	"github.com/ratel-online/cardgame/ui"
)

// Controller plays the turns of one hand on behalf of its Player.
type Controller struct {
	player Player
	hand   *game.Hand
}

func NewController(player Player, hand *game.Hand) *Controller {
	return &Controller{player: player, hand: hand}
}

func (c *Controller) Name() string {
	return c.player.Name()
}

func (c *Controller) Hand() *game.Hand {
	return c.hand
}

// Play takes the current turn: a playable card if there is one, otherwise a
// draw. A drawn card that fits is played at once unless the draw was forced.
// The turn is not advanced.
func (c *Controller) Play(g *game.Game) error {
	gameState := g.Snapshot(c.hand)
	playableCards := g.PlayableCards(c.hand)
	if len(playableCards) == 0 {
		if g.PendingDraw() == 0 {
			c.player.NotifyNoMatchingCardsInHand(gameState.LastPlayedCard, gameState.CurrentPlayerHand)
		}
		return c.tryTopDecking(g)
	}

	for {
		selectedCard := c.player.Play(playableCards, gameState)
		if selectedCard == nil {
			return c.tryTopDecking(g)
		}
		if !contains(playableCards, selectedCard) {
			ui.Printfln("Cheat detected! Card %s is not playable from %s's hand!", selectedCard, c.player.Name())
			continue
		}
		return c.play(g, selectedCard)
	}
}

func (c *Controller) tryTopDecking(g *game.Game) error {
	forced := g.PendingDraw() > 0
	drawnCards, err := g.Draw(c.hand)
	if exhausted(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if forced || len(drawnCards) != 1 || !g.IsLegalPlay(drawnCards[0], g.TopDiscard()) {
		return nil
	}
	ui.Print(msg.Message.PlayerDrewAndPlayedCard(c.player.Name(), drawnCards[0]))
	return c.play(g, drawnCards[0])
}

func (c *Controller) play(g *game.Game, selectedCard *card.Card) error {
	args := card.Args{}
	if selectedCard.Kind().IsWild() {
		args.Suit = c.player.PickSuit(g.Snapshot(c.hand), selectedCard.Table().Suits)
	}
	if err := g.PlayCard(selectedCard, c.hand, args); err != nil {
		return err
	}
	if c.hand.Size() != 1 {
		return nil
	}
	if c.player.CallSpecial(g.Snapshot(c.hand)) && c.hand.CallSpecial() {
		ui.Print(msg.Message.PlayerCalledSpecial(c.player.Name()))
		return nil
	}
	ui.Print(msg.Message.PlayerForgotSpecialCall(c.player.Name()))
	if _, err := g.DrawCards(c.hand, 1); err != nil && !exhausted(err) {
		return err
	}
	return nil
}

// exhausted reports a draw that failed only because no card was left. The
// turn then passes without drawing.
func exhausted(err error) bool {
	return errors.Is(err, consts.ErrorsInsufficientCards) || errors.Is(err, consts.ErrorsNoCardsAvailable)
}

func contains(cards []*card.Card, searchedCard *card.Card) bool {
	for _, c := range cards {
		if c == searchedCard {
			return true
		}
	}
	return false
}

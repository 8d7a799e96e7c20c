package msg

import (
	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(c *card.Card) string {
	return Sprintfln("First card is %s", color.PaintCard(c))
}

func (m MessageWriter) HumanPlayerDrewCards(cards []*card.Card) string {
	return Sprintfln("You drew %s!", color.PaintCards(cards))
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard *card.Card, hand []*card.Card) string {
	return Sprintlns([]string{
		Sprintf("%s, none of your cards match %s!", playerName, color.PaintCard(lastPlayedCard)),
		Sprintf("Your hand is %s", color.PaintCards(hand)),
	})
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewAndPlayedCard(playerName string, c *card.Card) string {
	return Sprintfln("%s drew and played %s!", playerName, color.PaintCard(c))
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []*card.Card, forced bool) string {
	switch {
	case forced:
		return Sprintfln("%s had to draw %d cards!", playerName, len(cards))
	case len(cards) == 1:
		return Sprintfln("%s drew a card!", playerName)
	default:
		return Sprintfln("%s drew %d cards!", playerName, len(cards))
	}
}

func (m MessageWriter) PlayerForgotSpecialCall(playerName string) string {
	return Sprintfln("%s forgot to call UNO and draws a penalty card!", playerName)
}

func (m MessageWriter) PlayerCalledSpecial(playerName string) string {
	return Sprintfln("%s calls UNO!", playerName)
}

func (m MessageWriter) PlayerPickedSuit(playerName string, suit string) string {
	if painter, err := color.ByName(suit); err == nil {
		suit = painter.Paint(suit)
	}
	return Sprintfln("%s picked %s!", playerName, suit)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c *card.Card) string {
	return Sprintfln("%s played %s!", playerName, color.PaintCard(c))
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) DrawPileRefilled(cards int) string {
	return Sprintfln("The discard pile was shuffled into a new draw pile of %d cards.", cards)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) Welcome(preset string) string {
	return Sprintfln(
		"WELCOME TO %s%s%s %s",
		color.Red.Paint("C"),
		color.Yellow.Paint("A"),
		color.Blue.Paint("RDS"),
		preset,
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func (m MessageWriter) NoWinner(turns int) string {
	return Sprintfln("Nobody won after %d turns.", turns)
}

package player

import (
	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/game"
	"github.com/ratel-online/cardgame/msg"
	"github.com/ratel-online/cardgame/ui"
)

type humanPlayer struct {
	basicPlayer
}

func NewHumanPlayer(name string) Player {
	return humanPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p humanPlayer) PickSuit(gameState game.State, suits []string) string {
	return ui.PromptSuit(suits)
}

func (p humanPlayer) Play(playableCards []*card.Card, gameState game.State) *card.Card {
	ui.Print(msg.Message.HumanPlayerTurnStarted(p.name))
	ui.Println(gameState)
	return ui.PromptCardSelection(playableCards)
}

func (p humanPlayer) CallSpecial(gameState game.State) bool {
	return ui.PromptYesNo("One card left. Call UNO?")
}

func (p humanPlayer) NotifyNoMatchingCardsInHand(lastPlayedCard *card.Card, hand []*card.Card) {
	ui.Print(msg.Message.HumanPlayerHasNoMatchingCardsInHand(p.name, lastPlayedCard, hand))
}

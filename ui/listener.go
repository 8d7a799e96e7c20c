package ui

import (
	"github.com/ratel-online/cardgame/event"
	"github.com/ratel-online/cardgame/msg"
)

// Listener prints every event of a game. Cards drawn by the human player are
// shown, other players only reveal how many they drew.
type Listener struct {
	human string
}

func NewListener(human string) *Listener {
	return &Listener{human: human}
}

func (l *Listener) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	Print(msg.Message.FirstCardPlayed(payload.Card))
}

func (l *Listener) OnCardPlayed(payload event.CardPlayedPayload) {
	Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (l *Listener) OnSuitPicked(payload event.SuitPickedPayload) {
	Print(msg.Message.PlayerPickedSuit(payload.PlayerName, payload.Suit))
}

func (l *Listener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if l.human != "" && payload.PlayerName == l.human {
		Print(msg.Message.HumanPlayerDrewCards(payload.Cards))
		return
	}
	Print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards, payload.Forced))
}

func (l *Listener) OnDrawPileRefilled(payload event.DrawPileRefilledPayload) {
	Print(msg.Message.DrawPileRefilled(payload.Cards))
}

func (l *Listener) OnTurnSkipped(payload event.TurnSkippedPayload) {
	Print(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (l *Listener) OnTurnOrderReversed(event.TurnOrderReversedPayload) {
	Print(msg.Message.TurnOrderReversed())
}

func (l *Listener) OnGameOver(payload event.GameOverPayload) {
	if payload.Winner == "" {
		return
	}
	Print(msg.Message.WinnerFound(payload.Winner))
}

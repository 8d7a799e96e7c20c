package event

import "github.com/ratel-online/cardgame/card"

type CardsDrawnPayload struct {
	PlayerName string
	Cards      []*card.Card
	// Forced is set when the cards were owed to a force-draw stack.
	Forced     bool
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}

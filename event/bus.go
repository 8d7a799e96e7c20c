package event

// Bus holds the emitters of one game. Listeners added to one game never hear
// about another.
type Bus struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	SuitPicked        *suitPickedEmitter
	CardsDrawn        *cardsDrawnEmitter
	DrawPileRefilled  *drawPileRefilledEmitter
	TurnSkipped       *turnSkippedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	GameOver          *gameOverEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		SuitPicked:        &suitPickedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		DrawPileRefilled:  &drawPileRefilledEmitter{},
		TurnSkipped:       &turnSkippedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		GameOver:          &gameOverEmitter{},
	}
}

// Listener receives every event of a game.
type Listener interface {
	FirstCardPlayedListener
	CardPlayedListener
	SuitPickedListener
	CardsDrawnListener
	DrawPileRefilledListener
	TurnSkippedListener
	TurnOrderReversedListener
	GameOverListener
}

// AddListener subscribes listener to every emitter of the bus.
func (b *Bus) AddListener(listener Listener) {
	b.FirstCardPlayed.AddListener(listener)
	b.CardPlayed.AddListener(listener)
	b.SuitPicked.AddListener(listener)
	b.CardsDrawn.AddListener(listener)
	b.DrawPileRefilled.AddListener(listener)
	b.TurnSkipped.AddListener(listener)
	b.TurnOrderReversed.AddListener(listener)
	b.GameOver.AddListener(listener)
}

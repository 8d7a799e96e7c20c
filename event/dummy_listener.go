package event

type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnSuitPicked(payload SuitPickedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnDrawPileRefilled(payload DrawPileRefilledPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnTurnSkipped(payload TurnSkippedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnTurnOrderReversed(payload TurnOrderReversedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnGameOver(payload GameOverPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

package event

type DrawPileRefilledPayload struct {
	Cards int
}

type DrawPileRefilledListener interface {
	OnDrawPileRefilled(DrawPileRefilledPayload)
}

type drawPileRefilledEmitter struct {
	listeners []DrawPileRefilledListener
}

func (e *drawPileRefilledEmitter) AddListener(listener DrawPileRefilledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *drawPileRefilledEmitter) Emit(payload DrawPileRefilledPayload) {
	for _, listener := range e.listeners {
		listener.OnDrawPileRefilled(payload)
	}
}

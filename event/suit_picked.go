package event

type SuitPickedPayload struct {
	PlayerName string
	Suit       string
}

type SuitPickedListener interface {
	OnSuitPicked(SuitPickedPayload)
}

type suitPickedEmitter struct {
	listeners []SuitPickedListener
}

func (e *suitPickedEmitter) AddListener(listener SuitPickedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *suitPickedEmitter) Emit(payload SuitPickedPayload) {
	for _, listener := range e.listeners {
		listener.OnSuitPicked(payload)
	}
}

package event

type GameOverPayload struct {
	// Winner is empty when the game ended without one.
	Winner string
}

type GameOverListener interface {
	OnGameOver(GameOverPayload)
}

type gameOverEmitter struct {
	listeners []GameOverListener
}

func (e *gameOverEmitter) AddListener(listener GameOverListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *gameOverEmitter) Emit(payload GameOverPayload) {
	for _, listener := range e.listeners {
		listener.OnGameOver(payload)
	}
}

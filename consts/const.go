package consts

import "errors"

const (
	MinPlayers = 2
	MaxPlayers = 10

	DefaultHandSize = 7
	DefaultMaxTurns = 500

	Clockwise        = 1
	CounterClockwise = -1
)

// Preset names accepted by the host configuration.
const (
	PresetUno   = "uno"
	PresetPoker = "poker"
	PresetSkat  = "skat"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInvalidValue      = NewErr(1, false, "Invalid value. ")
	ErrorsInsufficientCards = NewErr(2, false, "Insufficient cards. ")
	ErrorsNotFound          = NewErr(3, false, "Card not found. ")
	ErrorsIllegalPlay       = NewErr(4, false, "Illegal play. ")
	ErrorsMissingArgument   = NewErr(5, false, "Missing argument. ")
	// ErrorsNoCardsAvailable means neither pile has a card left to draw.
	ErrorsNoCardsAvailable = NewErr(6, true, "No cards available. ")
	ErrorsInvalidIndex     = NewErr(7, false, "Invalid index. ")
	ErrorsNoTopCard        = NewErr(8, false, "No top card. ")
	ErrorsGameOver         = NewErr(9, false, "Game is over. ")
	ErrorsGameInvalid      = NewErr(10, false, "Game invalid. ")
	ErrorsSessionInvalid   = NewErr(11, false, "Session invalid. ")

	Presets = []string{PresetUno, PresetPoker, PresetSkat}
)

// IsFatal reports whether err carries an Error that should end the session.
func IsFatal(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Exit
	}
	return false
}

package card

// Kind selects the effect a card has when it is played.
type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	ForceDraw
	Wild
	WildForceDraw
)

var kindNames = map[Kind]string{
	Number:        "Number",
	Skip:          "Skip",
	Reverse:       "Reverse",
	ForceDraw:     "ForceDraw",
	Wild:          "Wild",
	WildForceDraw: "WildForceDraw",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsWild reports whether the suit of the card is chosen when it is played.
func (k Kind) IsWild() bool {
	return k == Wild || k == WildForceDraw
}

// Draws reports whether playing the card queues a forced draw.
func (k Kind) Draws() bool {
	return k == ForceDraw || k == WildForceDraw
}

func defaultAmount(k Kind) int {
	switch k {
	case ForceDraw:
		return 2
	case WildForceDraw:
		return 4
	}
	return 0
}

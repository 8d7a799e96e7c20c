package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/ratel-online/cardgame/card"
)

type Color interface {
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	name:          "Red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "Yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "Green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "Blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Black = &colorStruct{
	name:          "Black",
	colorFunction: color.New(color.FgHiWhite, color.Bold).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// suits maps suit names of the bundled presets to the color they are drawn in.
var suits = map[string]Color{
	"Red":      Red,
	"Yellow":   Yellow,
	"Green":    Green,
	"Blue":     Blue,
	"Hearts":   Red,
	"Diamonds": Red,
	"Clubs":    Black,
	"Spades":   Black,
}

func ByName(name string) (Color, error) {
	c := suits[name]
	if c == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}

// PaintCard renders c in its suit's color. Cards without a known suit are
// drawn in Black.
func PaintCard(c *card.Card) string {
	if suit, ok := c.SuitName(); ok {
		if painter, err := ByName(suit); err == nil {
			return painter.Paint(c.String())
		}
	}
	return Black.Paint(c.String())
}

// PaintCards renders a list of cards the way fmt renders a slice.
func PaintCards(cards []*card.Card) string {
	s := "["
	for i, c := range cards {
		if i > 0 {
			s += " "
		}
		s += PaintCard(c)
	}
	return s + "]"
}

// Disable turns painting off, e.g. when output is not a terminal.
func Disable() {
	color.NoColor = true
}

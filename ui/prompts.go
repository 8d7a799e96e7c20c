package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/card/color"
)

func PromptString(message string) string {
	for {
		Println(message)
		var input string
		_, err := fmt.Fscanln(Stdin, &input)
		if err != nil {
			if isEOF(err) {
				return ""
			}
			Println("Invalid text input")
			continue
		}
		return input
	}
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func promptLowercaseString(message string) string {
	input := PromptString(message)
	return strings.ToLower(input)
}

func promptUppercaseString(message string) string {
	input := PromptString(message)
	return strings.ToUpper(input)
}

// PromptCardSelection asks for one of cards by its letter label. It returns
// nil when input ends.
func PromptCardSelection(cards []*card.Card) *card.Card {
	runeSequence := runeSequence{}
	labels := make([]string, 0, len(cards))
	cardOptions := make(map[string]*card.Card)
	for _, c := range cards {
		label := string(runeSequence.next())
		labels = append(labels, label)
		cardOptions[label] = c
	}

	cardSelectionLines := []string{"Select a card to play:"}
	for _, label := range labels {
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s (enter %s)", color.PaintCard(cardOptions[label]), label))
	}
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	for {
		selectedLabel := promptUppercaseString(cardSelectionMessage)
		if selectedLabel == "" {
			return nil
		}
		selectedCard, found := cardOptions[selectedLabel]
		if !found {
			Printfln("No card assigned to '%s'", selectedLabel)
			continue
		}
		return selectedCard
	}
}

// PromptSuit asks for one of suits by name, ignoring case. It returns the
// first suit when input ends.
func PromptSuit(suits []string) string {
	painted := make([]string, 0, len(suits))
	for _, suit := range suits {
		if painter, err := color.ByName(suit); err == nil {
			painted = append(painted, "'"+painter.Paint(suit)+"'")
			continue
		}
		painted = append(painted, "'"+suit+"'")
	}
	suitMessage := fmt.Sprintf("Select a suit: %s?", strings.Join(painted, ", "))
	for {
		suitName := promptLowercaseString(suitMessage)
		if suitName == "" {
			return suits[0]
		}
		for _, suit := range suits {
			if strings.ToLower(suit) == suitName {
				return suit
			}
		}
		Printfln("Unknown suit '%s'", suitName)
	}
}

func PromptYesNo(message string) bool {
	for {
		switch promptLowercaseString(message + " (y/n)") {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		}
	}
}

package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/cardgame/card"
)

// State is a read-only view of a game as one hand sees it.
type State struct {
	LastPlayedCard    *card.Card
	DrawPileSize      int
	DiscardPileSize   int
	PendingDraw       int
	ActiveSuit        string
	Direction         int
	CurrentPlayer     string
	CurrentPlayerHand []*card.Card
	PlayerSequence    []string
	PlayerHandCounts  []int
}

// Snapshot captures the game state. viewer's cards are included when it is
// not nil.
func (g *Game) Snapshot(viewer *Hand) State {
	state := State{
		LastPlayedCard:  g.discard.Top(),
		DrawPileSize:    g.draw.Len(),
		DiscardPileSize: g.discard.Len(),
		PendingDraw:     g.pending,
		ActiveSuit:      g.trump,
		Direction:       g.cycler.Direction(),
	}
	if current := g.CurrentHand(); current != nil {
		state.CurrentPlayer = current.Name()
	}
	if viewer != nil {
		state.CurrentPlayerHand = viewer.Cards()
	}
	for _, hand := range g.hands {
		state.PlayerSequence = append(state.PlayerSequence, hand.Name())
		state.PlayerHandCounts = append(state.PlayerHandCounts, hand.Size())
	}
	return state
}

func (g *Game) String() string {
	return g.Snapshot(nil).String()
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %v", s.LastPlayedCard))
	lines = append(lines, fmt.Sprintf("Draw pile: %d, discard pile: %d", s.DrawPileSize, s.DiscardPileSize))
	if s.ActiveSuit != "" {
		lines = append(lines, fmt.Sprintf("Active suit: %s", s.ActiveSuit))
	}
	if s.PendingDraw > 0 {
		lines = append(lines, fmt.Sprintf("Pending draw: %d", s.PendingDraw))
	}

	var playerStatuses []string
	for i, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[i])
		if playerName == s.CurrentPlayer {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	if s.CurrentPlayerHand != nil {
		lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))
	}
	return strings.Join(lines, "\n")
}

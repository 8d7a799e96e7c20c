package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/cardgame/card"
	"github.com/ratel-online/cardgame/consts"
	"github.com/ratel-online/cardgame/event"
)

// Options configures a new game.
type Options struct {
	// HandSize is the number of cards Start deals to every hand.
	HandSize int
	// Start is the seat index that plays first.
	Start int
	// Trump is the initial trump suit, empty for none.
	Trump string
	// Rand drives every shuffle of the game. A time-seeded source is used when nil.
	Rand *rand.Rand
}

// Game is the turn engine. It is not safe for concurrent use; hosts must
// serialise calls per game.
type Game struct {
	draw    *Deck
	discard *Deck
	hands   []*Hand
	cycler  *Cycler
	table   *card.Table
	rand    *rand.Rand
	events  *event.Bus

	handSize   int
	trump      string
	total      int
	pending    int
	stackKind  card.Kind
	stackDraws int

	over   bool
	winner *Hand
}

// New wires a game around existing piles and hands without dealing. The
// cards in draw, discard and hands form the fixed population of the game.
func New(draw, discard *Deck, hands []*Hand, opts Options) (*Game, error) {
	if len(hands) == 0 {
		return nil, fmt.Errorf("%wa game needs at least one hand", consts.ErrorsGameInvalid)
	}
	if draw == nil {
		draw = NewDeck()
	}
	if discard == nil {
		discard = NewDeck()
	}
	cycler, err := NewCycler(len(hands), opts.Start)
	if err != nil {
		return nil, err
	}
	if opts.HandSize <= 0 {
		opts.HandSize = consts.DefaultHandSize
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		draw:     draw,
		discard:  discard,
		hands:    append([]*Hand(nil), hands...),
		cycler:   cycler,
		rand:     opts.Rand,
		events:   event.NewBus(),
		handSize: opts.HandSize,
	}
	g.total = g.CardCount()
	if err := g.ChangeActiveSuit(opts.Trump); err != nil {
		return nil, err
	}
	return g, nil
}

// NewGame builds a shuffled draw pile from factory, seats one hand per name
// and starts the game.
func NewGame(factory func() []*card.Card, names []string, opts Options) (*Game, error) {
	if len(names) < consts.MinPlayers || len(names) > consts.MaxPlayers {
		return nil, fmt.Errorf("%w%d players, want %d to %d", consts.ErrorsGameInvalid, len(names), consts.MinPlayers, consts.MaxPlayers)
	}
	hands := make([]*Hand, 0, len(names))
	for _, name := range names {
		hands = append(hands, NewHand(name))
	}
	g, err := New(NewDeck(factory()...), NewDeck(), hands, opts)
	if err != nil {
		return nil, err
	}
	g.draw.Shuffle(g.rand)
	if err := g.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Events() *event.Bus {
	return g.events
}

// Start deals the hand size to every hand and turns the first card of the
// draw pile onto the discard pile.
func (g *Game) Start() error {
	if err := g.Deal(g.handSize); err != nil {
		return err
	}
	first, err := g.draw.DrawOne()
	if err != nil {
		return err
	}
	g.discard.AddTop(first)
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: first})
	return nil
}

// Deal gives amount cards to each of hands, or to every hand when none are
// given.
func (g *Game) Deal(amount int, hands ...*Hand) error {
	if len(hands) == 0 {
		hands = g.hands
	}
	if amount*len(hands) > g.draw.Len() {
		return fmt.Errorf("%wdealing %d to %d hands from %d cards", consts.ErrorsInsufficientCards, amount, len(hands), g.draw.Len())
	}
	for _, hand := range hands {
		cards, err := g.draw.Draw(amount)
		if err != nil {
			return err
		}
		hand.AddCards(cards...)
	}
	return nil
}

// IsLegalPlay reports whether candidate may go on top. While a forced draw
// is pending only a card of the same kind and draw amount as the one that
// started the stack is legal.
func (g *Game) IsLegalPlay(candidate, top *card.Card) bool {
	if candidate == nil || top == nil {
		return false
	}
	if g.pending > 0 {
		return Stackable(candidate, g.stackKind, g.stackDraws)
	}
	return Playable(candidate, top)
}

// PlayableCards lists the cards of hand that may be played on the discard pile.
func (g *Game) PlayableCards(hand *Hand) []*card.Card {
	top := g.discard.Top()
	var playable []*card.Card
	for _, c := range hand.Cards() {
		if g.IsLegalPlay(c, top) {
			playable = append(playable, c)
		}
	}
	return playable
}

// PlayCard moves c from hand onto the discard pile and applies its effect.
// A nil hand means the current hand. The turn is not advanced.
func (g *Game) PlayCard(c *card.Card, hand *Hand, args card.Args) error {
	return g.PlayCardOn(nil, c, hand, args)
}

// PlayCardOn is PlayCard checked against top instead of the discard pile.
// It allows opening an empty discard pile.
func (g *Game) PlayCardOn(top, c *card.Card, hand *Hand, args card.Args) error {
	if g.over {
		return consts.ErrorsGameOver
	}
	if hand == nil {
		if hand = g.CurrentHand(); hand == nil {
			return fmt.Errorf("%wno hands at the table", consts.ErrorsInvalidIndex)
		}
	}
	if top == nil {
		if top = g.discard.Top(); top == nil {
			return consts.ErrorsNoTopCard
		}
	}
	owned := hand.Find(c)
	if owned == nil {
		return fmt.Errorf("%s: %w%s", hand.Name(), consts.ErrorsNotFound, c)
	}
	if !g.IsLegalPlay(owned, top) {
		return fmt.Errorf("%w%s cannot play %s on %s", consts.ErrorsIllegalPlay, hand.Name(), owned, top)
	}
	if err := owned.CheckArgs(hand, args); err != nil {
		return err
	}
	if err := hand.RemoveCards(owned); err != nil {
		return err
	}
	g.discard.AddTop(owned)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: hand.Name(), Card: owned})
	if err := owned.Effect(g, hand, args); err != nil {
		return err
	}
	if owned.Kind().IsWild() {
		g.events.SuitPicked.Emit(event.SuitPickedPayload{PlayerName: hand.Name(), Suit: args.Suit})
	}
	return nil
}

// Discard moves cards from hand to the discard pile without any rule check
// or effect, for games that only need the piles.
func (g *Game) Discard(hand *Hand, cards ...*card.Card) error {
	if hand == nil {
		hand = g.CurrentHand()
	}
	if hand == nil {
		return fmt.Errorf("%wno hands at the table", consts.ErrorsInvalidIndex)
	}
	played, err := hand.PlayCards(cards...)
	if err != nil {
		return err
	}
	for _, c := range played {
		g.discard.AddTop(c)
	}
	return nil
}

// Draw is what a hand does instead of playing: it takes the whole pending
// forced draw, or one card when nothing is pending.
func (g *Game) Draw(hand *Hand) ([]*card.Card, error) {
	if g.over {
		return nil, consts.ErrorsGameOver
	}
	if hand == nil {
		if hand = g.CurrentHand(); hand == nil {
			return nil, fmt.Errorf("%wno hands at the table", consts.ErrorsInvalidIndex)
		}
	}
	amount, forced := 1, g.pending > 0
	if forced {
		amount = g.pending
	}
	cards, err := g.drawInto(hand, amount)
	if err != nil {
		return nil, err
	}
	if forced {
		g.clearPending()
	}
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerName: hand.Name(), Cards: cards, Forced: forced})
	return cards, nil
}

// DrawCards gives hand amount cards regardless of any pending draw, e.g. as
// a penalty.
func (g *Game) DrawCards(hand *Hand, amount int) ([]*card.Card, error) {
	if g.over {
		return nil, consts.ErrorsGameOver
	}
	if hand == nil {
		if hand = g.CurrentHand(); hand == nil {
			return nil, fmt.Errorf("%wno hands at the table", consts.ErrorsInvalidIndex)
		}
	}
	cards, err := g.drawInto(hand, amount)
	if err != nil {
		return nil, err
	}
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerName: hand.Name(), Cards: cards})
	return cards, nil
}

func (g *Game) drawInto(hand *Hand, amount int) ([]*card.Card, error) {
	if amount < 1 {
		return nil, fmt.Errorf("%wcannot draw %d cards", consts.ErrorsInsufficientCards, amount)
	}
	available := g.draw.Len()
	if g.discard.Len() > 1 {
		available += g.discard.Len() - 1
	}
	if available == 0 {
		return nil, fmt.Errorf("%wdraw pile and discard pile are exhausted", consts.ErrorsNoCardsAvailable)
	}
	if amount > available {
		return nil, fmt.Errorf("%wcannot draw %d of %d available cards", consts.ErrorsInsufficientCards, amount, available)
	}
	drawn := make([]*card.Card, 0, amount)
	for len(drawn) < amount {
		if err := g.Reshuffle(); err != nil {
			return nil, err
		}
		take := amount - len(drawn)
		if take > g.draw.Len() {
			take = g.draw.Len()
		}
		cards, err := g.draw.Draw(take)
		if err != nil {
			return nil, err
		}
		drawn = append(drawn, cards...)
	}
	hand.AddCards(drawn...)
	return drawn, nil
}

// Reshuffle refills an empty draw pile with every discarded card except the
// top one. It does nothing while the draw pile still has cards.
func (g *Game) Reshuffle() error {
	if !g.draw.Empty() {
		return nil
	}
	if g.discard.Len() <= 1 {
		return fmt.Errorf("%wnothing to reshuffle under the top card", consts.ErrorsNoCardsAvailable)
	}
	cards, err := g.discard.Draw(g.discard.Len())
	if err != nil {
		return err
	}
	g.discard.AddTop(cards[0])
	for _, c := range cards[1:] {
		if c.Kind().IsWild() {
			_ = c.SetSuit(nil)
		}
		c.SetTrump(g.trump != "" && c.HasSuit(g.trump))
	}
	g.draw.AddBottom(cards[1:]...)
	g.draw.Shuffle(g.rand)
	g.events.DrawPileRefilled.Emit(event.DrawPileRefilledPayload{Cards: g.draw.Len()})
	return nil
}

// AdvanceTurn passes the turn to the next hand and clears its special call.
func (g *Game) AdvanceTurn() error {
	if g.over {
		return consts.ErrorsGameOver
	}
	if len(g.hands) == 0 {
		return fmt.Errorf("%wno hands at the table", consts.ErrorsInvalidIndex)
	}
	if g.draw.Empty() && g.discard.Len() > 1 {
		if err := g.Reshuffle(); err != nil {
			return err
		}
	}
	g.hands[g.cycler.Next()].ResetSpecial()
	return nil
}

// SkipTurn passes over the next hand. It does nothing when no hand is seated.
func (g *Game) SkipTurn() {
	if len(g.hands) == 0 {
		return
	}
	skipped := g.hands[g.cycler.Next()]
	g.events.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: skipped.Name()})
}

// ReverseTurns flips the direction. With two hands it also skips, so the
// same hand plays again.
func (g *Game) ReverseTurns() {
	g.cycler.Reverse()
	g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{Direction: g.cycler.Direction()})
	if len(g.hands) == 2 {
		g.SkipTurn()
	}
}

func (g *Game) AddPendingDraw(kind card.Kind, amount int) {
	g.pending += amount
	g.stackKind = kind
	g.stackDraws = amount
}

func (g *Game) clearPending() {
	g.pending = 0
	g.stackKind = card.Number
	g.stackDraws = 0
}

// SetActiveSuit records the trump suit without touching the cards. An empty
// suit clears it. A game without cards has no suits to pick from.
func (g *Game) SetActiveSuit(suit string) error {
	if suit != "" {
		t := g.cardTable()
		if t == nil {
			return fmt.Errorf("%wno card table to check suit %s against", consts.ErrorsInvalidValue, suit)
		}
		if _, err := t.SuitIndex(suit); err != nil {
			return err
		}
	}
	g.trump = suit
	return nil
}

// cardTable is the table of the first card the game owns. Games that start
// empty pick it up once cards are seated.
func (g *Game) cardTable() *card.Table {
	if g.table == nil {
		g.forEachCard(func(c *card.Card) {
			if g.table == nil {
				g.table = c.Table()
			}
		})
	}
	return g.table
}

// ApplyActiveSuit flags every card of the trump suit as trump and clears the
// flag everywhere else.
func (g *Game) ApplyActiveSuit() {
	g.forEachCard(func(c *card.Card) {
		c.SetTrump(g.trump != "" && c.HasSuit(g.trump))
	})
}

func (g *Game) ChangeActiveSuit(suit string) error {
	if err := g.SetActiveSuit(suit); err != nil {
		return err
	}
	g.ApplyActiveSuit()
	return nil
}

// Winner returns the first hand in seat order without cards.
func (g *Game) Winner() *Hand {
	for _, hand := range g.hands {
		if hand.Empty() {
			return hand
		}
	}
	return nil
}

// EndGame records the winner and releases every card and hand. Further calls
// return the recorded winner without doing anything.
func (g *Game) EndGame() *Hand {
	if g.over {
		return g.winner
	}
	g.winner = g.Winner()
	g.over = true
	g.draw.Clear()
	g.discard.Clear()
	for _, hand := range g.hands {
		hand.Clear()
	}
	g.hands = nil
	g.cycler.Resize(0)
	g.clearPending()
	payload := event.GameOverPayload{}
	if g.winner != nil {
		payload.Winner = g.winner.Name()
	}
	g.events.GameOver.Emit(payload)
	return g.winner
}

func (g *Game) Over() bool {
	return g.over
}

// AddHands seats more hands after the existing ones.
func (g *Game) AddHands(hands ...*Hand) {
	for _, hand := range hands {
		g.total += hand.Size()
	}
	g.hands = append(g.hands, hands...)
	g.cycler.Resize(len(g.hands))
}

// RemoveHands unseats hands. Their cards go to the bottom of the draw pile.
func (g *Game) RemoveHands(hands ...*Hand) error {
	for _, hand := range hands {
		index := g.seatOf(hand)
		if index < 0 {
			return fmt.Errorf("%whand %s is not seated", consts.ErrorsInvalidIndex, hand.Name())
		}
		cards, _ := hand.PlayCards()
		g.draw.AddBottom(cards...)
		g.hands = append(g.hands[:index], g.hands[index+1:]...)
		if index < g.cycler.Current() {
			_ = g.cycler.Set(g.cycler.Current() - 1)
		}
		g.cycler.Resize(len(g.hands))
	}
	return nil
}

func (g *Game) seatOf(hand *Hand) int {
	for i, seated := range g.hands {
		if seated == hand {
			return i
		}
	}
	return -1
}

func (g *Game) CurrentHand() *Hand {
	if len(g.hands) == 0 {
		return nil
	}
	return g.hands[g.cycler.Current()]
}

func (g *Game) CurrentIndex() int {
	return g.cycler.Current()
}

func (g *Game) SetCurrentHand(index int) error {
	return g.cycler.Set(index)
}

// NextHand returns the hand that AdvanceTurn would move to.
func (g *Game) NextHand() *Hand {
	if len(g.hands) == 0 {
		return nil
	}
	return g.hands[g.cycler.Peek()]
}

func (g *Game) Hand(index int) (*Hand, error) {
	if index < 0 || index >= len(g.hands) {
		return nil, fmt.Errorf("%whand %d of %d", consts.ErrorsInvalidIndex, index, len(g.hands))
	}
	return g.hands[index], nil
}

func (g *Game) Hands() []*Hand {
	return append([]*Hand(nil), g.hands...)
}

func (g *Game) TopDiscard() *card.Card {
	return g.discard.Top()
}

func (g *Game) DrawPile() *Deck {
	return g.draw
}

func (g *Game) DiscardPile() *Deck {
	return g.discard
}

func (g *Game) DrawPileSize() int {
	return g.draw.Len()
}

func (g *Game) DiscardPileSize() int {
	return g.discard.Len()
}

func (g *Game) Direction() int {
	return g.cycler.Direction()
}

func (g *Game) PendingDraw() int {
	return g.pending
}

func (g *Game) ActiveSuit() string {
	return g.trump
}

func (g *Game) HandSize() int {
	return g.handSize
}

// TotalCards is the size of the card population the game started with.
func (g *Game) TotalCards() int {
	return g.total
}

// CardCount counts the cards currently owned by the piles and hands.
func (g *Game) CardCount() int {
	count := 0
	g.forEachCard(func(*card.Card) { count++ })
	return count
}

func (g *Game) forEachCard(function func(*card.Card)) {
	for _, c := range g.draw.cards {
		function(c)
	}
	for _, c := range g.discard.cards {
		function(c)
	}
	for _, hand := range g.hands {
		for _, c := range hand.cards {
			function(c)
		}
	}
}

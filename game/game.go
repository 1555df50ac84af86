package game

import (
	"errors"

	"github.com/sirupsen/logrus"

	"uno/card"
	"uno/event"
)

const startingHandSize = 7

var (
	// ErrNoTopCard means a turn started with an empty discard pile, which
	// the setup and reshuffle rules are supposed to make impossible.
	ErrNoTopCard = errors.New("no top card on the discard pile")

	// ErrGameOver means PlayTurn was called after a winner was found.
	ErrGameOver = errors.New("game is already over")

	// ErrOutOfCards means setup could not deal the starting hands.
	ErrOutOfCards = errors.New("deck ran out of cards during setup")
)

// Game owns the deck, the discard pile and the turn order, and drives
// turns to completion. Play is strictly sequential; nothing here is safe
// for concurrent use.
type Game struct {
	players []Player
	deck    *Deck
	pile    *Pile
	cycler  *Cycler
	bus     *event.Bus
	log     *logrus.Entry
	over    bool
	winner  Player
}

func New(players []Player, deck *Deck, bus *event.Bus, log *logrus.Entry) *Game {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Game{
		players: players,
		deck:    deck,
		pile:    NewPile(),
		cycler:  NewCycler(len(players)),
		bus:     bus,
		log:     log,
	}
}

// Setup deals seven cards to each player, one at a time round-robin, then
// flips the starting card. Wild and action cards are fed back into the
// deck and reshuffled until a number card comes up, so a game never opens
// on a disruptive effect.
func (g *Game) Setup() error {
	for round := 0; round < startingHandSize; round++ {
		for _, player := range g.players {
			dealt, ok := g.deck.Deal()
			if !ok {
				return ErrOutOfCards
			}
			player.AddCards([]card.Card{dealt})
		}
	}

	for {
		first, ok := g.deck.Deal()
		if !ok {
			return ErrOutOfCards
		}
		if first.IsNumber() {
			g.pile.Add(first)
			g.bus.EmitFirstCardPlayed(event.FirstCardPlayedPayload{Card: first})
			return nil
		}
		g.deck.AddCards([]card.Card{first})
		g.deck.Shuffle()
	}
}

// PlayTurn runs one full turn for the current player: offer the legal
// plays, fall back to a draw, apply card effects, check for a win, then
// advance the pointer. The win check fires before any advance, so the
// winning player's seat is where the game ends.
func (g *Game) PlayTurn() error {
	if g.over {
		return ErrGameOver
	}
	player := g.players[g.cycler.Current()]

	top, ok := g.pile.Top()
	if !ok {
		g.log.Error("turn started with no top card")
		return ErrNoTopCard
	}

	played := false
	if playable := player.PlayableCards(top); len(playable) > 0 {
		chosen, wants, err := player.ChooseCardToPlay(playable, top)
		if err != nil {
			return err
		}
		if wants {
			if err := g.playCard(player, chosen, false); err != nil {
				return err
			}
			played = true
		}
	}
	if !played {
		if err := g.handleDraw(player); err != nil {
			return err
		}
	}

	if player.HasWon() {
		g.over = true
		g.winner = player
		g.bus.EmitWinnerFound(event.WinnerFoundPayload{PlayerName: player.Name()})
		return nil
	}
	if player.HasUno() {
		g.bus.EmitUnoCalled(event.UnoCalledPayload{PlayerName: player.Name()})
	}

	g.cycler.Next()
	return nil
}

// handleDraw draws a single card for a player with nothing to play (or who
// declined to play), then offers an immediate play if the draw is legal.
func (g *Game) handleDraw(player Player) error {
	if g.drawCards(player, 1) == 0 {
		return nil
	}
	hand := player.Cards()
	drawn := hand[len(hand)-1]

	top, ok := g.pile.Top()
	if !ok {
		return ErrNoTopCard
	}
	if !drawn.CanPlayOn(top) {
		return nil
	}
	play, err := player.ShouldPlayDrawnCard(drawn, top)
	if err != nil {
		return err
	}
	if play {
		return g.playCard(player, drawn, true)
	}
	return nil
}

// playCard moves a card from the player's hand onto the pile and applies
// its effects. A card the player does not actually hold is refused rather
// than corrupting the pile.
func (g *Game) playCard(player Player, c card.Card, fromDraw bool) error {
	if !player.PlayCard(c) {
		g.log.WithFields(logrus.Fields{
			"player": player.Name(),
			"card":   c.String(),
		}).Warn("refused play of a card not in hand")
		return nil
	}
	g.pile.Add(c)
	g.bus.EmitCardPlayed(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       c,
		FromDraw:   fromDraw,
	})
	if c.IsAction() {
		return g.applyCardEffects(player, c)
	}
	return nil
}

// applyCardEffects runs an action card's side effects. Any extra pointer
// movement happens here; the normal end-of-turn advance still follows.
func (g *Game) applyCardEffects(player Player, c card.Card) error {
	switch c.Rank {
	case card.Skip:
		g.skipNext()
	case card.Reverse:
		g.cycler.Reverse()
		g.bus.EmitTurnReversed(event.TurnReversedPayload{})
		// With two players a reverse acts as a skip, otherwise the
		// same player would go twice.
		if len(g.players) == 2 {
			g.cycler.Next()
		}
	case card.DrawTwo:
		g.forceDrawAndSkip(2)
	case card.Wild:
		return g.pickColour(player)
	case card.WildDrawFour:
		if err := g.pickColour(player); err != nil {
			return err
		}
		g.forceDrawAndSkip(4)
	}
	return nil
}

func (g *Game) skipNext() {
	skipped := g.players[g.cycler.Peek()]
	g.bus.EmitTurnSkipped(event.TurnSkippedPayload{PlayerName: skipped.Name()})
	g.cycler.Next()
}

// forceDrawAndSkip makes the next player in turn order draw, then skips
// their turn entirely.
func (g *Game) forceDrawAndSkip(amount int) {
	target := g.players[g.cycler.Peek()]
	g.drawCards(target, amount)
	g.skipNext()
}

func (g *Game) pickColour(player Player) error {
	chosen, err := player.ChooseWildColour()
	if err != nil {
		return err
	}
	g.pile.PaintTop(chosen)
	g.bus.EmitColourPicked(event.ColourPickedPayload{
		PlayerName: player.Name(),
		Colour:     chosen,
	})
	return nil
}

// drawCards moves up to amount cards from the deck to the player's hand,
// reshuffling the discard pile into the deck as needed. When neither the
// deck nor the pile can supply a card, the rest of the batch is abandoned.
func (g *Game) drawCards(player Player, amount int) int {
	drawn := 0
	for i := 0; i < amount; i++ {
		if g.deck.Empty() && !g.reshuffle() {
			g.log.WithField("player", player.Name()).Warn("deck and discard pile exhausted, draw abandoned")
			g.bus.EmitDeckExhausted(event.DeckExhaustedPayload{PlayerName: player.Name()})
			break
		}
		dealt, ok := g.deck.Deal()
		if !ok {
			break
		}
		player.AddCards([]card.Card{dealt})
		drawn++
	}
	if drawn > 0 {
		g.bus.EmitCardsDrawn(event.CardsDrawnPayload{
			PlayerName: player.Name(),
			Count:      drawn,
		})
	}
	return drawn
}

// reshuffle folds everything but the live top card back into the deck.
// It fails when the pile has no spare cards to give.
func (g *Game) reshuffle() bool {
	if g.pile.Size() <= 1 {
		return false
	}
	g.deck.AddCards(g.pile.TakeAllButTop())
	g.deck.Shuffle()
	g.log.WithField("deck_size", g.deck.Size()).Info("reshuffled discard pile into deck")
	return true
}

func (g *Game) Over() bool {
	return g.over
}

func (g *Game) Winner() Player {
	return g.winner
}

func (g *Game) CurrentPlayer() Player {
	return g.players[g.cycler.Current()]
}

func (g *Game) Players() []Player {
	return g.players
}

func (g *Game) TopCard() (card.Card, bool) {
	return g.pile.Top()
}

// TotalCards counts every card in play: deck, discard pile and all hands.
// The total stays at 108 for the whole game.
func (g *Game) TotalCards() int {
	total := g.deck.Size() + g.pile.Size()
	for _, player := range g.players {
		total += player.HandSize()
	}
	return total
}

package game

import (
	"math/rand"

	"uno/card"
	"uno/card/colour"
)

// Deck is the face-down draw stack. The randomness source is injected so
// shuffles are reproducible under a seeded source.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// NewDeck builds the full 108-card deck, shuffled: per colour one 0, two
// each of 1-9, Skip, Reverse and Draw2, plus four Wild and four Draw4.
func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{rng: rng}
	deck.cards = append(deck.cards, createWildCards()...)
	for _, cardColour := range colour.Canonical() {
		deck.cards = append(deck.cards, createColourCards(cardColour)...)
	}
	deck.Shuffle()
	return deck
}

func createColourCards(cardColour colour.Colour) []card.Card {
	cards := []card.Card{card.New(cardColour, 0)}
	for number := card.Rank(1); number <= 9; number++ {
		numberCard := card.New(cardColour, number)
		cards = append(cards, numberCard, numberCard)
	}
	for _, rank := range []card.Rank{card.Skip, card.Reverse, card.DrawTwo} {
		actionCard := card.New(cardColour, rank)
		cards = append(cards, actionCard, actionCard)
	}
	return cards
}

func createWildCards() []card.Card {
	wildCard := card.New(colour.Black, card.Wild)
	drawFourCard := card.New(colour.Black, card.WildDrawFour)
	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		drawFourCard, drawFourCard, drawFourCard, drawFourCard,
	}
}

// Deal removes and returns the top card. The second result is false when
// the deck is empty; callers must check it before using the card.
func (d *Deck) Deal() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	dealt := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return dealt, true
}

// AddCards returns cards to the deck, stripping any colour previously
// assigned to a wild. Only the reshuffle path and the starting-card flip
// feed cards back in.
func (d *Deck) AddCards(cards []card.Card) {
	for _, c := range cards {
		d.cards = append(d.cards, c.ResetWildColour())
	}
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

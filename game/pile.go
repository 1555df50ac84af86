package game

import (
	"uno/card"
	"uno/card/colour"
)

// Pile is the face-up discard stack. Only the top card governs legality.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(c card.Card) {
	p.cards = append(p.cards, c)
}

// Top returns the live card; false when the pile is empty.
func (p *Pile) Top() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// PaintTop sets the effective colour of the top card. The pile entry, not
// some shared card object, carries the colour a wild was assigned.
func (p *Pile) PaintTop(chosen colour.Colour) {
	if len(p.cards) == 0 {
		return
	}
	p.cards[len(p.cards)-1] = p.cards[len(p.cards)-1].WithColour(chosen)
}

// TakeAllButTop removes and returns every card except the live top one,
// leaving a single-card pile. Feeds the reshuffle.
func (p *Pile) TakeAllButTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	taken := make([]card.Card, len(p.cards)-1)
	copy(taken, p.cards[:len(p.cards)-1])
	p.cards = p.cards[len(p.cards)-1:]
	return taken
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Size() int {
	return len(p.cards)
}

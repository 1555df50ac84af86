package player

import (
	"uno/card"
	"uno/game"
)

// base carries the name and hand shared by every player variant. The
// decision hooks live on the variants.
type base struct {
	name string
	hand *game.Hand
}

func newBase(name string) base {
	return base{
		name: name,
		hand: game.NewHand(),
	}
}

func (b *base) Name() string {
	return b.name
}

func (b *base) AddCards(cards []card.Card) {
	b.hand.AddCards(cards)
}

func (b *base) Cards() []card.Card {
	return b.hand.Cards()
}

func (b *base) PlayableCards(top card.Card) []card.Card {
	return b.hand.PlayableCards(top)
}

func (b *base) PlayCard(c card.Card) bool {
	return b.hand.Remove(c)
}

func (b *base) HandSize() int {
	return b.hand.Size()
}

func (b *base) HasUno() bool {
	return b.hand.Size() == 1
}

func (b *base) HasWon() bool {
	return b.hand.Empty()
}

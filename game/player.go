package game

import (
	"uno/card"
	"uno/card/colour"
)

// Player is what the engine knows about a participant: a named hand plus
// three decision hooks. The engine never depends on a concrete variant.
type Player interface {
	Name() string

	AddCards(cards []card.Card)
	Cards() []card.Card
	PlayableCards(top card.Card) []card.Card
	PlayCard(c card.Card) bool
	HandSize() int
	HasUno() bool
	HasWon() bool

	// ChooseCardToPlay picks one of the playable cards, or declines
	// (second result false) to draw instead.
	ChooseCardToPlay(playable []card.Card, top card.Card) (card.Card, bool, error)

	// ChooseWildColour picks the colour a just-played wild card takes.
	ChooseWildColour() (colour.Colour, error)

	// ShouldPlayDrawnCard decides whether a freshly drawn, legal card is
	// played immediately. Never consulted for an illegal draw.
	ShouldPlayDrawnCard(drawn card.Card, top card.Card) (bool, error)
}

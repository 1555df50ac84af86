package card

import (
	"fmt"

	"uno/card/colour"
)

// Rank is a card face value. Ranks 0-9 are the number cards; the rest
// trigger an effect when played.
type Rank int

const (
	Skip Rank = 10 + iota
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

func (r Rank) String() string {
	if r >= 0 && r <= 9 {
		return fmt.Sprintf("%d", int(r))
	}
	switch r {
	case Skip:
		return "Skip"
	case Reverse:
		return "Reverse"
	case DrawTwo:
		return "Draw2"
	case Wild:
		return "Wild"
	case WildDrawFour:
		return "Draw4"
	default:
		return fmt.Sprintf("Rank(%d)", int(r))
	}
}

// Card is a plain comparable value. Two cards are the same card exactly
// when their colour and rank match.
type Card struct {
	Colour colour.Colour
	Rank   Rank
}

// New builds a card. Wild ranks always come out Black regardless of the
// colour argument; a colour is only assigned once the card is played.
func New(c colour.Colour, r Rank) Card {
	if r == Wild || r == WildDrawFour {
		c = colour.Black
	}
	return Card{Colour: c, Rank: r}
}

// CanPlayOn reports whether the card is a legal play on top of other.
// Wild ranks are playable on anything.
func (c Card) CanPlayOn(other Card) bool {
	return c.Colour == other.Colour || c.Rank == other.Rank || c.IsWild()
}

func (c Card) IsWild() bool {
	return c.Rank == Wild || c.Rank == WildDrawFour
}

func (c Card) IsAction() bool {
	return c.Rank >= Skip
}

func (c Card) IsNumber() bool {
	return c.Rank >= 0 && c.Rank <= 9
}

// WithColour returns a copy carrying the given effective colour. Used when
// a wild card lands on the discard pile and its player picks a colour.
func (c Card) WithColour(chosen colour.Colour) Card {
	c.Colour = chosen
	return c
}

// ResetWildColour strips any assigned colour from a wild rank so the card
// re-enters circulation colour-neutral. Non-wild cards pass through as is.
func (c Card) ResetWildColour() Card {
	if c.IsWild() {
		c.Colour = colour.Black
	}
	return c
}

func (c Card) String() string {
	return c.Colour.Paintf("%s %s", c.Colour.Name(), c.Rank)
}

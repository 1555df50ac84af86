package game

import (
	"uno/card"
)

// Hand is one player's cards. Removal keeps hand order because the human
// player addresses cards by their displayed index.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// PlayableCards filters the hand against the top card, preserving hand order.
func (h *Hand) PlayableCards(top card.Card) []card.Card {
	var playable []card.Card
	for _, candidate := range h.cards {
		if candidate.CanPlayOn(top) {
			playable = append(playable, candidate)
		}
	}
	return playable
}

// Remove takes the first matching card out of the hand. It reports false,
// leaving the hand untouched, when no copy of the card is held.
func (h *Hand) Remove(c card.Card) bool {
	for index, held := range h.cards {
		if held == c {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

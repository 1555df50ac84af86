package player

import (
	"uno/card"
	"uno/card/colour"
	"uno/game"
)

// Computer is a deterministic rule-based opponent. Ties always resolve to
// the earliest card in hand order, so the same position produces the same
// play every time.
type Computer struct {
	base
}

func NewComputer(name string) *Computer {
	return &Computer{base: newBase(name)}
}

var _ game.Player = (*Computer)(nil)

// ChooseCardToPlay prefers, in order: a non-wild card matching the top
// card's colour (numbers before actions), any number card, any non-wild
// action card, and a wild only as a last resort.
func (c *Computer) ChooseCardToPlay(playable []card.Card, top card.Card) (card.Card, bool, error) {
	var sameColourNumbers, sameColourActions []card.Card
	var numbers, actions, wilds []card.Card

	for _, candidate := range playable {
		switch {
		case candidate.IsWild():
			wilds = append(wilds, candidate)
		case candidate.Colour == top.Colour && candidate.IsNumber():
			sameColourNumbers = append(sameColourNumbers, candidate)
		case candidate.Colour == top.Colour:
			sameColourActions = append(sameColourActions, candidate)
		case candidate.IsNumber():
			numbers = append(numbers, candidate)
		default:
			actions = append(actions, candidate)
		}
	}

	for _, group := range [][]card.Card{sameColourNumbers, sameColourActions, numbers, actions, wilds} {
		if len(group) > 0 {
			return group[0], true, nil
		}
	}
	return card.Card{}, false, nil
}

// ChooseWildColour picks the colour the hand holds most of, breaking ties
// toward the canonical order. A hand with no coloured cards defaults to
// the first canonical colour.
func (c *Computer) ChooseWildColour() (colour.Colour, error) {
	counts := make(map[colour.Colour]int)
	for _, held := range c.Cards() {
		counts[held.Colour]++
	}

	best := colour.Canonical()[0]
	bestCount := 0
	for _, candidate := range colour.Canonical() {
		if counts[candidate] > bestCount {
			best = candidate
			bestCount = counts[candidate]
		}
	}
	return best, nil
}

// ShouldPlayDrawnCard always plays a legal draw; the engine never asks
// about an illegal one.
func (c *Computer) ShouldPlayDrawnCard(drawn card.Card, top card.Card) (bool, error) {
	return true, nil
}

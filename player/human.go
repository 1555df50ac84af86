package player

import (
	"uno/card"
	"uno/card/colour"
	"uno/game"
	"uno/ui"
)

// Human makes decisions by prompting on the terminal. Every prompt
// re-asks until the answer is valid, so bad input never escapes.
type Human struct {
	base
	prompter *ui.Prompter
}

func NewHuman(name string, prompter *ui.Prompter) *Human {
	return &Human{
		base:     newBase(name),
		prompter: prompter,
	}
}

var _ game.Player = (*Human)(nil)

func (h *Human) ChooseCardToPlay(playable []card.Card, top card.Card) (card.Card, bool, error) {
	hand := h.Cards()
	ui.Message.Hand(hand)
	ui.Message.PlayableHints(hand, playable)

	for {
		input, err := h.prompter.ReadLine("Choose a card to play (by index), or 'd' to draw: ")
		if err != nil {
			return card.Card{}, false, err
		}
		index, draw, parseErr := ui.ParseCardChoice(input, len(hand))
		if parseErr != nil {
			ui.Println(parseErr)
			continue
		}
		if draw {
			return card.Card{}, false, nil
		}
		chosen := hand[index]
		if !chosen.CanPlayOn(top) {
			ui.Message.IllegalPlay()
			continue
		}
		return chosen, true, nil
	}
}

func (h *Human) ChooseWildColour() (colour.Colour, error) {
	ui.Message.ColourMenu()
	for {
		input, err := h.prompter.ReadLine("Enter colour number or name: ")
		if err != nil {
			return colour.Black, err
		}
		chosen, parseErr := colour.ByChoice(input)
		if parseErr != nil {
			ui.Println("Invalid colour. Please try again.")
			continue
		}
		return chosen, nil
	}
}

func (h *Human) ShouldPlayDrawnCard(drawn card.Card, top card.Card) (bool, error) {
	ui.Message.DrewPlayableCard(drawn)
	return h.prompter.PromptYesNo("Play it? (y/n): ")
}

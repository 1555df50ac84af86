package ui

import (
	"uno/event"
)

// Narrator turns game events into printed commentary. It is the only
// event listener in an interactive session.
type Narrator struct{}

func NewNarrator() *Narrator {
	return &Narrator{}
}

func (n *Narrator) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	Message.StartingCard(payload.Card)
	Message.Divider()
}

func (n *Narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.FromDraw {
		Printfln("%s drew and played %s!", payload.PlayerName, payload.Card)
		return
	}
	Printfln("%s plays: %s", payload.PlayerName, payload.Card)
}

func (n *Narrator) OnColourPicked(payload event.ColourPickedPayload) {
	Printfln("%s changes the colour to %s.", payload.PlayerName, payload.Colour)
}

func (n *Narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Count == 1 {
		Printfln("%s draws 1 card.", payload.PlayerName)
		return
	}
	Printfln("%s draws %d cards.", payload.PlayerName, payload.Count)
}

func (n *Narrator) OnTurnSkipped(payload event.TurnSkippedPayload) {
	Printfln("Skipping %s's turn!", payload.PlayerName)
}

func (n *Narrator) OnTurnReversed(payload event.TurnReversedPayload) {
	Println("Turn order reversed!")
}

func (n *Narrator) OnUnoCalled(payload event.UnoCalledPayload) {
	Printfln("%s has UNO!", payload.PlayerName)
}

func (n *Narrator) OnDeckExhausted(payload event.DeckExhaustedPayload) {
	Message.CannotReshuffle()
}

func (n *Narrator) OnWinnerFound(payload event.WinnerFoundPayload) {
	Printfln("\n%s wins! Game over!", payload.PlayerName)
}

package ui

import (
	"fmt"
	"strings"

	"uno/card"
	"uno/card/colour"
	"uno/game"
)

var Message = MessageWriter{}

// MessageWriter holds every line of turn narration and banner text.
type MessageWriter struct{}

const banner = `
    ██╗   ██╗███╗   ██╗ ██████╗
    ██║   ██║████╗  ██║██╔═══██╗
    ██║   ██║██╔██╗ ██║██║   ██║
    ██║   ██║██║╚██╗██║██║   ██║
    ╚██████╔╝██║ ╚████║╚██████╔╝
     ╚═════╝ ╚═╝  ╚═══╝ ╚═════╝
`

func (m MessageWriter) Welcome() {
	Printfln(
		"WELCOME TO %s%s%s!",
		colour.Red.Paint("U"),
		colour.Yellow.Paint("N"),
		colour.Blue.Paint("O"),
	)
	Printfln("%s", banner)
}

func (m MessageWriter) Divider() {
	Println(strings.Repeat("=", 40))
}

func (m MessageWriter) TurnStarted(playerName string) {
	Printfln("\n--- %s's turn ---", playerName)
}

func (m MessageWriter) TopCard(top card.Card) {
	Printfln("Top card: %s", top)
}

func (m MessageWriter) StartingCard(top card.Card) {
	Printfln("Starting card: %s", top)
}

// Hand lists the player's cards with their 1-based selection indices.
func (m MessageWriter) Hand(cards []card.Card) {
	Printfln("\nYour hand (%d cards):", len(cards))
	for i, c := range cards {
		Printfln("  %d: %s", i+1, c)
	}
}

// PlayableHints points out which hand indices are legal plays.
func (m MessageWriter) PlayableHints(hand []card.Card, playable []card.Card) {
	if len(playable) == 0 {
		return
	}
	var indices []string
	for i, held := range hand {
		for _, p := range playable {
			if held == p {
				indices = append(indices, fmt.Sprintf("%d", i+1))
				break
			}
		}
	}
	Printfln("Playable cards: %s", strings.Join(indices, ", "))
}

func (m MessageWriter) IllegalPlay() {
	Println("Invalid play. That card cannot be played on the current top card.")
}

func (m MessageWriter) NoPlayableCards(playerName string) {
	Printfln("%s has no playable cards and must draw.", playerName)
}

func (m MessageWriter) DrewPlayableCard(drawn card.Card) {
	Printfln("You drew: %s", drawn)
	Println("You can play the card you just drew.")
}

func (m MessageWriter) ColourMenu() {
	Println("\nChoose a new colour:")
	for i, c := range colour.Canonical() {
		Printfln("  %d: %s", i+1, c)
	}
}

func (m MessageWriter) CannotReshuffle() {
	Println("Cannot reshuffle - not enough cards in the discard pile!")
}

func (m MessageWriter) FinalCounts(players []game.Player) {
	Println("\nFinal card count:")
	for _, p := range players {
		Printfln("  %s: %d cards", p.Name(), p.HandSize())
	}
}

func (m MessageWriter) NewGame() {
	Println("\nStarting new game...")
}

func (m MessageWriter) GameAborted(reason string) {
	Printfln("An error occurred: %s", reason)
	Println("Starting a new game...")
}

func (m MessageWriter) Farewell() {
	Println("Thanks for playing UNO!")
}

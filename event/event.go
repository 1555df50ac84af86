package event

import (
	"uno/card"
	"uno/card/colour"
)

type FirstCardPlayedPayload struct {
	Card card.Card
}

type CardPlayedPayload struct {
	PlayerName string
	Card       card.Card
	FromDraw   bool
}

type ColourPickedPayload struct {
	PlayerName string
	Colour     colour.Colour
}

type CardsDrawnPayload struct {
	PlayerName string
	Count      int
}

type TurnSkippedPayload struct {
	PlayerName string
}

type TurnReversedPayload struct{}

type UnoCalledPayload struct {
	PlayerName string
}

// DeckExhaustedPayload reports a draw that found both the deck and the
// spare discard cards empty.
type DeckExhaustedPayload struct {
	PlayerName string
}

type WinnerFoundPayload struct {
	PlayerName string
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type ColourPickedListener interface {
	OnColourPicked(ColourPickedPayload)
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

type TurnReversedListener interface {
	OnTurnReversed(TurnReversedPayload)
}

type UnoCalledListener interface {
	OnUnoCalled(UnoCalledPayload)
}

type DeckExhaustedListener interface {
	OnDeckExhausted(DeckExhaustedPayload)
}

type WinnerFoundListener interface {
	OnWinnerFound(WinnerFoundPayload)
}

// Listener is the full set of game observations. The narrator implements
// all of them; tests use DummyListener.
type Listener interface {
	FirstCardPlayedListener
	CardPlayedListener
	ColourPickedListener
	CardsDrawnListener
	TurnSkippedListener
	TurnReversedListener
	UnoCalledListener
	DeckExhaustedListener
	WinnerFoundListener
}

// Bus fans game events out to listeners. Each game owns its own bus, so a
// fresh game never inherits the previous game's listeners.
type Bus struct {
	listeners []Listener
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) AddListener(listener Listener) {
	b.listeners = append(b.listeners, listener)
}

func (b *Bus) EmitFirstCardPlayed(payload FirstCardPlayedPayload) {
	for _, listener := range b.listeners {
		listener.OnFirstCardPlayed(payload)
	}
}

func (b *Bus) EmitCardPlayed(payload CardPlayedPayload) {
	for _, listener := range b.listeners {
		listener.OnCardPlayed(payload)
	}
}

func (b *Bus) EmitColourPicked(payload ColourPickedPayload) {
	for _, listener := range b.listeners {
		listener.OnColourPicked(payload)
	}
}

func (b *Bus) EmitCardsDrawn(payload CardsDrawnPayload) {
	for _, listener := range b.listeners {
		listener.OnCardsDrawn(payload)
	}
}

func (b *Bus) EmitTurnSkipped(payload TurnSkippedPayload) {
	for _, listener := range b.listeners {
		listener.OnTurnSkipped(payload)
	}
}

func (b *Bus) EmitTurnReversed(payload TurnReversedPayload) {
	for _, listener := range b.listeners {
		listener.OnTurnReversed(payload)
	}
}

func (b *Bus) EmitUnoCalled(payload UnoCalledPayload) {
	for _, listener := range b.listeners {
		listener.OnUnoCalled(payload)
	}
}

func (b *Bus) EmitDeckExhausted(payload DeckExhaustedPayload) {
	for _, listener := range b.listeners {
		listener.OnDeckExhausted(payload)
	}
}

func (b *Bus) EmitWinnerFound(payload WinnerFoundPayload) {
	for _, listener := range b.listeners {
		listener.OnWinnerFound(payload)
	}
}

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uno/card"
	"uno/card/colour"
	"uno/event"
)

func TestBusFansOutInOrder(t *testing.T) {
	bus := event.NewBus()
	dummy := event.NewDummyListener()
	bus.AddListener(dummy)

	bus.EmitFirstCardPlayed(event.FirstCardPlayedPayload{Card: card.New(colour.Red, 3)})
	bus.EmitCardPlayed(event.CardPlayedPayload{PlayerName: "A", Card: card.New(colour.Red, 5)})
	bus.EmitColourPicked(event.ColourPickedPayload{PlayerName: "A", Colour: colour.Blue})
	bus.EmitCardsDrawn(event.CardsDrawnPayload{PlayerName: "B", Count: 2})
	bus.EmitTurnSkipped(event.TurnSkippedPayload{PlayerName: "B"})
	bus.EmitTurnReversed(event.TurnReversedPayload{})
	bus.EmitUnoCalled(event.UnoCalledPayload{PlayerName: "A"})
	bus.EmitDeckExhausted(event.DeckExhaustedPayload{PlayerName: "B"})
	bus.EmitWinnerFound(event.WinnerFoundPayload{PlayerName: "A"})

	require.Equal(t, []interface{}{
		event.FirstCardPlayedPayload{Card: card.New(colour.Red, 3)},
		event.CardPlayedPayload{PlayerName: "A", Card: card.New(colour.Red, 5)},
		event.ColourPickedPayload{PlayerName: "A", Colour: colour.Blue},
		event.CardsDrawnPayload{PlayerName: "B", Count: 2},
		event.TurnSkippedPayload{PlayerName: "B"},
		event.TurnReversedPayload{},
		event.UnoCalledPayload{PlayerName: "A"},
		event.DeckExhaustedPayload{PlayerName: "B"},
		event.WinnerFoundPayload{PlayerName: "A"},
	}, dummy.ReceivedPayloads())
}

func TestEveryListenerReceivesEveryEvent(t *testing.T) {
	bus := event.NewBus()
	first := event.NewDummyListener()
	second := event.NewDummyListener()
	bus.AddListener(first)
	bus.AddListener(second)

	bus.EmitTurnReversed(event.TurnReversedPayload{})

	assert.Len(t, first.ReceivedPayloads(), 1)
	assert.Len(t, second.ReceivedPayloads(), 1)
}

func TestFreshBusHasNoListeners(t *testing.T) {
	stale := event.NewDummyListener()
	bus := event.NewBus()
	bus.AddListener(stale)

	replacement := event.NewBus()
	replacement.EmitTurnReversed(event.TurnReversedPayload{})

	assert.Empty(t, stale.ReceivedPayloads())
}

package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uno/card"
	"uno/card/colour"
	"uno/game"
)

func TestHandAddCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.New(colour.Blue, 7),
		card.New(colour.Black, card.Wild),
	})
	require.Equal(t, []card.Card{
		card.New(colour.Blue, 7),
		card.New(colour.Black, card.Wild),
	}, hand.Cards())
}

func TestHandEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.Add(card.New(colour.Blue, 7))
	require.False(t, hand.Empty())
}

func TestHandPlayableCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.New(colour.Blue, 5),
		card.New(colour.Green, 8),
		card.New(colour.Green, 7),
		card.New(colour.Black, card.Wild),
		card.New(colour.Yellow, card.Reverse),
		card.New(colour.Blue, card.DrawTwo),
	})

	playable := hand.PlayableCards(card.New(colour.Blue, 7))

	// Hand order survives the filter.
	require.Equal(t, []card.Card{
		card.New(colour.Blue, 5),
		card.New(colour.Green, 7),
		card.New(colour.Black, card.Wild),
		card.New(colour.Blue, card.DrawTwo),
	}, playable)
}

func TestHandRemove(t *testing.T) {
	t.Run("removes_an_existing_card_preserving_order", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.New(colour.Black, card.Wild),
			card.New(colour.Yellow, card.Reverse),
			card.New(colour.Blue, card.DrawTwo),
		})

		require.True(t, hand.Remove(card.New(colour.Yellow, card.Reverse)))
		require.Equal(t, []card.Card{
			card.New(colour.Black, card.Wild),
			card.New(colour.Blue, card.DrawTwo),
		}, hand.Cards())
	})

	t.Run("reports_false_for_a_card_not_in_hand", func(t *testing.T) {
		hand := game.NewHand()
		hand.Add(card.New(colour.Black, card.Wild))

		require.False(t, hand.Remove(card.New(colour.Red, card.DrawTwo)))
		require.Equal(t, 1, hand.Size())
	})

	t.Run("removes_a_single_copy_of_a_duplicated_card", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.New(colour.Black, card.Wild),
			card.New(colour.Red, 6),
			card.New(colour.Red, 6),
		})

		require.True(t, hand.Remove(card.New(colour.Red, 6)))
		require.Equal(t, []card.Card{
			card.New(colour.Black, card.Wild),
			card.New(colour.Red, 6),
		}, hand.Cards())
	})
}

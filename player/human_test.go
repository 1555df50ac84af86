package player_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uno/card"
	"uno/card/colour"
	"uno/player"
	"uno/ui"
)

func newScriptedHuman(t *testing.T, input string, cards ...card.Card) *player.Human {
	t.Helper()
	prompter := ui.NewPrompter(strings.NewReader(input), &bytes.Buffer{})
	human := player.NewHuman("You", prompter)
	human.AddCards(cards)
	return human
}

func TestHumanChooseCardToPlay(t *testing.T) {
	top := card.New(colour.Red, 3)
	hand := []card.Card{
		card.New(colour.Blue, 5),
		card.New(colour.Red, 5),
	}

	t.Run("accepts_a_legal_index", func(t *testing.T) {
		human := newScriptedHuman(t, "2\n", hand...)

		chosen, wants, err := human.ChooseCardToPlay(human.PlayableCards(top), top)
		require.NoError(t, err)
		require.True(t, wants)
		assert.Equal(t, card.New(colour.Red, 5), chosen)
	})

	t.Run("re_prompts_past_garbage_and_bad_indices", func(t *testing.T) {
		human := newScriptedHuman(t, "x\n99\n0\n2\n", hand...)

		chosen, wants, err := human.ChooseCardToPlay(human.PlayableCards(top), top)
		require.NoError(t, err)
		require.True(t, wants)
		assert.Equal(t, card.New(colour.Red, 5), chosen)
	})

	t.Run("rejects_an_illegal_card_until_a_legal_one", func(t *testing.T) {
		human := newScriptedHuman(t, "1\n2\n", hand...)

		chosen, wants, err := human.ChooseCardToPlay(human.PlayableCards(top), top)
		require.NoError(t, err)
		require.True(t, wants)
		assert.Equal(t, card.New(colour.Red, 5), chosen)
	})

	t.Run("d_declines_in_favour_of_a_draw", func(t *testing.T) {
		human := newScriptedHuman(t, "d\n", hand...)

		_, wants, err := human.ChooseCardToPlay(human.PlayableCards(top), top)
		require.NoError(t, err)
		assert.False(t, wants)
	})

	t.Run("closed_input_surfaces_as_an_error", func(t *testing.T) {
		human := newScriptedHuman(t, "", hand...)

		_, _, err := human.ChooseCardToPlay(human.PlayableCards(top), top)
		require.ErrorIs(t, err, ui.ErrInputClosed)
	})
}

func TestHumanChooseWildColour(t *testing.T) {
	t.Run("accepts_a_numeral", func(t *testing.T) {
		human := newScriptedHuman(t, "4\n")
		chosen, err := human.ChooseWildColour()
		require.NoError(t, err)
		assert.Equal(t, colour.Yellow, chosen)
	})

	t.Run("accepts_a_name_in_any_case", func(t *testing.T) {
		human := newScriptedHuman(t, "gReEn\n")
		chosen, err := human.ChooseWildColour()
		require.NoError(t, err)
		assert.Equal(t, colour.Green, chosen)
	})

	t.Run("re_prompts_on_invalid_colours", func(t *testing.T) {
		human := newScriptedHuman(t, "purple\n7\nblue\n")
		chosen, err := human.ChooseWildColour()
		require.NoError(t, err)
		assert.Equal(t, colour.Blue, chosen)
	})
}

func TestHumanShouldPlayDrawnCard(t *testing.T) {
	top := card.New(colour.Red, 3)
	drawn := card.New(colour.Red, 9)

	t.Run("yes_plays_the_card", func(t *testing.T) {
		human := newScriptedHuman(t, "y\n")
		play, err := human.ShouldPlayDrawnCard(drawn, top)
		require.NoError(t, err)
		assert.True(t, play)
	})

	t.Run("no_keeps_the_card", func(t *testing.T) {
		human := newScriptedHuman(t, "no\n")
		play, err := human.ShouldPlayDrawnCard(drawn, top)
		require.NoError(t, err)
		assert.False(t, play)
	})

	t.Run("re_prompts_until_an_answer_parses", func(t *testing.T) {
		human := newScriptedHuman(t, "maybe\nYES\n")
		play, err := human.ShouldPlayDrawnCard(drawn, top)
		require.NoError(t, err)
		assert.True(t, play)
	})
}

func TestBaseHandOperations(t *testing.T) {
	human := newScriptedHuman(t, "",
		card.New(colour.Red, 5),
	)

	assert.Equal(t, "You", human.Name())
	assert.True(t, human.HasUno())
	assert.False(t, human.HasWon())

	require.True(t, human.PlayCard(card.New(colour.Red, 5)))
	assert.True(t, human.HasWon())
	assert.False(t, human.HasUno())

	require.False(t, human.PlayCard(card.New(colour.Red, 5)), "playing an absent card degrades safely")
}

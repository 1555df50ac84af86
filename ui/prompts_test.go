package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uno/ui"
)

func TestReadLine(t *testing.T) {
	t.Run("prints_the_message_and_returns_the_line", func(t *testing.T) {
		var out bytes.Buffer
		prompter := ui.NewPrompter(strings.NewReader("hello\n"), &out)

		line, err := prompter.ReadLine("Say something: ")
		require.NoError(t, err)
		assert.Equal(t, "hello", line)
		assert.Equal(t, "Say something: ", out.String())
	})

	t.Run("exhausted_input_yields_ErrInputClosed", func(t *testing.T) {
		prompter := ui.NewPrompter(strings.NewReader(""), &bytes.Buffer{})

		_, err := prompter.ReadLine("Anything? ")
		require.ErrorIs(t, err, ui.ErrInputClosed)
	})
}

func TestPromptYesNo(t *testing.T) {
	t.Run("re_prompts_until_a_valid_answer", func(t *testing.T) {
		var out bytes.Buffer
		prompter := ui.NewPrompter(strings.NewReader("dunno\n\nn\n"), &out)

		answer, err := prompter.PromptYesNo("Play again? (y/n): ")
		require.NoError(t, err)
		assert.False(t, answer)
		assert.Equal(t, 3, strings.Count(out.String(), "Play again?"))
	})

	t.Run("propagates_closed_input", func(t *testing.T) {
		prompter := ui.NewPrompter(strings.NewReader("huh\n"), &bytes.Buffer{})

		_, err := prompter.PromptYesNo("Play again? (y/n): ")
		require.ErrorIs(t, err, ui.ErrInputClosed)
	})
}

package console_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anfomin/helperscore/console"
)

func TestPrompt(t *testing.T) {
	t.Run("returns trimmed answer and writes label", func(t *testing.T) {
		var out strings.Builder
		c := console.New(strings.NewReader("  hello \n"), &out)

		answer, err := c.Prompt("Name")
		require.NoError(t, err)
		assert.Equal(t, "hello", answer)
		assert.Equal(t, "Name: ", out.String())
	})

	t.Run("last line without newline still reads", func(t *testing.T) {
		var out strings.Builder
		c := console.New(strings.NewReader("answer"), &out)

		answer, err := c.Prompt("Q")
		require.NoError(t, err)
		assert.Equal(t, "answer", answer)
	})
}

func TestPromptDefault(t *testing.T) {
	t.Run("blank answer yields default", func(t *testing.T) {
		var out strings.Builder
		c := console.New(strings.NewReader("\n"), &out)

		answer, err := c.PromptDefault("Host", "localhost")
		require.NoError(t, err)
		assert.Equal(t, "localhost", answer)
		assert.Contains(t, out.String(), "[localhost]")
	})

	t.Run("explicit answer wins", func(t *testing.T) {
		var out strings.Builder
		c := console.New(strings.NewReader("example.com\n"), &out)

		answer, err := c.PromptDefault("Host", "localhost")
		require.NoError(t, err)
		assert.Equal(t, "example.com", answer)
	})
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		input    string
		def      bool
		expected bool
	}{
		{"y\n", false, true},
		{"Yes\n", false, true},
		{"n\n", true, false},
		{"whatever\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
	}

	for _, tc := range cases {
		var out strings.Builder
		c := console.New(strings.NewReader(tc.input), &out)

		answer, err := c.Confirm("Proceed", tc.def)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, answer, "input %q default %v", tc.input, tc.def)
	}
}

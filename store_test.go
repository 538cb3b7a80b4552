package promptstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashText(t *testing.T) {
	t.Run("deterministic across calls", func(t *testing.T) {
		assert.Equal(t, HashText("Say hello!"), HashText("Say hello!"))
	})

	t.Run("differs for different text", func(t *testing.T) {
		assert.NotEqual(t, HashText("a"), HashText("b"))
	})

	t.Run("known sha256 digest", func(t *testing.T) {
		// sha256 of the empty string
		assert.Equal(t,
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			HashText(""))
	})
}

func TestPromptContentHash(t *testing.T) {
	p := &Prompt{Name: "hello", Text: "Say hello!"}
	first := p.ContentHash()
	assert.Equal(t, HashText("Say hello!"), first)
	// Cached value stays stable
	assert.Equal(t, first, p.ContentHash())
}

func TestLoader(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		l := NewLoader()
		assert.Empty(t, l.Names())

		_, err := l.Get("hello")
		var nfe *NotFoundError
		require.ErrorAs(t, err, &nfe)
		assert.Equal(t, "hello", nfe.Name)
	})

	t.Run("add and get", func(t *testing.T) {
		l := NewLoader()
		require.NoError(t, l.AddPrompt("hello", "Say hello!"))

		text, err := l.Get("hello")
		require.NoError(t, err)
		assert.Equal(t, "Say hello!", text)
	})

	t.Run("overwrites by default", func(t *testing.T) {
		l := NewLoader()
		require.NoError(t, l.AddPrompt("hello", "one"))
		require.NoError(t, l.AddPrompt("hello", "two"))

		text, err := l.Get("hello")
		require.NoError(t, err)
		assert.Equal(t, "two", text)
	})

	t.Run("strict mode rejects duplicates", func(t *testing.T) {
		l := NewLoader(WithStrict())
		require.NoError(t, l.AddPrompt("hello", "one"))

		err := l.AddPrompt("hello", "two")
		var de *DuplicateError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "hello", de.Name)

		// Original text is untouched
		text, err := l.Get("hello")
		require.NoError(t, err)
		assert.Equal(t, "one", text)
	})

	t.Run("names are sorted", func(t *testing.T) {
		l := NewLoader()
		require.NoError(t, l.AddPrompt("zeta", "z"))
		require.NoError(t, l.AddPrompt("alpha", "a"))
		require.NoError(t, l.AddPrompt("mid", "m"))

		assert.Equal(t, []string{"alpha", "mid", "zeta"}, l.Names())
	})

	t.Run("prompts returns a copy", func(t *testing.T) {
		l := NewLoader()
		require.NoError(t, l.AddPrompt("hello", "Say hello!"))

		m := l.Prompts()
		m["hello"] = "mutated"

		text, err := l.Get("hello")
		require.NoError(t, err)
		assert.Equal(t, "Say hello!", text)
	})
}

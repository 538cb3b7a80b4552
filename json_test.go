package promptstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeJSON writes raw JSON content to a temp file and returns its path.
func writeJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewJSONStore(t *testing.T) {
	t.Run("loads eagerly at construction", func(t *testing.T) {
		path := writeJSON(t, `{"test": "this is a test", "greeting": "Say hello!"}`)
		store, err := NewJSONStore(path)
		require.NoError(t, err)

		text, err := store.Get("test")
		require.NoError(t, err)
		assert.Equal(t, "this is a test", text)

		assert.Equal(t, []string{"greeting", "test"}, store.Names())
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := NewJSONStore(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("non-object top level fails eagerly", func(t *testing.T) {
		path := writeJSON(t, `["not", "an", "object"]`)
		_, err := NewJSONStore(path)
		var se *SchemaError
		require.ErrorAs(t, err, &se)
	})

	t.Run("top-level null fails eagerly", func(t *testing.T) {
		path := writeJSON(t, `null`)
		_, err := NewJSONStore(path)
		var se *SchemaError
		require.ErrorAs(t, err, &se)
	})

	t.Run("non-string value fails eagerly even without validation", func(t *testing.T) {
		path := writeJSON(t, `{"ok": "text", "bad": 42}`)
		_, err := NewJSONStore(path)
		var se *SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "bad", se.Key)
	})

	t.Run("nested object value fails", func(t *testing.T) {
		path := writeJSON(t, `{"outer": {"inner": "text"}}`)
		_, err := NewJSONStore(path, WithValidation())
		var se *SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "outer", se.Key)
	})

	t.Run("empty key fails", func(t *testing.T) {
		path := writeJSON(t, `{"": "text"}`)
		_, err := NewJSONStore(path)
		var se *SchemaError
		require.ErrorAs(t, err, &se)
		assert.Contains(t, se.Reason, "non-empty")
	})

	t.Run("add prompt stays in memory", func(t *testing.T) {
		path := writeJSON(t, `{"test": "this is a test"}`)
		store, err := NewJSONStore(path)
		require.NoError(t, err)

		require.NoError(t, store.AddPrompt("extra", "more text"))
		text, err := store.Get("extra")
		require.NoError(t, err)
		assert.Equal(t, "more text", text)

		// Backing file is never rewritten
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"test": "this is a test"}`, string(data))
	})
}

func TestValidateJSON(t *testing.T) {
	t.Run("valid flat mapping passes", func(t *testing.T) {
		path := writeJSON(t, `{"a": "one", "b": "two"}`)
		require.NoError(t, ValidateJSON(path))
	})

	t.Run("empty object passes", func(t *testing.T) {
		path := writeJSON(t, `{}`)
		require.NoError(t, ValidateJSON(path))
	})

	t.Run("invalid JSON fails", func(t *testing.T) {
		path := writeJSON(t, `{"a": `)
		var se *SchemaError
		require.ErrorAs(t, ValidateJSON(path), &se)
	})

	t.Run("top-level null fails", func(t *testing.T) {
		path := writeJSON(t, `null`)
		var se *SchemaError
		require.ErrorAs(t, ValidateJSON(path), &se)
	})

	t.Run("numeric value names the offending key", func(t *testing.T) {
		path := writeJSON(t, `{"n": 1}`)
		var se *SchemaError
		err := ValidateJSON(path)
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "n", se.Key)
		assert.Contains(t, err.Error(), "n")
	})

	t.Run("missing file fails", func(t *testing.T) {
		err := ValidateJSON(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}

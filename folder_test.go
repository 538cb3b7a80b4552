package promptstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePrompt creates a prompt file under dir, creating subfolders as needed.
func writePrompt(t *testing.T, dir, relPath, text string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
}

// setupPromptFolder creates a folder with a small prompt tree.
func setupPromptFolder(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writePrompt(t, dir, "hello.txt", "Say hello!")
	writePrompt(t, dir, "notes.md", "# Notes prompt")
	writePrompt(t, dir, "agents/summarize.txt", "Summarize {{topic}}.")
	writePrompt(t, dir, "agents/deep/translate.txt", "Translate to {{language}}.")
	writePrompt(t, dir, "ignored.yaml", "not: a prompt")
	return dir
}

func TestNewFolderStore(t *testing.T) {
	t.Run("missing directory fails", func(t *testing.T) {
		_, err := NewFolderStore(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("file instead of directory fails", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "prompts")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		_, err := NewFolderStore(file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("no filesystem reads before Load", func(t *testing.T) {
		dir := setupPromptFolder(t)
		store, err := NewFolderStore(dir)
		require.NoError(t, err)
		assert.False(t, store.Loaded())
		assert.Empty(t, store.Prompts())
	})
}

func TestFolderStoreNotLoaded(t *testing.T) {
	dir := setupPromptFolder(t)
	store, err := NewFolderStore(dir)
	require.NoError(t, err)

	var nle *NotLoadedError

	_, err = store.Get("hello")
	require.ErrorAs(t, err, &nle)

	_, err = store.Names()
	require.ErrorAs(t, err, &nle)

	err = store.AddPrompt("extra", "text")
	require.ErrorAs(t, err, &nle)

	err = store.SaveReport(filepath.Join(dir, "report"))
	require.ErrorAs(t, err, &nle)
}

func TestFolderStoreLoad(t *testing.T) {
	dir := setupPromptFolder(t)
	store, err := NewFolderStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Load())

	t.Run("loads txt and md files", func(t *testing.T) {
		text, err := store.Get("hello")
		require.NoError(t, err)
		assert.Equal(t, "Say hello!", text)

		text, err = store.Get("notes")
		require.NoError(t, err)
		assert.Equal(t, "# Notes prompt", text)
	})

	t.Run("derives nested names with slash delimiter", func(t *testing.T) {
		text, err := store.Get("agents/summarize")
		require.NoError(t, err)
		assert.Equal(t, "Summarize {{topic}}.", text)

		text, err = store.Get("agents/deep/translate")
		require.NoError(t, err)
		assert.Equal(t, "Translate to {{language}}.", text)
	})

	t.Run("skips unrecognized extensions", func(t *testing.T) {
		_, err := store.Get("ignored")
		var nfe *NotFoundError
		require.ErrorAs(t, err, &nfe)
	})

	t.Run("names are sorted", func(t *testing.T) {
		names, err := store.Names()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"agents/deep/translate",
			"agents/summarize",
			"hello",
			"notes",
		}, names)
	})

	t.Run("missing name fails with NotFoundError", func(t *testing.T) {
		_, err := store.Get("missing")
		var nfe *NotFoundError
		require.ErrorAs(t, err, &nfe)
		assert.Equal(t, "missing", nfe.Name)
	})
}

func TestFolderStoreReload(t *testing.T) {
	dir := setupPromptFolder(t)
	store, err := NewFolderStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Load())

	// Change the folder and add a manual prompt
	writePrompt(t, dir, "hello.txt", "Say hi instead.")
	require.NoError(t, store.AddPrompt("manual", "added by hand"))

	// Reload replaces everything, including manual additions
	require.NoError(t, store.Load())

	text, err := store.Get("hello")
	require.NoError(t, err)
	assert.Equal(t, "Say hi instead.", text)

	_, err = store.Get("manual")
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestFolderStoreAddPrompt(t *testing.T) {
	dir := setupPromptFolder(t)
	store, err := NewFolderStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Load())

	require.NoError(t, store.AddPrompt("extra/manual", "manual text"))
	text, err := store.Get("extra/manual")
	require.NoError(t, err)
	assert.Equal(t, "manual text", text)
}

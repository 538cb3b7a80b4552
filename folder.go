package promptstore

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// promptExtensions are the file extensions recognized as prompt files.
var promptExtensions = []string{".txt", ".md"}

// storeState tracks whether a FolderStore has read its folder yet.
type storeState int

const (
	stateUnbound storeState = iota // no filesystem access has happened
	stateLoaded                    // Load() completed successfully
)

// FolderStore loads prompts from a directory tree.
//
// Every .txt and .md file below the root becomes a prompt; its name is the
// path relative to the root with the extension stripped and separators
// normalized to `/`, so root/sub/dir/hello.txt is the prompt "sub/dir/hello".
//
// Loading is lazy: the store touches the filesystem only when Load() is
// called. Queries before that fail with a *NotLoadedError. Load() may be
// called again to re-read the folder; the previous contents are replaced
// wholesale.
type FolderStore struct {
	promptSet
	root  string
	state storeState
}

// NewFolderStore returns a store bound to the given directory.
// The directory must exist; its contents are not read until Load().
func NewFolderStore(dir string) (*FolderStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("prompt folder %q does not exist", dir)
		}
		return nil, fmt.Errorf("failed to access prompt folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("prompt folder %q is not a directory", dir)
	}

	return &FolderStore{promptSet: newPromptSet(), root: dir}, nil
}

// Root returns the directory the store is bound to.
func (s *FolderStore) Root() string {
	return s.root
}

// Loaded reports whether Load() has completed.
func (s *FolderStore) Loaded() bool {
	return s.state == stateLoaded
}

// Load walks the folder tree and reads every .txt and .md file into the
// store. Any previously loaded or added prompts are discarded first.
func (s *FolderStore) Load() error {
	loaded := make(map[string]string)

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if !isPromptExtension(ext) {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(strings.TrimSuffix(rel, ext))

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read prompt file %s: %w", path, err)
		}
		loaded[name] = string(data)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load prompt folder %q: %w", s.root, err)
	}

	s.reset()
	for name, text := range loaded {
		s.put(name, text)
	}
	s.state = stateLoaded
	return nil
}

// Get returns the text of the named prompt. Nested prompts use `/`-delimited
// names ("subfolder/prompt"). Fails with a *NotLoadedError before Load().
func (s *FolderStore) Get(name string) (string, error) {
	if s.state != stateLoaded {
		return "", &NotLoadedError{Source: s.root}
	}
	return s.get(name)
}

// AddPrompt inserts a prompt alongside the loaded ones.
// Fails with a *NotLoadedError before Load().
func (s *FolderStore) AddPrompt(name, text string) error {
	if s.state != stateLoaded {
		return &NotLoadedError{Source: s.root}
	}
	return s.add(name, text)
}

// Names returns all prompt names in sorted order.
// Fails with a *NotLoadedError before Load().
func (s *FolderStore) Names() ([]string, error) {
	if s.state != stateLoaded {
		return nil, &NotLoadedError{Source: s.root}
	}
	return s.names(), nil
}

// Prompts returns a copy of the name to text mapping. It is empty before
// Load().
func (s *FolderStore) Prompts() map[string]string {
	return s.asMap()
}

func isPromptExtension(ext string) bool {
	for _, e := range promptExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

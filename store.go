package promptstore

import "sort"

// Store is a named collection of prompts.
//
// All three implementations (Loader, FolderStore, JSONStore) expose the same
// lookup contract; they differ only in how the collection is populated.
type Store interface {
	// Get returns the text of the named prompt. Names may contain the `/`
	// delimiter for prompts loaded from nested folders.
	Get(name string) (string, error)

	// AddPrompt inserts a prompt, overwriting any existing one with the
	// same name unless the store is in strict mode.
	AddPrompt(name, text string) error

	// Prompts returns a copy of the name to text mapping.
	Prompts() map[string]string
}

// promptSet is the shared name -> Prompt mapping behind every store.
type promptSet struct {
	prompts map[string]*Prompt
	strict  bool // refuse overwrites via AddPrompt
}

func newPromptSet() promptSet {
	return promptSet{prompts: make(map[string]*Prompt)}
}

func (ps *promptSet) get(name string) (string, error) {
	p, ok := ps.prompts[name]
	if !ok {
		return "", &NotFoundError{Name: name}
	}
	return p.Text, nil
}

func (ps *promptSet) add(name, text string) error {
	if _, exists := ps.prompts[name]; exists && ps.strict {
		return &DuplicateError{Name: name}
	}
	ps.prompts[name] = &Prompt{Name: name, Text: text}
	return nil
}

// put inserts without the strict check, for population from a source.
func (ps *promptSet) put(name, text string) {
	ps.prompts[name] = &Prompt{Name: name, Text: text}
}

func (ps *promptSet) reset() {
	ps.prompts = make(map[string]*Prompt)
}

func (ps *promptSet) names() []string {
	names := make([]string, 0, len(ps.prompts))
	for name := range ps.prompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ps *promptSet) asMap() map[string]string {
	m := make(map[string]string, len(ps.prompts))
	for name, p := range ps.prompts {
		m[name] = p.Text
	}
	return m
}

// hashes returns the name -> content hash mapping for every prompt.
func (ps *promptSet) hashes() map[string]string {
	m := make(map[string]string, len(ps.prompts))
	for name, p := range ps.prompts {
		m[name] = p.ContentHash()
	}
	return m
}

// Loader is an in-memory store populated solely through AddPrompt.
// It has no backing source and no load step.
type Loader struct {
	promptSet
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithStrict makes AddPrompt fail with a *DuplicateError instead of
// overwriting an existing prompt.
func WithStrict() LoaderOption {
	return func(l *Loader) { l.strict = true }
}

// NewLoader returns an empty in-memory store.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{promptSet: newPromptSet()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Get returns the text of the named prompt.
func (l *Loader) Get(name string) (string, error) {
	return l.get(name)
}

// AddPrompt inserts a prompt. In strict mode an existing name fails with
// a *DuplicateError; otherwise it is overwritten.
func (l *Loader) AddPrompt(name, text string) error {
	return l.add(name, text)
}

// Names returns all prompt names in sorted order.
func (l *Loader) Names() []string {
	return l.names()
}

// Prompts returns a copy of the name to text mapping.
func (l *Loader) Prompts() map[string]string {
	return l.asMap()
}

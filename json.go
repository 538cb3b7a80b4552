package promptstore

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONStore loads prompts from a JSON file holding a flat mapping from
// prompt name to prompt text:
//
//	{ "greeting": "Say hello!", "closing": "Say goodbye." }
//
// Loading is eager: the file is read and parsed by NewJSONStore. Structural
// violations (non-object top level, non-string values, empty keys) always
// fail with a *SchemaError, even without WithValidation; the option adds a
// full ValidateJSON pass before loading.
type JSONStore struct {
	promptSet
	path string
}

// JSONOption configures a JSONStore.
type JSONOption func(*jsonConfig)

type jsonConfig struct {
	validate bool
}

// WithValidation runs ValidateJSON on the file before loading it.
func WithValidation() JSONOption {
	return func(c *jsonConfig) { c.validate = true }
}

// NewJSONStore reads and parses the prompt file at path.
func NewJSONStore(path string, opts ...JSONOption) (*JSONStore, error) {
	var cfg jsonConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.validate {
		if err := ValidateJSON(path); err != nil {
			return nil, err
		}
	}

	s := &JSONStore{promptSet: newPromptSet(), path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the JSON file the store was loaded from.
func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) load() error {
	prompts, err := parsePromptFile(s.path)
	if err != nil {
		return err
	}
	s.reset()
	for name, text := range prompts {
		s.put(name, text)
	}
	return nil
}

// Get returns the text of the named prompt.
func (s *JSONStore) Get(name string) (string, error) {
	return s.get(name)
}

// AddPrompt inserts a prompt alongside the loaded ones. The backing file is
// never written; the insertion lives only in memory.
func (s *JSONStore) AddPrompt(name, text string) error {
	return s.add(name, text)
}

// Names returns all prompt names in sorted order.
func (s *JSONStore) Names() []string {
	return s.names()
}

// Prompts returns a copy of the name to text mapping.
func (s *JSONStore) Prompts() map[string]string {
	return s.asMap()
}

// ValidateJSON checks that path holds a valid prompt file: a flat JSON
// object mapping non-empty string keys to string values. The first
// violation found is reported as a *SchemaError naming the offending key
// when there is one.
func ValidateJSON(path string) error {
	if _, err := parsePromptFile(path); err != nil {
		return err
	}
	return nil
}

// parsePromptFile reads a flat name -> text JSON mapping, enforcing the
// prompt file schema.
func parsePromptFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("prompt file %q does not exist", path)
		}
		return nil, fmt.Errorf("failed to read prompt file: %w", err)
	}

	// Unmarshal leaves the map nil for a top-level null, so check both.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil, &SchemaError{Path: path, Reason: "top level must be a JSON object of prompt name to text"}
	}

	prompts := make(map[string]string, len(raw))
	for key, value := range raw {
		if key == "" {
			return nil, &SchemaError{Path: path, Reason: "prompt names must be non-empty"}
		}
		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			return nil, &SchemaError{Path: path, Key: key, Reason: "prompt text must be a string"}
		}
		prompts[key] = text
	}
	return prompts, nil
}

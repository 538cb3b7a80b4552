package promptstore

import (
	"fmt"
	"strings"
)

// NotLoadedError indicates a store was queried before Load() was called.
type NotLoadedError struct {
	Source string // the folder the store is bound to
}

func (e *NotLoadedError) Error() string {
	return fmt.Sprintf("store for %q is not loaded: call Load() first", e.Source)
}

// NotFoundError indicates a prompt name is absent from a loaded store.
type NotFoundError struct {
	Name string // the name that was looked up
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("prompt %q not found", e.Name)
}

// DuplicateError indicates an insert would overwrite an existing prompt
// while the store is in strict mode.
type DuplicateError struct {
	Name string // the name that already exists
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("prompt %q already exists", e.Name)
}

// SchemaError indicates malformed JSON prompt or report content.
type SchemaError struct {
	Path   string // the file being parsed
	Key    string // the offending key, if one can be named
	Reason string // what went wrong
}

func (e *SchemaError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid prompt file %s: key %q: %s", e.Path, e.Key, e.Reason)
	}
	return fmt.Sprintf("invalid prompt file %s: %s", e.Path, e.Reason)
}

// IntegrityError indicates a strict report check found the loaded prompts
// differ from the recorded ones.
type IntegrityError struct {
	Added   []string // names loaded but absent from the report
	Removed []string // names in the report but not loaded
	Changed []string // names whose content hash differs
}

func (e *IntegrityError) Error() string {
	var parts []string
	if len(e.Added) > 0 {
		parts = append(parts, "added: "+strings.Join(e.Added, ", "))
	}
	if len(e.Removed) > 0 {
		parts = append(parts, "removed: "+strings.Join(e.Removed, ", "))
	}
	if len(e.Changed) > 0 {
		parts = append(parts, "changed: "+strings.Join(e.Changed, ", "))
	}
	return "prompt report mismatch (" + strings.Join(parts, "; ") + ")"
}

package promptstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// reportExt is the extension appended to report paths when absent.
const reportExt = ".json"

// Report is a point-in-time snapshot of a store's prompt names and content
// hashes, used to detect drift between an expected prompt set and what is
// actually loaded. A report does not own the prompts it describes.
type Report struct {
	Hashes map[string]string // name -> hex sha256 of the prompt text
}

// NewReport builds a report from the store's current contents. A store that
// holds nothing yet, like a FolderStore before Load(), yields an empty
// report; use FolderStore.SaveReport to fail with a *NotLoadedError
// instead.
func NewReport(store Store) *Report {
	prompts := store.Prompts()
	hashes := make(map[string]string, len(prompts))
	for name, text := range prompts {
		hashes[name] = HashText(text)
	}
	return &Report{Hashes: hashes}
}

// Save writes the report as JSON. The .json extension is appended to path
// when it is missing.
func (r *Report) Save(path string) error {
	path = reportPath(path)
	data, err := json.MarshalIndent(r.Hashes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal prompt report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write prompt report: %w", err)
	}
	return nil
}

// LoadReport parses a report previously written by Save. The .json
// extension is appended to path when it is missing.
func LoadReport(path string) (*Report, error) {
	path = reportPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("prompt report %q does not exist", path)
		}
		return nil, fmt.Errorf("failed to read prompt report: %w", err)
	}

	// Unmarshal leaves the map nil for a top-level null, so check both.
	var hashes map[string]string
	if err := json.Unmarshal(data, &hashes); err != nil || hashes == nil {
		return nil, &SchemaError{Path: path, Reason: "report must be a JSON object of prompt name to hash"}
	}
	return &Report{Hashes: hashes}, nil
}

// reportPath appends the .json extension when path has none.
func reportPath(path string) string {
	if filepath.Ext(path) != reportExt {
		return path + reportExt
	}
	return path
}

// MismatchKind classifies one divergence between a store and a report.
type MismatchKind string

const (
	// MismatchAdded means the prompt is loaded but absent from the report.
	MismatchAdded MismatchKind = "added"
	// MismatchRemoved means the report records a prompt that is not loaded.
	MismatchRemoved MismatchKind = "removed"
	// MismatchChanged means the prompt's content hash differs.
	MismatchChanged MismatchKind = "changed"
)

// Mismatch is one divergence found by a report check.
type Mismatch struct {
	Name string
	Kind MismatchKind
}

// Diff compares the report against the store's current contents and returns
// the divergences sorted by name.
func (r *Report) Diff(store Store) []Mismatch {
	current := store.Prompts()

	var mismatches []Mismatch
	for name, text := range current {
		recorded, ok := r.Hashes[name]
		if !ok {
			mismatches = append(mismatches, Mismatch{Name: name, Kind: MismatchAdded})
			continue
		}
		if HashText(text) != recorded {
			mismatches = append(mismatches, Mismatch{Name: name, Kind: MismatchChanged})
		}
	}
	for name := range r.Hashes {
		if _, ok := current[name]; !ok {
			mismatches = append(mismatches, Mismatch{Name: name, Kind: MismatchRemoved})
		}
	}

	sort.Slice(mismatches, func(i, j int) bool {
		return mismatches[i].Name < mismatches[j].Name
	})
	return mismatches
}

// SaveReport writes a report of the store's current contents to path.
// Fails with a *NotLoadedError before Load().
func (s *FolderStore) SaveReport(path string) error {
	if s.state != stateLoaded {
		return &NotLoadedError{Source: s.root}
	}
	return NewReport(s).Save(path)
}

// LoadFromReport reloads the folder and compares the result against the
// report at path.
//
// With strict set, any divergence (added, removed, or changed prompts)
// fails with an *IntegrityError listing the offending names. Without it the
// divergences are returned for the caller to inspect and the reload stands.
func (s *FolderStore) LoadFromReport(path string, strict bool) ([]Mismatch, error) {
	report, err := LoadReport(path)
	if err != nil {
		return nil, err
	}
	if err := s.Load(); err != nil {
		return nil, err
	}

	mismatches := report.Diff(s)
	if strict && len(mismatches) > 0 {
		ierr := &IntegrityError{}
		for _, m := range mismatches {
			switch m.Kind {
			case MismatchAdded:
				ierr.Added = append(ierr.Added, m.Name)
			case MismatchRemoved:
				ierr.Removed = append(ierr.Removed, m.Name)
			case MismatchChanged:
				ierr.Changed = append(ierr.Changed, m.Name)
			}
		}
		return mismatches, ierr
	}
	return mismatches, nil
}

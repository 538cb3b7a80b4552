// Package fill substitutes runtime values into prompt text.
//
// Placeholders are double-brace tokens like {{name}}. Two modes are
// provided: positional (FillList), where values are matched to placeholders
// by order of first appearance, and named (FillPrompt), where values come
// from a map keyed by placeholder name. Substituted values are inserted
// verbatim and never re-scanned, so a value containing {{...}} cannot
// trigger further substitution.
package fill

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches a {{name}} token. Names may contain letters,
// digits, underscores and spaces; an empty {{}} is not a placeholder.
var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_ ]+)\}\}`)

// ArityMismatchError indicates a positional fill where the number of values
// does not match the number of distinct placeholders.
type ArityMismatchError struct {
	Placeholders int // distinct placeholder names in the text
	Values       int // values supplied
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("prompt has %d placeholders but %d values were given",
		e.Placeholders, e.Values)
}

// MissingKeyError indicates a named fill where placeholders had no
// corresponding substitution entry.
type MissingKeyError struct {
	Keys []string // the unresolved placeholder names, in order of appearance
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("no substitution for placeholder(s): %s", strings.Join(e.Keys, ", "))
}

// placeholders returns the distinct placeholder names in text, in order of
// first appearance.
func placeholders(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// substitute replaces every placeholder occurrence whose name is present in
// values, in a single left-to-right pass over text. Replacement output is
// never re-scanned.
func substitute(text string, values map[string]string) string {
	var b strings.Builder
	last := 0
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		name := text[loc[2]:loc[3]]
		value, ok := values[name]
		if !ok {
			continue
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(value)
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// FillList fills placeholders positionally: the first value goes to the
// first distinct placeholder name, the second to the next new name, and so
// on (left to right, top to bottom). Every occurrence of a name receives
// that name's value.
//
// Fails with an *ArityMismatchError when the number of values differs from
// the number of distinct placeholder names.
func FillList(text string, values []string) (string, error) {
	names := placeholders(text)
	if len(names) != len(values) {
		return "", &ArityMismatchError{Placeholders: len(names), Values: len(values)}
	}

	subs := make(map[string]string, len(names))
	for i, name := range names {
		subs[name] = values[i]
	}
	return substitute(text, subs), nil
}

// FillPrompt replaces each {{key}} in text with substitutions[key].
// Entries without a matching placeholder are ignored; placeholders without
// a matching entry fail with a *MissingKeyError listing every unresolved
// name. Use FillPromptLenient to leave unresolved placeholders untouched.
func FillPrompt(text string, substitutions map[string]string) (string, error) {
	var missing []string
	for _, name := range placeholders(text) {
		if _, ok := substitutions[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", &MissingKeyError{Keys: missing}
	}
	return substitute(text, substitutions), nil
}

// FillPromptLenient is FillPrompt without the missing-key check: a
// placeholder with no substitution entry is left in the text as-is.
func FillPromptLenient(text string, substitutions map[string]string) string {
	return substitute(text, substitutions)
}
